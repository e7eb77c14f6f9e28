package grpc

import (
	"errors"

	"github.com/dmitrijs2005/satstream/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC codes. The message keeps the
// sentinel text as prefix so clients can recover it.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrorUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrInvalidState),
		errors.Is(err, common.ErrNothingToDo),
		errors.Is(err, common.ErrTimeoutNotReached):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrNotConfigured):
		return status.Error(codes.Unimplemented, err.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}
