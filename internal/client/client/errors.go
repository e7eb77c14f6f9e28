package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/satstream/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrUnavailable = errors.New("server unavailable")

// mapError converts a gRPC error into ErrUnavailable or the sentinel the
// server reported, keeping the server's message.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}
	if sentinel := common.MatchSentinel(st.Message()); sentinel != nil {
		return &serverError{sentinel: sentinel, msg: st.Message()}
	}
	if st.Code() == codes.Unauthenticated {
		return &serverError{sentinel: common.ErrorUnauthenticated, msg: st.Message()}
	}
	return fmt.Errorf("rpc error: %w", err)
}

// serverError carries the server's message and matches its sentinel with
// errors.Is.
type serverError struct {
	sentinel error
	msg      string
}

func (e *serverError) Error() string { return e.msg }

func (e *serverError) Unwrap() error { return e.sentinel }
