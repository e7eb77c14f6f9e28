package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/logging"
	pb "github.com/dmitrijs2005/satstream/internal/proto"
	"github.com/dmitrijs2005/satstream/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.StreamService_Ping_FullMethodName:           true,
	pb.StreamService_GetStream_FullMethodName:      true,
	pb.StreamService_ListTemplates_FullMethodName:  true,
	pb.StreamService_GetGlobalStats_FullMethodName: true,
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	principal, err := auth.PrincipalFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = auth.WithPrincipal(ctx, principal)
	ctx = logging.ContextWith(ctx, "principal", string(principal))

	return handler(ctx, req)
}

// requestLoggingInterceptor tags the context with a request id and logs the
// outcome of every call.
func (s *GRPCServer) requestLoggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID := firstMetadata(ctx, common.RequestIDHeaderName)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = logging.ContextWith(ctx, "request_id", requestID)

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start).String()}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "request failed", append(args, "error", err)...)
	} else {
		s.logger.Debug(ctx, "request handled", args...)
	}
	return resp, err
}
