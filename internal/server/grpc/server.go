// Package grpc exposes the streaming ledger as satstream.v1.StreamService.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/satstream/internal/logging"
	pb "github.com/dmitrijs2005/satstream/internal/proto"
	"github.com/dmitrijs2005/satstream/internal/server/models"
	"google.golang.org/grpc"
)

type streamSvc interface {
	CreateStream(ctx context.Context, recipient models.Principal, satsPerSec, durationSecs, totalLocked uint64) (uint64, error)
	ClaimStream(ctx context.Context, id uint64) (uint64, error)
	TopUpStream(ctx context.Context, id uint64, amount uint64) error
	CancelStream(ctx context.Context, id uint64) (models.CancelResult, error)
	ReclaimUnclaimed(ctx context.Context, id uint64) (uint64, error)
	GetStream(ctx context.Context, id uint64) (models.Stream, bool)
	ListStreamsForUser(ctx context.Context) ([]models.Stream, error)
	CreateTemplate(ctx context.Context, name, description string, durationSecs, satsPerSec uint64) (uint64, error)
	CreateStreamFromTemplate(ctx context.Context, templateID uint64, recipient models.Principal, totalLocked uint64) (uint64, error)
	ListTemplates(ctx context.Context) []models.StreamTemplate
	UserStats(ctx context.Context) (models.UserStats, error)
	GlobalStats(ctx context.Context) models.GlobalStats
}

type statementSvc interface {
	Export(ctx context.Context) (string, string, error)
}

type GRPCServer struct {
	pb.UnimplementedStreamServiceServer
	address    string
	streams    streamSvc
	statements statementSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, streams streamSvc, statements statementSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		streams:    streams,
		statements: statements,
		jwtSecret:  []byte(secretKey),
	}, nil
}

// newServer builds the grpc.Server with interceptors and the service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLoggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterStreamServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
