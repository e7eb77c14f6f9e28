package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/satstream/internal/common"
	pb "github.com/dmitrijs2005/satstream/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.StreamServiceClient
	accessToken string
	timeout     time.Duration
	dialOpts    []grpc.DialOption
}

type Option func(*GRPCClient)

// WithDialOptions appends extra dial options, e.g. a custom dialer in tests.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOpts = append(c.dialOpts, opts...) }
}

func withMetadata(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		md.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) metadataInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withMetadata(ctx, s.accessToken)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewStreamClient(endpointURL, accessToken string, timeout time.Duration, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken, timeout: timeout}
	for _, o := range opts {
		o(c)
	}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.metadataInterceptor),
	}, s.dialOpts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewStreamServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return fmt.Errorf("unexpected ping status %q", resp.GetStatus())
	}
	return nil
}

func (s *GRPCClient) CreateStream(ctx context.Context, recipient string, satsPerSec, durationSecs, totalLocked uint64) (uint64, error) {
	resp, err := s.client.CreateStream(ctx, &pb.CreateStreamRequest{
		Recipient: recipient, SatsPerSec: satsPerSec, DurationSecs: durationSecs, TotalLocked: totalLocked,
	})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.StreamId, nil
}

func (s *GRPCClient) ClaimStream(ctx context.Context, id uint64) (uint64, error) {
	resp, err := s.client.ClaimStream(ctx, &pb.ClaimStreamRequest{StreamId: id})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.Amount, nil
}

func (s *GRPCClient) TopUpStream(ctx context.Context, id, amount uint64) error {
	if _, err := s.client.TopUpStream(ctx, &pb.TopUpStreamRequest{StreamId: id, Amount: amount}); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *GRPCClient) CancelStream(ctx context.Context, id uint64) (*pb.CancelStreamResponse, error) {
	resp, err := s.client.CancelStream(ctx, &pb.CancelStreamRequest{StreamId: id})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ReclaimUnclaimed(ctx context.Context, id uint64) (uint64, error) {
	resp, err := s.client.ReclaimUnclaimed(ctx, &pb.ReclaimUnclaimedRequest{StreamId: id})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.Amount, nil
}

// GetStream returns common.ErrorNotFound when the stream does not exist.
func (s *GRPCClient) GetStream(ctx context.Context, id uint64) (*pb.Stream, error) {
	resp, err := s.client.GetStream(ctx, &pb.GetStreamRequest{StreamId: id})
	if err != nil {
		return nil, mapError(err)
	}
	if resp.GetStream() == nil {
		return nil, fmt.Errorf("%w: stream %d", common.ErrorNotFound, id)
	}
	return resp.GetStream(), nil
}

func (s *GRPCClient) ListStreams(ctx context.Context) ([]*pb.Stream, error) {
	resp, err := s.client.ListStreamsForUser(ctx, &pb.ListStreamsForUserRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Streams, nil
}

func (s *GRPCClient) CreateTemplate(ctx context.Context, name, description string, durationSecs, satsPerSec uint64) (uint64, error) {
	resp, err := s.client.CreateTemplate(ctx, &pb.CreateTemplateRequest{
		Name: name, Description: description, DurationSecs: durationSecs, SatsPerSec: satsPerSec,
	})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.TemplateId, nil
}

func (s *GRPCClient) CreateStreamFromTemplate(ctx context.Context, templateID uint64, recipient string, totalLocked uint64) (uint64, error) {
	resp, err := s.client.CreateStreamFromTemplate(ctx, &pb.CreateStreamFromTemplateRequest{
		TemplateId: templateID, Recipient: recipient, TotalLocked: totalLocked,
	})
	if err != nil {
		return 0, mapError(err)
	}
	return resp.StreamId, nil
}

func (s *GRPCClient) ListTemplates(ctx context.Context) ([]*pb.StreamTemplate, error) {
	resp, err := s.client.ListTemplates(ctx, &pb.ListTemplatesRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Templates, nil
}

func (s *GRPCClient) UserStats(ctx context.Context) (*pb.UserStats, error) {
	resp, err := s.client.GetUserStats(ctx, &pb.GetUserStatsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Stats, nil
}

func (s *GRPCClient) GlobalStats(ctx context.Context) (*pb.GlobalStats, error) {
	resp, err := s.client.GetGlobalStats(ctx, &pb.GetGlobalStatsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Stats, nil
}

func (s *GRPCClient) ExportStatement(ctx context.Context) (*pb.ExportStatementResponse, error) {
	resp, err := s.client.ExportStatement(ctx, &pb.ExportStatementRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}
