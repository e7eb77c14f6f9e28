package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/logging"
	pb "github.com/dmitrijs2005/satstream/internal/proto"
	"github.com/dmitrijs2005/satstream/internal/server/auth"
	"github.com/dmitrijs2005/satstream/internal/server/config"
	"github.com/dmitrijs2005/satstream/internal/server/ledger"
	"github.com/dmitrijs2005/satstream/internal/server/models"
	"github.com/dmitrijs2005/satstream/internal/server/services"
	"github.com/dmitrijs2005/satstream/internal/server/templates"
	"github.com/dmitrijs2005/satstream/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// ---- fakes ----

type fakeStreams struct {
	err    error
	stream *models.Stream
	cancel models.CancelResult
	amount uint64
}

func (f *fakeStreams) CreateStream(ctx context.Context, recipient models.Principal, satsPerSec, durationSecs, totalLocked uint64) (uint64, error) {
	return f.amount, f.err
}
func (f *fakeStreams) ClaimStream(ctx context.Context, id uint64) (uint64, error) {
	return f.amount, f.err
}
func (f *fakeStreams) TopUpStream(ctx context.Context, id uint64, amount uint64) error {
	return f.err
}
func (f *fakeStreams) CancelStream(ctx context.Context, id uint64) (models.CancelResult, error) {
	return f.cancel, f.err
}
func (f *fakeStreams) ReclaimUnclaimed(ctx context.Context, id uint64) (uint64, error) {
	return f.amount, f.err
}
func (f *fakeStreams) GetStream(ctx context.Context, id uint64) (models.Stream, bool) {
	if f.stream == nil {
		return models.Stream{}, false
	}
	return *f.stream, true
}
func (f *fakeStreams) ListStreamsForUser(ctx context.Context) ([]models.Stream, error) {
	if f.stream == nil {
		return []models.Stream{}, f.err
	}
	return []models.Stream{*f.stream}, f.err
}
func (f *fakeStreams) CreateTemplate(ctx context.Context, name, description string, durationSecs, satsPerSec uint64) (uint64, error) {
	return f.amount, f.err
}
func (f *fakeStreams) CreateStreamFromTemplate(ctx context.Context, templateID uint64, recipient models.Principal, totalLocked uint64) (uint64, error) {
	return f.amount, f.err
}
func (f *fakeStreams) ListTemplates(ctx context.Context) []models.StreamTemplate {
	return []models.StreamTemplate{{ID: 1, Name: "t"}}
}
func (f *fakeStreams) UserStats(ctx context.Context) (models.UserStats, error) {
	return models.UserStats{StreamsSent: 2}, f.err
}
func (f *fakeStreams) GlobalStats(ctx context.Context) models.GlobalStats {
	return models.GlobalStats{TotalStreams: 3}
}

type fakeStatements struct {
	key, url string
	err      error
}

func (f *fakeStatements) Export(ctx context.Context) (string, string, error) {
	return f.key, f.url, f.err
}

// ---- unit tests ----

func TestPing_OK(t *testing.T) {
	s := newTestServer("k")
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("%w: stream 1", common.ErrorNotFound), codes.NotFound},
		{fmt.Errorf("%w: only the recipient can claim", common.ErrorUnauthorized), codes.PermissionDenied},
		{common.ErrorUnauthenticated, codes.Unauthenticated},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{fmt.Errorf("%w: stream is cancelled", common.ErrInvalidState), codes.FailedPrecondition},
		{common.ErrNothingToDo, codes.FailedPrecondition},
		{common.ErrTimeoutNotReached, codes.FailedPrecondition},
		{common.ErrNotConfigured, codes.Unimplemented},
		{errors.New("db exploded"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			st := status.Convert(toStatus(tt.err))
			assert.Equal(t, tt.code, st.Code())
			if tt.code == codes.Internal {
				assert.Equal(t, common.ErrorInternal.Error(), st.Message())
			} else {
				assert.Equal(t, tt.err.Error(), st.Message())
			}
		})
	}
}

func TestHandlers_MapServiceErrors(t *testing.T) {
	s := newTestServer("k")
	s.streams = &fakeStreams{err: fmt.Errorf("%w: stream 9", common.ErrorNotFound)}

	_, err := s.ClaimStream(context.Background(), &pb.ClaimStreamRequest{StreamId: 9})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.CancelStream(context.Background(), &pb.CancelStreamRequest{StreamId: 9})
	assert.Equal(t, codes.NotFound, status.Code(err))

	s.statements = &fakeStatements{err: common.ErrNotConfigured}
	_, err = s.ExportStatement(context.Background(), &pb.ExportStatementRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestGetStream_MissingIsEmptyResponse(t *testing.T) {
	s := newTestServer("k")

	resp, err := s.GetStream(context.Background(), &pb.GetStreamRequest{StreamId: 1})
	require.NoError(t, err)
	assert.Nil(t, resp.GetStream())

	s.streams = &fakeStreams{stream: &models.Stream{ID: 1, Sender: "a", Status: models.StreamActive}}
	resp, err = s.GetStream(context.Background(), &pb.GetStreamRequest{StreamId: 1})
	require.NoError(t, err)
	require.NotNil(t, resp.GetStream())
	assert.Equal(t, "active", resp.GetStream().Status)
	assert.Equal(t, "a", resp.GetStream().Sender)
}

func TestExportStatement_OK(t *testing.T) {
	s := newTestServer("k")
	s.statements = &fakeStatements{key: "k1", url: "https://x"}

	resp, err := s.ExportStatement(context.Background(), &pb.ExportStatementRequest{})
	require.NoError(t, err)
	assert.Equal(t, &pb.ExportStatementResponse{Key: "k1", Url: "https://x"}, resp)
}

// ---- end to end over bufconn ----

const testSecret = "e2e-secret"

func startBufServer(t *testing.T) pb.StreamServiceClient {
	t.Helper()

	clock := timex.FakeUnix(1_000)
	cfg := &config.Config{}
	cfg.LoadDefaults()
	streams := services.NewStreamService(ledger.New(), templates.NewRegistry(), auth.ContextIdentity{}, clock, logging.Nop(), cfg)
	statements := services.NewStatementService(streams, auth.ContextIdentity{}, clock, cfg, logging.Nop())

	srv, err := NewGRPCServer("bufnet", logging.Nop(), streams, statements, testSecret)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})

	return pb.NewStreamServiceClient(conn)
}

func withToken(t *testing.T, p models.Principal) context.Context {
	t.Helper()
	token, err := auth.GenerateToken(p, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func TestEndToEnd_StreamLifecycle(t *testing.T) {
	client := startBufServer(t)
	alice, bob := withToken(t, "alice"), withToken(t, "bob")

	ping, err := client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	_, err = client.CreateStream(context.Background(), &pb.CreateStreamRequest{Recipient: "bob"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	created, err := client.CreateStream(alice, &pb.CreateStreamRequest{Recipient: "bob", SatsPerSec: 10, DurationSecs: 100, TotalLocked: 1000})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), created.StreamId)

	got, err := client.GetStream(context.Background(), &pb.GetStreamRequest{StreamId: created.StreamId})
	require.NoError(t, err)
	require.NotNil(t, got.GetStream())
	assert.Equal(t, "alice", got.GetStream().Sender)
	assert.Equal(t, uint64(1100), got.GetStream().EndTime)

	_, err = client.ClaimStream(bob, &pb.ClaimStreamRequest{StreamId: created.StreamId})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = client.TopUpStream(bob, &pb.TopUpStreamRequest{StreamId: created.StreamId, Amount: 5})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	cancelled, err := client.CancelStream(alice, &pb.CancelStreamRequest{StreamId: created.StreamId})
	require.NoError(t, err)
	assert.Equal(t, uint64(990), cancelled.Refund)
	assert.Equal(t, uint64(10), cancelled.Fee)

	list, err := client.ListStreamsForUser(bob, &pb.ListStreamsForUserRequest{})
	require.NoError(t, err)
	require.Len(t, list.Streams, 1)
	assert.Equal(t, "cancelled", list.Streams[0].Status)

	gs, err := client.GetGlobalStats(context.Background(), &pb.GetGlobalStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), gs.Stats.Cancelled)

	_, err = client.ExportStatement(alice, &pb.ExportStatementRequest{})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestEndToEnd_Templates(t *testing.T) {
	client := startBufServer(t)
	alice := withToken(t, "alice")

	tpl, err := client.CreateTemplate(alice, &pb.CreateTemplateRequest{Name: "weekly", DurationSecs: 604800, SatsPerSec: 2})
	require.NoError(t, err)

	_, err = client.CreateStreamFromTemplate(alice, &pb.CreateStreamFromTemplateRequest{TemplateId: tpl.TemplateId + 5, Recipient: "bob", TotalLocked: 10})
	assert.Equal(t, codes.NotFound, status.Code(err))

	s, err := client.CreateStreamFromTemplate(alice, &pb.CreateStreamFromTemplateRequest{TemplateId: tpl.TemplateId, Recipient: "bob", TotalLocked: 10})
	require.NoError(t, err)

	list, err := client.ListTemplates(context.Background(), &pb.ListTemplatesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Templates, 1)
	assert.Equal(t, uint64(1), list.Templates[0].UsageCount)

	got, err := client.GetStream(context.Background(), &pb.GetStreamRequest{StreamId: s.StreamId})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.GetStream().SatsPerSec)

	stats, err := client.GetUserStats(alice, &pb.GetUserStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.Stats.StreamsSent)
}
