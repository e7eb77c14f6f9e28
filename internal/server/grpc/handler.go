package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/satstream/internal/proto"
	"github.com/dmitrijs2005/satstream/internal/server/models"
)

func streamToPb(s *models.Stream) *pb.Stream {
	return &pb.Stream{
		Id:              s.ID,
		Sender:          string(s.Sender),
		Recipient:       string(s.Recipient),
		SatsPerSec:      s.SatsPerSec,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Status:          string(s.Status),
		TotalLocked:     s.TotalLocked,
		TotalReleased:   s.TotalReleased,
		LastReleaseTime: s.LastReleaseTime,
		Buffer:          s.Buffer,
		LastClaimTime:   s.LastClaimTime,
	}
}

func templateToPb(t *models.StreamTemplate) *pb.StreamTemplate {
	return &pb.StreamTemplate{
		Id:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		DurationSecs: t.DurationSecs,
		SatsPerSec:   t.SatsPerSec,
		Creator:      string(t.Creator),
		CreatedAt:    t.CreatedAt,
		UsageCount:   t.UsageCount,
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) CreateStream(ctx context.Context, req *pb.CreateStreamRequest) (*pb.CreateStreamResponse, error) {
	id, err := s.streams.CreateStream(ctx, models.Principal(req.Recipient), req.SatsPerSec, req.DurationSecs, req.TotalLocked)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateStreamResponse{StreamId: id}, nil
}

func (s *GRPCServer) ClaimStream(ctx context.Context, req *pb.ClaimStreamRequest) (*pb.ClaimStreamResponse, error) {
	amount, err := s.streams.ClaimStream(ctx, req.StreamId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ClaimStreamResponse{Amount: amount}, nil
}

func (s *GRPCServer) TopUpStream(ctx context.Context, req *pb.TopUpStreamRequest) (*pb.TopUpStreamResponse, error) {
	if err := s.streams.TopUpStream(ctx, req.StreamId, req.Amount); err != nil {
		return nil, toStatus(err)
	}
	return &pb.TopUpStreamResponse{}, nil
}

func (s *GRPCServer) CancelStream(ctx context.Context, req *pb.CancelStreamRequest) (*pb.CancelStreamResponse, error) {
	res, err := s.streams.CancelStream(ctx, req.StreamId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CancelStreamResponse{Refund: res.Refund, Fee: res.Fee}, nil
}

func (s *GRPCServer) ReclaimUnclaimed(ctx context.Context, req *pb.ReclaimUnclaimedRequest) (*pb.ReclaimUnclaimedResponse, error) {
	amount, err := s.streams.ReclaimUnclaimed(ctx, req.StreamId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ReclaimUnclaimedResponse{Amount: amount}, nil
}

func (s *GRPCServer) GetStream(ctx context.Context, req *pb.GetStreamRequest) (*pb.GetStreamResponse, error) {
	st, ok := s.streams.GetStream(ctx, req.StreamId)
	if !ok {
		return &pb.GetStreamResponse{}, nil
	}
	return &pb.GetStreamResponse{Stream: streamToPb(&st)}, nil
}

func (s *GRPCServer) ListStreamsForUser(ctx context.Context, req *pb.ListStreamsForUserRequest) (*pb.ListStreamsForUserResponse, error) {
	list, err := s.streams.ListStreamsForUser(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*pb.Stream, 0, len(list))
	for i := range list {
		out = append(out, streamToPb(&list[i]))
	}
	return &pb.ListStreamsForUserResponse{Streams: out}, nil
}

func (s *GRPCServer) CreateTemplate(ctx context.Context, req *pb.CreateTemplateRequest) (*pb.CreateTemplateResponse, error) {
	id, err := s.streams.CreateTemplate(ctx, req.Name, req.Description, req.DurationSecs, req.SatsPerSec)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateTemplateResponse{TemplateId: id}, nil
}

func (s *GRPCServer) CreateStreamFromTemplate(ctx context.Context, req *pb.CreateStreamFromTemplateRequest) (*pb.CreateStreamFromTemplateResponse, error) {
	id, err := s.streams.CreateStreamFromTemplate(ctx, req.TemplateId, models.Principal(req.Recipient), req.TotalLocked)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CreateStreamFromTemplateResponse{StreamId: id}, nil
}

func (s *GRPCServer) ListTemplates(ctx context.Context, req *pb.ListTemplatesRequest) (*pb.ListTemplatesResponse, error) {
	list := s.streams.ListTemplates(ctx)
	out := make([]*pb.StreamTemplate, 0, len(list))
	for i := range list {
		out = append(out, templateToPb(&list[i]))
	}
	return &pb.ListTemplatesResponse{Templates: out}, nil
}

func (s *GRPCServer) GetUserStats(ctx context.Context, req *pb.GetUserStatsRequest) (*pb.GetUserStatsResponse, error) {
	st, err := s.streams.UserStats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetUserStatsResponse{Stats: &pb.UserStats{
		StreamsSent:           st.StreamsSent,
		StreamsReceived:       st.StreamsReceived,
		ActiveSent:            st.ActiveSent,
		ActiveReceived:        st.ActiveReceived,
		TotalLockedOutgoing:   st.TotalLockedOutgoing,
		TotalReleasedOutgoing: st.TotalReleasedOutgoing,
		ClaimableIncoming:     st.ClaimableIncoming,
	}}, nil
}

func (s *GRPCServer) GetGlobalStats(ctx context.Context, req *pb.GetGlobalStatsRequest) (*pb.GetGlobalStatsResponse, error) {
	st := s.streams.GlobalStats(ctx)
	return &pb.GetGlobalStatsResponse{Stats: &pb.GlobalStats{
		TotalStreams:   st.TotalStreams,
		Active:         st.Active,
		Completed:      st.Completed,
		Cancelled:      st.Cancelled,
		TotalLocked:    st.TotalLocked,
		TotalReleased:  st.TotalReleased,
		TotalBuffered:  st.TotalBuffered,
		TotalTemplates: st.TotalTemplates,
	}}, nil
}

func (s *GRPCServer) ExportStatement(ctx context.Context, req *pb.ExportStatementRequest) (*pb.ExportStatementResponse, error) {
	key, url, err := s.statements.Export(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ExportStatementResponse{Key: key, Url: url}, nil
}
