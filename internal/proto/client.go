package proto

import (
	"context"

	"google.golang.org/grpc"
)

// StreamServiceClient is the client API for satstream.v1.StreamService.
type StreamServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	CreateStream(ctx context.Context, in *CreateStreamRequest, opts ...grpc.CallOption) (*CreateStreamResponse, error)
	ClaimStream(ctx context.Context, in *ClaimStreamRequest, opts ...grpc.CallOption) (*ClaimStreamResponse, error)
	TopUpStream(ctx context.Context, in *TopUpStreamRequest, opts ...grpc.CallOption) (*TopUpStreamResponse, error)
	CancelStream(ctx context.Context, in *CancelStreamRequest, opts ...grpc.CallOption) (*CancelStreamResponse, error)
	ReclaimUnclaimed(ctx context.Context, in *ReclaimUnclaimedRequest, opts ...grpc.CallOption) (*ReclaimUnclaimedResponse, error)
	GetStream(ctx context.Context, in *GetStreamRequest, opts ...grpc.CallOption) (*GetStreamResponse, error)
	ListStreamsForUser(ctx context.Context, in *ListStreamsForUserRequest, opts ...grpc.CallOption) (*ListStreamsForUserResponse, error)
	CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*CreateTemplateResponse, error)
	CreateStreamFromTemplate(ctx context.Context, in *CreateStreamFromTemplateRequest, opts ...grpc.CallOption) (*CreateStreamFromTemplateResponse, error)
	ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error)
	GetUserStats(ctx context.Context, in *GetUserStatsRequest, opts ...grpc.CallOption) (*GetUserStatsResponse, error)
	GetGlobalStats(ctx context.Context, in *GetGlobalStatsRequest, opts ...grpc.CallOption) (*GetGlobalStatsResponse, error)
	ExportStatement(ctx context.Context, in *ExportStatementRequest, opts ...grpc.CallOption) (*ExportStatementResponse, error)
}

type streamServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStreamServiceClient(cc grpc.ClientConnInterface) StreamServiceClient {
	return &streamServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *streamServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, StreamService_Ping_FullMethodName, in, opts)
}

func (c *streamServiceClient) CreateStream(ctx context.Context, in *CreateStreamRequest, opts ...grpc.CallOption) (*CreateStreamResponse, error) {
	return invoke[CreateStreamResponse](ctx, c.cc, StreamService_CreateStream_FullMethodName, in, opts)
}

func (c *streamServiceClient) ClaimStream(ctx context.Context, in *ClaimStreamRequest, opts ...grpc.CallOption) (*ClaimStreamResponse, error) {
	return invoke[ClaimStreamResponse](ctx, c.cc, StreamService_ClaimStream_FullMethodName, in, opts)
}

func (c *streamServiceClient) TopUpStream(ctx context.Context, in *TopUpStreamRequest, opts ...grpc.CallOption) (*TopUpStreamResponse, error) {
	return invoke[TopUpStreamResponse](ctx, c.cc, StreamService_TopUpStream_FullMethodName, in, opts)
}

func (c *streamServiceClient) CancelStream(ctx context.Context, in *CancelStreamRequest, opts ...grpc.CallOption) (*CancelStreamResponse, error) {
	return invoke[CancelStreamResponse](ctx, c.cc, StreamService_CancelStream_FullMethodName, in, opts)
}

func (c *streamServiceClient) ReclaimUnclaimed(ctx context.Context, in *ReclaimUnclaimedRequest, opts ...grpc.CallOption) (*ReclaimUnclaimedResponse, error) {
	return invoke[ReclaimUnclaimedResponse](ctx, c.cc, StreamService_ReclaimUnclaimed_FullMethodName, in, opts)
}

func (c *streamServiceClient) GetStream(ctx context.Context, in *GetStreamRequest, opts ...grpc.CallOption) (*GetStreamResponse, error) {
	return invoke[GetStreamResponse](ctx, c.cc, StreamService_GetStream_FullMethodName, in, opts)
}

func (c *streamServiceClient) ListStreamsForUser(ctx context.Context, in *ListStreamsForUserRequest, opts ...grpc.CallOption) (*ListStreamsForUserResponse, error) {
	return invoke[ListStreamsForUserResponse](ctx, c.cc, StreamService_ListStreamsForUser_FullMethodName, in, opts)
}

func (c *streamServiceClient) CreateTemplate(ctx context.Context, in *CreateTemplateRequest, opts ...grpc.CallOption) (*CreateTemplateResponse, error) {
	return invoke[CreateTemplateResponse](ctx, c.cc, StreamService_CreateTemplate_FullMethodName, in, opts)
}

func (c *streamServiceClient) CreateStreamFromTemplate(ctx context.Context, in *CreateStreamFromTemplateRequest, opts ...grpc.CallOption) (*CreateStreamFromTemplateResponse, error) {
	return invoke[CreateStreamFromTemplateResponse](ctx, c.cc, StreamService_CreateStreamFromTemplate_FullMethodName, in, opts)
}

func (c *streamServiceClient) ListTemplates(ctx context.Context, in *ListTemplatesRequest, opts ...grpc.CallOption) (*ListTemplatesResponse, error) {
	return invoke[ListTemplatesResponse](ctx, c.cc, StreamService_ListTemplates_FullMethodName, in, opts)
}

func (c *streamServiceClient) GetUserStats(ctx context.Context, in *GetUserStatsRequest, opts ...grpc.CallOption) (*GetUserStatsResponse, error) {
	return invoke[GetUserStatsResponse](ctx, c.cc, StreamService_GetUserStats_FullMethodName, in, opts)
}

func (c *streamServiceClient) GetGlobalStats(ctx context.Context, in *GetGlobalStatsRequest, opts ...grpc.CallOption) (*GetGlobalStatsResponse, error) {
	return invoke[GetGlobalStatsResponse](ctx, c.cc, StreamService_GetGlobalStats_FullMethodName, in, opts)
}

func (c *streamServiceClient) ExportStatement(ctx context.Context, in *ExportStatementRequest, opts ...grpc.CallOption) (*ExportStatementResponse, error) {
	return invoke[ExportStatementResponse](ctx, c.cc, StreamService_ExportStatement_FullMethodName, in, opts)
}
