package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "satstream.v1.StreamService"

// Full method names.
const (
	StreamService_Ping_FullMethodName                     = "/satstream.v1.StreamService/Ping"
	StreamService_CreateStream_FullMethodName             = "/satstream.v1.StreamService/CreateStream"
	StreamService_ClaimStream_FullMethodName              = "/satstream.v1.StreamService/ClaimStream"
	StreamService_TopUpStream_FullMethodName              = "/satstream.v1.StreamService/TopUpStream"
	StreamService_CancelStream_FullMethodName             = "/satstream.v1.StreamService/CancelStream"
	StreamService_ReclaimUnclaimed_FullMethodName         = "/satstream.v1.StreamService/ReclaimUnclaimed"
	StreamService_GetStream_FullMethodName                = "/satstream.v1.StreamService/GetStream"
	StreamService_ListStreamsForUser_FullMethodName       = "/satstream.v1.StreamService/ListStreamsForUser"
	StreamService_CreateTemplate_FullMethodName           = "/satstream.v1.StreamService/CreateTemplate"
	StreamService_CreateStreamFromTemplate_FullMethodName = "/satstream.v1.StreamService/CreateStreamFromTemplate"
	StreamService_ListTemplates_FullMethodName            = "/satstream.v1.StreamService/ListTemplates"
	StreamService_GetUserStats_FullMethodName             = "/satstream.v1.StreamService/GetUserStats"
	StreamService_GetGlobalStats_FullMethodName           = "/satstream.v1.StreamService/GetGlobalStats"
	StreamService_ExportStatement_FullMethodName          = "/satstream.v1.StreamService/ExportStatement"
)

// StreamServiceServer is the server API for satstream.v1.StreamService.
type StreamServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	CreateStream(context.Context, *CreateStreamRequest) (*CreateStreamResponse, error)
	ClaimStream(context.Context, *ClaimStreamRequest) (*ClaimStreamResponse, error)
	TopUpStream(context.Context, *TopUpStreamRequest) (*TopUpStreamResponse, error)
	CancelStream(context.Context, *CancelStreamRequest) (*CancelStreamResponse, error)
	ReclaimUnclaimed(context.Context, *ReclaimUnclaimedRequest) (*ReclaimUnclaimedResponse, error)
	GetStream(context.Context, *GetStreamRequest) (*GetStreamResponse, error)
	ListStreamsForUser(context.Context, *ListStreamsForUserRequest) (*ListStreamsForUserResponse, error)
	CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error)
	CreateStreamFromTemplate(context.Context, *CreateStreamFromTemplateRequest) (*CreateStreamFromTemplateResponse, error)
	ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error)
	GetUserStats(context.Context, *GetUserStatsRequest) (*GetUserStatsResponse, error)
	GetGlobalStats(context.Context, *GetGlobalStatsRequest) (*GetGlobalStatsResponse, error)
	ExportStatement(context.Context, *ExportStatementRequest) (*ExportStatementResponse, error)
}

// UnimplementedStreamServiceServer may be embedded for forward compatibility.
type UnimplementedStreamServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedStreamServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedStreamServiceServer) CreateStream(context.Context, *CreateStreamRequest) (*CreateStreamResponse, error) {
	return nil, unimplemented("CreateStream")
}
func (UnimplementedStreamServiceServer) ClaimStream(context.Context, *ClaimStreamRequest) (*ClaimStreamResponse, error) {
	return nil, unimplemented("ClaimStream")
}
func (UnimplementedStreamServiceServer) TopUpStream(context.Context, *TopUpStreamRequest) (*TopUpStreamResponse, error) {
	return nil, unimplemented("TopUpStream")
}
func (UnimplementedStreamServiceServer) CancelStream(context.Context, *CancelStreamRequest) (*CancelStreamResponse, error) {
	return nil, unimplemented("CancelStream")
}
func (UnimplementedStreamServiceServer) ReclaimUnclaimed(context.Context, *ReclaimUnclaimedRequest) (*ReclaimUnclaimedResponse, error) {
	return nil, unimplemented("ReclaimUnclaimed")
}
func (UnimplementedStreamServiceServer) GetStream(context.Context, *GetStreamRequest) (*GetStreamResponse, error) {
	return nil, unimplemented("GetStream")
}
func (UnimplementedStreamServiceServer) ListStreamsForUser(context.Context, *ListStreamsForUserRequest) (*ListStreamsForUserResponse, error) {
	return nil, unimplemented("ListStreamsForUser")
}
func (UnimplementedStreamServiceServer) CreateTemplate(context.Context, *CreateTemplateRequest) (*CreateTemplateResponse, error) {
	return nil, unimplemented("CreateTemplate")
}
func (UnimplementedStreamServiceServer) CreateStreamFromTemplate(context.Context, *CreateStreamFromTemplateRequest) (*CreateStreamFromTemplateResponse, error) {
	return nil, unimplemented("CreateStreamFromTemplate")
}
func (UnimplementedStreamServiceServer) ListTemplates(context.Context, *ListTemplatesRequest) (*ListTemplatesResponse, error) {
	return nil, unimplemented("ListTemplates")
}
func (UnimplementedStreamServiceServer) GetUserStats(context.Context, *GetUserStatsRequest) (*GetUserStatsResponse, error) {
	return nil, unimplemented("GetUserStats")
}
func (UnimplementedStreamServiceServer) GetGlobalStats(context.Context, *GetGlobalStatsRequest) (*GetGlobalStatsResponse, error) {
	return nil, unimplemented("GetGlobalStats")
}
func (UnimplementedStreamServiceServer) ExportStatement(context.Context, *ExportStatementRequest) (*ExportStatementResponse, error) {
	return nil, unimplemented("ExportStatement")
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req any, Resp any](fullMethod string, call func(StreamServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StreamServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StreamServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StreamService_ServiceDesc is the grpc.ServiceDesc for StreamService.
var StreamService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StreamServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(StreamService_Ping_FullMethodName, StreamServiceServer.Ping)},
		{MethodName: "CreateStream", Handler: unaryHandler(StreamService_CreateStream_FullMethodName, StreamServiceServer.CreateStream)},
		{MethodName: "ClaimStream", Handler: unaryHandler(StreamService_ClaimStream_FullMethodName, StreamServiceServer.ClaimStream)},
		{MethodName: "TopUpStream", Handler: unaryHandler(StreamService_TopUpStream_FullMethodName, StreamServiceServer.TopUpStream)},
		{MethodName: "CancelStream", Handler: unaryHandler(StreamService_CancelStream_FullMethodName, StreamServiceServer.CancelStream)},
		{MethodName: "ReclaimUnclaimed", Handler: unaryHandler(StreamService_ReclaimUnclaimed_FullMethodName, StreamServiceServer.ReclaimUnclaimed)},
		{MethodName: "GetStream", Handler: unaryHandler(StreamService_GetStream_FullMethodName, StreamServiceServer.GetStream)},
		{MethodName: "ListStreamsForUser", Handler: unaryHandler(StreamService_ListStreamsForUser_FullMethodName, StreamServiceServer.ListStreamsForUser)},
		{MethodName: "CreateTemplate", Handler: unaryHandler(StreamService_CreateTemplate_FullMethodName, StreamServiceServer.CreateTemplate)},
		{MethodName: "CreateStreamFromTemplate", Handler: unaryHandler(StreamService_CreateStreamFromTemplate_FullMethodName, StreamServiceServer.CreateStreamFromTemplate)},
		{MethodName: "ListTemplates", Handler: unaryHandler(StreamService_ListTemplates_FullMethodName, StreamServiceServer.ListTemplates)},
		{MethodName: "GetUserStats", Handler: unaryHandler(StreamService_GetUserStats_FullMethodName, StreamServiceServer.GetUserStats)},
		{MethodName: "GetGlobalStats", Handler: unaryHandler(StreamService_GetGlobalStats_FullMethodName, StreamServiceServer.GetGlobalStats)},
		{MethodName: "ExportStatement", Handler: unaryHandler(StreamService_ExportStatement_FullMethodName, StreamServiceServer.ExportStatement)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "satstream/v1/stream.proto",
}

func RegisterStreamServiceServer(s grpc.ServiceRegistrar, srv StreamServiceServer) {
	s.RegisterService(&StreamService_ServiceDesc, srv)
}
