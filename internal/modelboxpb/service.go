package modelboxpb

import (
	"context"

	"google.golang.org/grpc"
)

// ModelStoreServer is the server API for the ModelStore service, hand-bound
// against proto/modelbox/service.proto's `service ModelStore` block. The
// method set and signatures are exactly what protoc-gen-go-grpc would emit.
type ModelStoreServer interface {
	CreateExperiment(context.Context, *CreateExperimentRequest) (*CreateExperimentResponse, error)
	ListExperiments(context.Context, *ListExperimentsRequest) (*ListExperimentsResponse, error)
	GetExperiment(context.Context, *GetExperimentRequest) (*GetExperimentResponse, error)

	CreateModel(context.Context, *CreateModelRequest) (*CreateModelResponse, error)
	ListModels(context.Context, *ListModelsRequest) (*ListModelsResponse, error)

	CreateModelVersion(context.Context, *CreateModelVersionRequest) (*CreateModelVersionResponse, error)
	ListModelVersions(context.Context, *ListModelVersionsRequest) (*ListModelVersionsResponse, error)

	UpdateMetadata(context.Context, *UpdateMetadataRequest) (*UpdateMetadataResponse, error)
	ListMetadata(context.Context, *ListMetadataRequest) (*ListMetadataResponse, error)

	TrackArtifacts(context.Context, *TrackArtifactsRequest) (*TrackArtifactsResponse, error)
	ListArtifacts(context.Context, *ListArtifactsRequest) (*ListArtifactsResponse, error)

	LogMetrics(context.Context, *LogMetricsRequest) (*LogMetricsResponse, error)
	GetMetrics(context.Context, *GetMetricsRequest) (*GetMetricsResponse, error)

	LogEvent(context.Context, *LogEventRequest) (*LogEventResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)

	UploadFile(ModelStore_UploadFileServer) error
	DownloadFile(*DownloadFileRequest, ModelStore_DownloadFileServer) error
	WatchNamespace(*WatchNamespaceRequest, ModelStore_WatchNamespaceServer) error
}

// ModelStore_UploadFileServer is the server-side stream handle for the
// client-streaming UploadFile RPC.
type ModelStore_UploadFileServer interface {
	Recv() (*UploadFileRequest, error)
	SendAndClose(*UploadFileResponse) error
	grpc.ServerStream
}

type modelStoreUploadFileServer struct {
	grpc.ServerStream
}

func (s *modelStoreUploadFileServer) Recv() (*UploadFileRequest, error) {
	m := new(UploadFileRequest)
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *modelStoreUploadFileServer) SendAndClose(m *UploadFileResponse) error {
	return s.ServerStream.SendMsg(m)
}

// ModelStore_DownloadFileServer is the server-side stream handle for the
// server-streaming DownloadFile RPC (unimplemented; see §1/§6).
type ModelStore_DownloadFileServer interface {
	Send(*DownloadFileResponse) error
	grpc.ServerStream
}

type modelStoreDownloadFileServer struct {
	grpc.ServerStream
}

func (s *modelStoreDownloadFileServer) Send(m *DownloadFileResponse) error {
	return s.ServerStream.SendMsg(m)
}

// ModelStore_WatchNamespaceServer is the server-side stream handle for the
// server-streaming WatchNamespace RPC (unimplemented; see §1/§6).
type ModelStore_WatchNamespaceServer interface {
	Send(*WatchNamespaceResponse) error
	grpc.ServerStream
}

type modelStoreWatchNamespaceServer struct {
	grpc.ServerStream
}

func (s *modelStoreWatchNamespaceServer) Send(m *WatchNamespaceResponse) error {
	return s.ServerStream.SendMsg(m)
}

// RegisterModelStoreServer registers srv's implementation against s.
func RegisterModelStoreServer(s grpc.ServiceRegistrar, srv ModelStoreServer) {
	s.RegisterService(&_ModelStore_serviceDesc, srv)
}

func _ModelStore_CreateExperiment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateExperimentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).CreateExperiment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/CreateExperiment"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).CreateExperiment(ctx, req.(*CreateExperimentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_ListExperiments_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListExperimentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).ListExperiments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/ListExperiments"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).ListExperiments(ctx, req.(*ListExperimentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_GetExperiment_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetExperimentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).GetExperiment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/GetExperiment"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).GetExperiment(ctx, req.(*GetExperimentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_CreateModel_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateModelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).CreateModel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/CreateModel"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).CreateModel(ctx, req.(*CreateModelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_ListModels_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListModelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).ListModels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/ListModels"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).ListModels(ctx, req.(*ListModelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_CreateModelVersion_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateModelVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).CreateModelVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/CreateModelVersion"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).CreateModelVersion(ctx, req.(*CreateModelVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_ListModelVersions_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListModelVersionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).ListModelVersions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/ListModelVersions"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).ListModelVersions(ctx, req.(*ListModelVersionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_UpdateMetadata_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateMetadataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).UpdateMetadata(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/UpdateMetadata"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).UpdateMetadata(ctx, req.(*UpdateMetadataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_ListMetadata_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMetadataRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).ListMetadata(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/ListMetadata"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).ListMetadata(ctx, req.(*ListMetadataRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_TrackArtifacts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TrackArtifactsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).TrackArtifacts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/TrackArtifacts"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).TrackArtifacts(ctx, req.(*TrackArtifactsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_ListArtifacts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListArtifactsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).ListArtifacts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/ListArtifacts"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).ListArtifacts(ctx, req.(*ListArtifactsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_LogMetrics_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LogMetricsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).LogMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/LogMetrics"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).LogMetrics(ctx, req.(*LogMetricsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_GetMetrics_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetMetricsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).GetMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/GetMetrics"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).GetMetrics(ctx, req.(*GetMetricsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_LogEvent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LogEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).LogEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/LogEvent"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).LogEvent(ctx, req.(*LogEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_ListEvents_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelStoreServer).ListEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modelbox.ModelStore/ListEvents"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ModelStoreServer).ListEvents(ctx, req.(*ListEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelStore_UploadFile_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ModelStoreServer).UploadFile(&modelStoreUploadFileServer{stream})
}

func _ModelStore_DownloadFile_Handler(srv any, stream grpc.ServerStream) error {
	m := new(DownloadFileRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ModelStoreServer).DownloadFile(m, &modelStoreDownloadFileServer{stream})
}

func _ModelStore_WatchNamespace_Handler(srv any, stream grpc.ServerStream) error {
	m := new(WatchNamespaceRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ModelStoreServer).WatchNamespace(m, &modelStoreWatchNamespaceServer{stream})
}

// _ModelStore_serviceDesc mirrors what protoc-gen-go-grpc emits for the
// `service ModelStore` block in service.proto.
var _ModelStore_serviceDesc = grpc.ServiceDesc{
	ServiceName: "modelbox.ModelStore",
	HandlerType: (*ModelStoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateExperiment", Handler: _ModelStore_CreateExperiment_Handler},
		{MethodName: "ListExperiments", Handler: _ModelStore_ListExperiments_Handler},
		{MethodName: "GetExperiment", Handler: _ModelStore_GetExperiment_Handler},
		{MethodName: "CreateModel", Handler: _ModelStore_CreateModel_Handler},
		{MethodName: "ListModels", Handler: _ModelStore_ListModels_Handler},
		{MethodName: "CreateModelVersion", Handler: _ModelStore_CreateModelVersion_Handler},
		{MethodName: "ListModelVersions", Handler: _ModelStore_ListModelVersions_Handler},
		{MethodName: "UpdateMetadata", Handler: _ModelStore_UpdateMetadata_Handler},
		{MethodName: "ListMetadata", Handler: _ModelStore_ListMetadata_Handler},
		{MethodName: "TrackArtifacts", Handler: _ModelStore_TrackArtifacts_Handler},
		{MethodName: "ListArtifacts", Handler: _ModelStore_ListArtifacts_Handler},
		{MethodName: "LogMetrics", Handler: _ModelStore_LogMetrics_Handler},
		{MethodName: "GetMetrics", Handler: _ModelStore_GetMetrics_Handler},
		{MethodName: "LogEvent", Handler: _ModelStore_LogEvent_Handler},
		{MethodName: "ListEvents", Handler: _ModelStore_ListEvents_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "UploadFile",
			Handler:       _ModelStore_UploadFile_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "DownloadFile",
			Handler:       _ModelStore_DownloadFile_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "WatchNamespace",
			Handler:       _ModelStore_WatchNamespace_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "modelbox/service.proto",
}
