// Package dashboardv1 は hrdashboard.v1.DashboardService の gRPC サービス定義です。
//
// メッセージには protobuf の well-known types (Struct / Int64Value / BoolValue / Empty) を用います。
package dashboardv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "hrdashboard.v1.DashboardService"

const (
	DashboardService_ListEmployees_FullMethodName           = "/" + ServiceName + "/ListEmployees"
	DashboardService_GetEmployee_FullMethodName             = "/" + ServiceName + "/GetEmployee"
	DashboardService_ListBookmarkedEmployees_FullMethodName = "/" + ServiceName + "/ListBookmarkedEmployees"
	DashboardService_AddBookmark_FullMethodName             = "/" + ServiceName + "/AddBookmark"
	DashboardService_RemoveBookmark_FullMethodName          = "/" + ServiceName + "/RemoveBookmark"
	DashboardService_IsBookmarked_FullMethodName            = "/" + ServiceName + "/IsBookmarked"
	DashboardService_GetAnalytics_FullMethodName            = "/" + ServiceName + "/GetAnalytics"
	DashboardService_GetDirectoryStatus_FullMethodName      = "/" + ServiceName + "/GetDirectoryStatus"
	DashboardService_ReloadEmployees_FullMethodName         = "/" + ServiceName + "/ReloadEmployees"
)

// DashboardServiceServer はプレゼンテーション層へ公開する読み取り・操作インターフェースです。
type DashboardServiceServer interface {
	ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEmployee(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	ListBookmarkedEmployees(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	AddBookmark(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
	RemoveBookmark(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
	IsBookmarked(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	GetAnalytics(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetDirectoryStatus(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ReloadEmployees(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedDashboardServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedDashboardServiceServer struct{}

func (UnimplementedDashboardServiceServer) ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}
func (UnimplementedDashboardServiceServer) GetEmployee(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployee not implemented")
}
func (UnimplementedDashboardServiceServer) ListBookmarkedEmployees(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBookmarkedEmployees not implemented")
}
func (UnimplementedDashboardServiceServer) AddBookmark(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AddBookmark not implemented")
}
func (UnimplementedDashboardServiceServer) RemoveBookmark(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveBookmark not implemented")
}
func (UnimplementedDashboardServiceServer) IsBookmarked(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method IsBookmarked not implemented")
}
func (UnimplementedDashboardServiceServer) GetAnalytics(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAnalytics not implemented")
}
func (UnimplementedDashboardServiceServer) GetDirectoryStatus(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDirectoryStatus not implemented")
}
func (UnimplementedDashboardServiceServer) ReloadEmployees(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ReloadEmployees not implemented")
}

// RegisterDashboardServiceServer は srv を s に登録します。
func RegisterDashboardServiceServer(s grpc.ServiceRegistrar, srv DashboardServiceServer) {
	s.RegisterService(&DashboardService_ServiceDesc, srv)
}

// unaryHandler は grpc.MethodDesc のハンドラを型付きで組み立てます。
func unaryHandler[Req any, Resp any](fullMethod string, call func(DashboardServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DashboardServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DashboardServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// DashboardService_ServiceDesc は DashboardService の grpc.ServiceDesc です。
var DashboardService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DashboardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListEmployees",
			Handler:    unaryHandler(DashboardService_ListEmployees_FullMethodName, DashboardServiceServer.ListEmployees),
		},
		{
			MethodName: "GetEmployee",
			Handler:    unaryHandler(DashboardService_GetEmployee_FullMethodName, DashboardServiceServer.GetEmployee),
		},
		{
			MethodName: "ListBookmarkedEmployees",
			Handler:    unaryHandler(DashboardService_ListBookmarkedEmployees_FullMethodName, DashboardServiceServer.ListBookmarkedEmployees),
		},
		{
			MethodName: "AddBookmark",
			Handler:    unaryHandler(DashboardService_AddBookmark_FullMethodName, DashboardServiceServer.AddBookmark),
		},
		{
			MethodName: "RemoveBookmark",
			Handler:    unaryHandler(DashboardService_RemoveBookmark_FullMethodName, DashboardServiceServer.RemoveBookmark),
		},
		{
			MethodName: "IsBookmarked",
			Handler:    unaryHandler(DashboardService_IsBookmarked_FullMethodName, DashboardServiceServer.IsBookmarked),
		},
		{
			MethodName: "GetAnalytics",
			Handler:    unaryHandler(DashboardService_GetAnalytics_FullMethodName, DashboardServiceServer.GetAnalytics),
		},
		{
			MethodName: "GetDirectoryStatus",
			Handler:    unaryHandler(DashboardService_GetDirectoryStatus_FullMethodName, DashboardServiceServer.GetDirectoryStatus),
		},
		{
			MethodName: "ReloadEmployees",
			Handler:    unaryHandler(DashboardService_ReloadEmployees_FullMethodName, DashboardServiceServer.ReloadEmployees),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hrdashboard/v1/dashboard.proto",
}

// DashboardServiceClient は DashboardService のクライアントです。
type DashboardServiceClient interface {
	ListEmployees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetEmployee(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListBookmarkedEmployees(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddBookmark(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
	RemoveBookmark(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
	IsBookmarked(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	GetAnalytics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDirectoryStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReloadEmployees(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type dashboardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDashboardServiceClient は cc を利用するクライアントを生成します。
func NewDashboardServiceClient(cc grpc.ClientConnInterface) DashboardServiceClient {
	return &dashboardServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dashboardServiceClient) ListEmployees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, DashboardService_ListEmployees_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) GetEmployee(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, DashboardService_GetEmployee_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) ListBookmarkedEmployees(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, DashboardService_ListBookmarkedEmployees_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) AddBookmark(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, DashboardService_AddBookmark_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) RemoveBookmark(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, DashboardService_RemoveBookmark_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) IsBookmarked(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, DashboardService_IsBookmarked_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) GetAnalytics(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, DashboardService_GetAnalytics_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) GetDirectoryStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, DashboardService_GetDirectoryStatus_FullMethodName, in, opts)
}

func (c *dashboardServiceClient) ReloadEmployees(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, DashboardService_ReloadEmployees_FullMethodName, in, opts)
}
