package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const financingServiceName = "stargestao.v1.FinancingService"

const (
	FinancingService_PresentValue_FullMethodName = "/" + financingServiceName + "/PresentValue"
	FinancingService_Schedule_FullMethodName     = "/" + financingServiceName + "/Schedule"
)

// FinancingServiceServer exposes the financing calculations to internal callers.
// Messages are google.protobuf.Struct carrying the same JSON fields as the REST API.
type FinancingServiceServer interface {
	PresentValue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Schedule(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterFinancingServiceServer(s grpc.ServiceRegistrar, srv FinancingServiceServer) {
	s.RegisterService(&FinancingService_ServiceDesc, srv)
}

func _FinancingService_PresentValue_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).PresentValue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinancingService_PresentValue_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FinancingServiceServer).PresentValue(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _FinancingService_Schedule_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FinancingServiceServer).Schedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FinancingService_Schedule_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FinancingServiceServer).Schedule(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var FinancingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: financingServiceName,
	HandlerType: (*FinancingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PresentValue", Handler: _FinancingService_PresentValue_Handler},
		{MethodName: "Schedule", Handler: _FinancingService_Schedule_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "stargestao/v1/financing.proto",
}

// FinancingServiceClient is the client side of FinancingService
type FinancingServiceClient interface {
	PresentValue(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Schedule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type financingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFinancingServiceClient(cc grpc.ClientConnInterface) FinancingServiceClient {
	return &financingServiceClient{cc}
}

func (c *financingServiceClient) PresentValue(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FinancingService_PresentValue_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *financingServiceClient) Schedule(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FinancingService_Schedule_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
