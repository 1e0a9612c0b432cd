// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/labels/v1/labels.proto

package labelsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	LabelsService_CreateLabel_FullMethodName      = "/labels.v1.LabelsService/CreateLabel"
	LabelsService_UpdateLabel_FullMethodName      = "/labels.v1.LabelsService/UpdateLabel"
	LabelsService_DeleteLabel_FullMethodName      = "/labels.v1.LabelsService/DeleteLabel"
	LabelsService_BulkDeleteLabels_FullMethodName = "/labels.v1.LabelsService/BulkDeleteLabels"
	LabelsService_GetLabel_FullMethodName         = "/labels.v1.LabelsService/GetLabel"
	LabelsService_ListLabels_FullMethodName       = "/labels.v1.LabelsService/ListLabels"
	LabelsService_GenerateLabels_FullMethodName   = "/labels.v1.LabelsService/GenerateLabels"
	LabelsService_ExportLabels_FullMethodName     = "/labels.v1.LabelsService/ExportLabels"
)

// LabelsServiceClient is the client API for LabelsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type LabelsServiceClient interface {
	CreateLabel(ctx context.Context, in *CreateLabelRequest, opts ...grpc.CallOption) (*CreateLabelResponse, error)
	UpdateLabel(ctx context.Context, in *UpdateLabelRequest, opts ...grpc.CallOption) (*UpdateLabelResponse, error)
	DeleteLabel(ctx context.Context, in *DeleteLabelRequest, opts ...grpc.CallOption) (*DeleteLabelResponse, error)
	BulkDeleteLabels(ctx context.Context, in *BulkDeleteLabelsRequest, opts ...grpc.CallOption) (*BulkDeleteLabelsResponse, error)
	GetLabel(ctx context.Context, in *GetLabelRequest, opts ...grpc.CallOption) (*GetLabelResponse, error)
	ListLabels(ctx context.Context, in *ListLabelsRequest, opts ...grpc.CallOption) (*ListLabelsResponse, error)
	GenerateLabels(ctx context.Context, in *GenerateLabelsRequest, opts ...grpc.CallOption) (*GenerateLabelsResponse, error)
	ExportLabels(ctx context.Context, in *ExportLabelsRequest, opts ...grpc.CallOption) (*ExportLabelsResponse, error)
}

type labelsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLabelsServiceClient(cc grpc.ClientConnInterface) LabelsServiceClient {
	return &labelsServiceClient{cc}
}

func (c *labelsServiceClient) CreateLabel(ctx context.Context, in *CreateLabelRequest, opts ...grpc.CallOption) (*CreateLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateLabelResponse)
	err := c.cc.Invoke(ctx, LabelsService_CreateLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) UpdateLabel(ctx context.Context, in *UpdateLabelRequest, opts ...grpc.CallOption) (*UpdateLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateLabelResponse)
	err := c.cc.Invoke(ctx, LabelsService_UpdateLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) DeleteLabel(ctx context.Context, in *DeleteLabelRequest, opts ...grpc.CallOption) (*DeleteLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteLabelResponse)
	err := c.cc.Invoke(ctx, LabelsService_DeleteLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) BulkDeleteLabels(ctx context.Context, in *BulkDeleteLabelsRequest, opts ...grpc.CallOption) (*BulkDeleteLabelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BulkDeleteLabelsResponse)
	err := c.cc.Invoke(ctx, LabelsService_BulkDeleteLabels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) GetLabel(ctx context.Context, in *GetLabelRequest, opts ...grpc.CallOption) (*GetLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLabelResponse)
	err := c.cc.Invoke(ctx, LabelsService_GetLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) ListLabels(ctx context.Context, in *ListLabelsRequest, opts ...grpc.CallOption) (*ListLabelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLabelsResponse)
	err := c.cc.Invoke(ctx, LabelsService_ListLabels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) GenerateLabels(ctx context.Context, in *GenerateLabelsRequest, opts ...grpc.CallOption) (*GenerateLabelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateLabelsResponse)
	err := c.cc.Invoke(ctx, LabelsService_GenerateLabels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) ExportLabels(ctx context.Context, in *ExportLabelsRequest, opts ...grpc.CallOption) (*ExportLabelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportLabelsResponse)
	err := c.cc.Invoke(ctx, LabelsService_ExportLabels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LabelsServiceServer is the server API for LabelsService service.
// All implementations must embed UnimplementedLabelsServiceServer
// for forward compatibility.
type LabelsServiceServer interface {
	CreateLabel(context.Context, *CreateLabelRequest) (*CreateLabelResponse, error)
	UpdateLabel(context.Context, *UpdateLabelRequest) (*UpdateLabelResponse, error)
	DeleteLabel(context.Context, *DeleteLabelRequest) (*DeleteLabelResponse, error)
	BulkDeleteLabels(context.Context, *BulkDeleteLabelsRequest) (*BulkDeleteLabelsResponse, error)
	GetLabel(context.Context, *GetLabelRequest) (*GetLabelResponse, error)
	ListLabels(context.Context, *ListLabelsRequest) (*ListLabelsResponse, error)
	GenerateLabels(context.Context, *GenerateLabelsRequest) (*GenerateLabelsResponse, error)
	ExportLabels(context.Context, *ExportLabelsRequest) (*ExportLabelsResponse, error)
	mustEmbedUnimplementedLabelsServiceServer()
}

// UnimplementedLabelsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLabelsServiceServer struct{}

func (UnimplementedLabelsServiceServer) CreateLabel(context.Context, *CreateLabelRequest) (*CreateLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLabel not implemented")
}
func (UnimplementedLabelsServiceServer) UpdateLabel(context.Context, *UpdateLabelRequest) (*UpdateLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateLabel not implemented")
}
func (UnimplementedLabelsServiceServer) DeleteLabel(context.Context, *DeleteLabelRequest) (*DeleteLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLabel not implemented")
}
func (UnimplementedLabelsServiceServer) BulkDeleteLabels(context.Context, *BulkDeleteLabelsRequest) (*BulkDeleteLabelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BulkDeleteLabels not implemented")
}
func (UnimplementedLabelsServiceServer) GetLabel(context.Context, *GetLabelRequest) (*GetLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLabel not implemented")
}
func (UnimplementedLabelsServiceServer) ListLabels(context.Context, *ListLabelsRequest) (*ListLabelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLabels not implemented")
}
func (UnimplementedLabelsServiceServer) GenerateLabels(context.Context, *GenerateLabelsRequest) (*GenerateLabelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateLabels not implemented")
}
func (UnimplementedLabelsServiceServer) ExportLabels(context.Context, *ExportLabelsRequest) (*ExportLabelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportLabels not implemented")
}
func (UnimplementedLabelsServiceServer) mustEmbedUnimplementedLabelsServiceServer() {}
func (UnimplementedLabelsServiceServer) testEmbeddedByValue()                       {}

// UnsafeLabelsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LabelsServiceServer will
// result in compilation errors.
type UnsafeLabelsServiceServer interface {
	mustEmbedUnimplementedLabelsServiceServer()
}

func RegisterLabelsServiceServer(s grpc.ServiceRegistrar, srv LabelsServiceServer) {
	// If the following call pancis, it indicates UnimplementedLabelsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LabelsService_ServiceDesc, srv)
}

func _LabelsService_CreateLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).CreateLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_CreateLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).CreateLabel(ctx, req.(*CreateLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_UpdateLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).UpdateLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_UpdateLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).UpdateLabel(ctx, req.(*UpdateLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_DeleteLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).DeleteLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_DeleteLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).DeleteLabel(ctx, req.(*DeleteLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_BulkDeleteLabels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkDeleteLabelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).BulkDeleteLabels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_BulkDeleteLabels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).BulkDeleteLabels(ctx, req.(*BulkDeleteLabelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_GetLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).GetLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_GetLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).GetLabel(ctx, req.(*GetLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_ListLabels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLabelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).ListLabels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_ListLabels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).ListLabels(ctx, req.(*ListLabelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_GenerateLabels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateLabelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).GenerateLabels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_GenerateLabels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).GenerateLabels(ctx, req.(*GenerateLabelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_ExportLabels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportLabelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).ExportLabels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_ExportLabels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).ExportLabels(ctx, req.(*ExportLabelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LabelsService_ServiceDesc is the grpc.ServiceDesc for LabelsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LabelsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "labels.v1.LabelsService",
	HandlerType: (*LabelsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateLabel",
			Handler:    _LabelsService_CreateLabel_Handler,
		},
		{
			MethodName: "UpdateLabel",
			Handler:    _LabelsService_UpdateLabel_Handler,
		},
		{
			MethodName: "DeleteLabel",
			Handler:    _LabelsService_DeleteLabel_Handler,
		},
		{
			MethodName: "BulkDeleteLabels",
			Handler:    _LabelsService_BulkDeleteLabels_Handler,
		},
		{
			MethodName: "GetLabel",
			Handler:    _LabelsService_GetLabel_Handler,
		},
		{
			MethodName: "ListLabels",
			Handler:    _LabelsService_ListLabels_Handler,
		},
		{
			MethodName: "GenerateLabels",
			Handler:    _LabelsService_GenerateLabels_Handler,
		},
		{
			MethodName: "ExportLabels",
			Handler:    _LabelsService_ExportLabels_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/labels/v1/labels.proto",
}
