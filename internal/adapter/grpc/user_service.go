package grpc

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"user-container-demo/internal/usecase/user"
	pkgerrors "user-container-demo/pkg/errors"
	"user-container-demo/pkg/logger"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "userdemo.v1.UserDemo"

// Full method names, as seen by interceptors.
const (
	AddUserMethod     = "/" + ServiceName + "/AddUser"
	RenderUsersMethod = "/" + ServiceName + "/RenderUsers"
	ListKindsMethod   = "/" + ServiceName + "/ListKinds"
)

// UserDemoServer is the server API for the UserDemo service.
// Messages are protobuf well-known types:
//
//	AddUser(Struct{first_name,last_name,email,age}) returns Int64Value(id)
//	RenderUsers(StringValue(kind)) returns StringValue(report)
//	ListKinds(Empty) returns ListValue of Struct{key,title,description}
type UserDemoServer interface {
	AddUser(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	RenderUsers(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	ListKinds(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// UserDemoServiceDesc describes the UserDemo service for grpc.Server.RegisterService.
var UserDemoServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserDemoServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddUser", Handler: addUserHandler},
		{MethodName: "RenderUsers", Handler: renderUsersHandler},
		{MethodName: "ListKinds", Handler: listKindsHandler},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterUserDemoServer registers srv on s.
func RegisterUserDemoServer(s grpc.ServiceRegistrar, srv UserDemoServer) {
	s.RegisterService(&UserDemoServiceDesc, srv)
}

func addUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserDemoServer).AddUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AddUserMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserDemoServer).AddUser(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func renderUsersHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserDemoServer).RenderUsers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderUsersMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserDemoServer).RenderUsers(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listKindsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserDemoServer).ListKinds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListKindsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserDemoServer).ListKinds(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// UserServiceServer implements UserDemoServer on top of the user use case.
type UserServiceServer struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserServiceServer creates a new gRPC user service server
func NewUserServiceServer(uc user.Usecase, log *zap.Logger) *UserServiceServer {
	return &UserServiceServer{uc: uc, log: log}
}

// AddUser handles gRPC AddUser request
func (s *UserServiceServer) AddUser(ctx context.Context, in *structpb.Struct) (*wrapperspb.Int64Value, error) {
	fields := in.GetFields()

	req := user.AddUserRequest{}
	targets := []struct {
		name string
		dst  *string
	}{
		{"first_name", &req.FirstName},
		{"last_name", &req.LastName},
		{"email", &req.Email},
		{"age", &req.Age},
	}
	for _, t := range targets {
		text, err := fieldText(fields[t.name])
		if err != nil {
			logger.WithContext(ctx, s.log).Warn("invalid add user field", zap.String("field", t.name))
			return nil, pkgerrors.NewValidationError(t.name, err.Error())
		}
		*t.dst = text
	}

	resp, err := s.uc.AddUser(ctx, req)
	if err != nil {
		return nil, err
	}
	return wrapperspb.Int64(resp.ID), nil
}

// RenderUsers handles gRPC RenderUsers request
func (s *UserServiceServer) RenderUsers(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	resp, err := s.uc.RenderUsers(ctx, user.RenderUsersRequest{Kind: in.GetValue()})
	if err != nil {
		return nil, err
	}
	return wrapperspb.String(resp.Report), nil
}

// ListKinds handles gRPC ListKinds request
func (s *UserServiceServer) ListKinds(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	kinds := user.Kinds()
	values := make([]*structpb.Value, len(kinds))
	for i, k := range kinds {
		values[i] = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"key":         structpb.NewStringValue(k.Key),
			"title":       structpb.NewStringValue(k.Title),
			"description": structpb.NewStringValue(k.Description),
		}})
	}
	return &structpb.ListValue{Values: values}, nil
}

// fieldText renders a form field as the raw text the use case validates.
// Numbers are accepted so clients may send age as 30 or "30".
func fieldText(v *structpb.Value) (string, error) {
	switch k := v.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return "", nil
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64), nil
	default:
		return "", errInvalidFieldType
	}
}

var errInvalidFieldType = errors.New("must be a string or number")
