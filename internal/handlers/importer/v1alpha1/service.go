package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the feature service
const ServiceName = "rpgimporter.v1alpha1.FeatureService"

// Full method names
const (
	ParseFeaturesMethod = "/" + ServiceName + "/ParseFeatures"
	GetImportMethod     = "/" + ServiceName + "/GetImport"
	ListImportsMethod   = "/" + ServiceName + "/ListImports"
)

// FeatureServiceServer is the server API for the feature service. Payloads are
// JSON objects carried as google.protobuf.Struct.
type FeatureServiceServer interface {
	ParseFeatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetImport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListImports(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// FeatureServiceDesc describes the feature service for grpc registration
var FeatureServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FeatureServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ParseFeatures", Handler: unaryHandler(ParseFeaturesMethod, FeatureServiceServer.ParseFeatures)},
		{MethodName: "GetImport", Handler: unaryHandler(GetImportMethod, FeatureServiceServer.GetImport)},
		{MethodName: "ListImports", Handler: unaryHandler(ListImportsMethod, FeatureServiceServer.ListImports)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgimporter/v1alpha1/feature.proto",
}

// RegisterFeatureServiceServer registers the feature service with a grpc server
func RegisterFeatureServiceServer(s grpc.ServiceRegistrar, srv FeatureServiceServer) {
	s.RegisterService(&FeatureServiceDesc, srv)
}

type unaryMethod func(FeatureServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, method unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return method(srv.(FeatureServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return method(srv.(FeatureServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FeatureServiceClient is the client API for the feature service
type FeatureServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFeatureServiceClient creates a client on an existing connection
func NewFeatureServiceClient(cc grpc.ClientConnInterface) *FeatureServiceClient {
	return &FeatureServiceClient{cc: cc}
}

// ParseFeatures sends a character document and returns the import
func (c *FeatureServiceClient) ParseFeatures(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ParseFeaturesMethod, in, opts...)
}

// GetImport returns a stored import
func (c *FeatureServiceClient) GetImport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetImportMethod, in, opts...)
}

// ListImports returns the stored imports of a character
func (c *FeatureServiceClient) ListImports(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListImportsMethod, in, opts...)
}

func (c *FeatureServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
