package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "timetrack.v1.TimetrackService"

// TimetrackServiceServer is the server interface for the timetrack service.
type TimetrackServiceServer interface {
	GetInfo(context.Context, *emptypb.Empty) (*TimetrackInfo, error)
	SaveEntry(context.Context, *SaveEntryRequest) (*Entry, error)
	DeleteEntry(context.Context, *EntryID) (*emptypb.Empty, error)
	CompleteEntry(context.Context, *EntryID) (*Entry, error)
	UncompleteEntry(context.Context, *EntryID) (*Entry, error)
	StartEntry(context.Context, *StartEntryRequest) (*Entry, error)
	StopEntry(context.Context, *StopEntryRequest) (*Entry, error)
	ResetEntry(context.Context, *EntryID) (*Entry, error)
	AddMilliseconds(context.Context, *AddMillisecondsRequest) (*Entry, error)
	SetNote(context.Context, *SetNoteRequest) (*Entry, error)
	LinkRecord(context.Context, *LinkRecordRequest) (*Entry, error)
}

// RegisterTimetrackServiceServer registers the service implementation with
// the gRPC server.
func RegisterTimetrackServiceServer(s *grpc.Server, srv TimetrackServiceServer) {
	s.RegisterService(&timetrackServiceDesc, srv)
}

func unaryHandler[Req any](
	method string,
	call func(TimetrackServiceServer, context.Context, *Req) (interface{}, error),
) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TimetrackServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(TimetrackServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var timetrackServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TimetrackServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetInfo",
			Handler: unaryHandler("GetInfo", func(s TimetrackServiceServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return s.GetInfo(ctx, in)
			}),
		},
		{
			MethodName: "SaveEntry",
			Handler: unaryHandler("SaveEntry", func(s TimetrackServiceServer, ctx context.Context, in *SaveEntryRequest) (interface{}, error) {
				return s.SaveEntry(ctx, in)
			}),
		},
		{
			MethodName: "DeleteEntry",
			Handler: unaryHandler("DeleteEntry", func(s TimetrackServiceServer, ctx context.Context, in *EntryID) (interface{}, error) {
				return s.DeleteEntry(ctx, in)
			}),
		},
		{
			MethodName: "CompleteEntry",
			Handler: unaryHandler("CompleteEntry", func(s TimetrackServiceServer, ctx context.Context, in *EntryID) (interface{}, error) {
				return s.CompleteEntry(ctx, in)
			}),
		},
		{
			MethodName: "UncompleteEntry",
			Handler: unaryHandler("UncompleteEntry", func(s TimetrackServiceServer, ctx context.Context, in *EntryID) (interface{}, error) {
				return s.UncompleteEntry(ctx, in)
			}),
		},
		{
			MethodName: "StartEntry",
			Handler: unaryHandler("StartEntry", func(s TimetrackServiceServer, ctx context.Context, in *StartEntryRequest) (interface{}, error) {
				return s.StartEntry(ctx, in)
			}),
		},
		{
			MethodName: "StopEntry",
			Handler: unaryHandler("StopEntry", func(s TimetrackServiceServer, ctx context.Context, in *StopEntryRequest) (interface{}, error) {
				return s.StopEntry(ctx, in)
			}),
		},
		{
			MethodName: "ResetEntry",
			Handler: unaryHandler("ResetEntry", func(s TimetrackServiceServer, ctx context.Context, in *EntryID) (interface{}, error) {
				return s.ResetEntry(ctx, in)
			}),
		},
		{
			MethodName: "AddMilliseconds",
			Handler: unaryHandler("AddMilliseconds", func(s TimetrackServiceServer, ctx context.Context, in *AddMillisecondsRequest) (interface{}, error) {
				return s.AddMilliseconds(ctx, in)
			}),
		},
		{
			MethodName: "SetNote",
			Handler: unaryHandler("SetNote", func(s TimetrackServiceServer, ctx context.Context, in *SetNoteRequest) (interface{}, error) {
				return s.SetNote(ctx, in)
			}),
		},
		{
			MethodName: "LinkRecord",
			Handler: unaryHandler("LinkRecord", func(s TimetrackServiceServer, ctx context.Context, in *LinkRecordRequest) (interface{}, error) {
				return s.LinkRecord(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "timetrack/v1/timetrack.proto",
}
