// Package rpc holds the gRPC plumbing shared by the dispatch server and its
// clients: server construction, interceptors, dialing and health checks.
package rpc

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Server bundles a gRPC server with its health service.
type Server struct {
	*grpc.Server
	Health *health.Server
}

// NewServer returns a gRPC server with tracing, request logging and panic
// recovery installed, and the standard health service registered as
// NOT_SERVING until SetServing is called.
func NewServer(logger zerolog.Logger, opts ...grpc.ServerOption) *Server {
	base := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(UnaryRecovery(logger), UnaryLogger(logger)),
		grpc.ChainStreamInterceptor(StreamRecovery(logger), StreamLogger(logger)),
	}
	s := grpc.NewServer(append(base, opts...)...)
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return &Server{Server: s, Health: hs}
}

// SetServing flips the overall health status to SERVING.
func (s *Server) SetServing() {
	s.Health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown marks the server NOT_SERVING and drains in-flight calls until ctx
// ends, after which remaining calls are cut.
func (s *Server) Shutdown(ctx context.Context) {
	s.Health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Stop()
	}
}

// UnaryLogger logs every unary call the way the HTTP request logger does.
func UnaryLogger(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(logger, info.FullMethod, start, err)
		return resp, err
	}
}

// StreamLogger logs every stream when it ends.
func StreamLogger(logger zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(logger, info.FullMethod, start, err)
		return err
	}
}

func logCall(logger zerolog.Logger, method string, start time.Time, err error) {
	code := status.Code(err)
	event := logger.Info()
	switch code {
	case codes.OK, codes.Canceled, codes.NotFound, codes.InvalidArgument, codes.FailedPrecondition, codes.Aborted:
	case codes.Internal, codes.Unknown, codes.DataLoss:
		event = logger.Error()
	default:
		event = logger.Warn()
	}
	event.
		Str("method", method).
		Str("code", code.String()).
		Dur("latency", time.Since(start)).
		Err(err).
		Msg("rpc")
}

// UnaryRecovery turns a handler panic into an Internal error.
func UnaryRecovery(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recovered(logger, info.FullMethod, r)
			}
		}()
		return handler(ctx, req)
	}
}

// StreamRecovery turns a stream handler panic into an Internal error.
func StreamRecovery(logger zerolog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recovered(logger, info.FullMethod, r)
			}
		}()
		return handler(srv, ss)
	}
}

func recovered(logger zerolog.Logger, method string, r any) error {
	logger.Error().
		Str("method", method).
		Str("panic", fmt.Sprintf("%v", r)).
		Str("stack", string(debug.Stack())).
		Msg("panic recovered")
	return status.Error(codes.Internal, "internal server error")
}
