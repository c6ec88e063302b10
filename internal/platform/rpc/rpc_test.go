package rpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func startServer(t *testing.T, serving bool) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := NewServer(zerolog.Nop())
	if serving {
		srv.SetServing()
	}
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis.Addr().String()
}

func TestDialWithHealth_Serving(t *testing.T) {
	addr := startServer(t, true)
	conn, err := DialWithHealth(context.Background(), addr, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("dial with health: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close conn: %v", err)
	}
}

func TestDialWithHealth_NotServing(t *testing.T) {
	addr := startServer(t, false)
	start := time.Now()
	conn, err := DialWithHealth(context.Background(), addr, 300*time.Millisecond, nil)
	if err == nil {
		_ = conn.Close()
		t.Fatal("expected error")
	}
	var dialErr *DialError
	if !errors.As(err, &dialErr) || dialErr.Stage != DialStageHealth {
		t.Fatalf("expected health-stage DialError, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("expected the dial timeout to bound the health wait")
	}
}

func TestDialError_Format(t *testing.T) {
	err := &DialError{Stage: DialStageConnect, Err: errors.New("refused")}
	if !strings.Contains(err.Error(), "connect") || !strings.Contains(err.Error(), "refused") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, err.Err) {
		t.Error("expected Unwrap to expose the cause")
	}
	var nilErr *DialError
	if nilErr.Error() == "" || nilErr.Unwrap() != nil {
		t.Error("nil DialError must be safe to use")
	}
}

func TestWaitForHealth_NilConn(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Error("expected error for nil connection")
	}
}

func TestUnaryRecovery_ConvertsPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ic := UnaryRecovery(logger)

	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x.Y/Z"}, func(context.Context, any) (any, error) {
		panic("nil map")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Error("expected the panic to be logged")
	}
}

func TestUnaryLogger_LogsMethodAndCode(t *testing.T) {
	var buf bytes.Buffer
	ic := UnaryLogger(zerolog.New(&buf))

	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x.Y/Get"}, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "gone")
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected the handler error to pass through, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"method":"/x.Y/Get"`) || !strings.Contains(out, `"code":"NotFound"`) {
		t.Errorf("unexpected log line %s", out)
	}
}

func TestShutdown_ReturnsWhenIdle(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := NewServer(zerolog.Nop())
	go func() { _ = srv.Serve(lis) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	done := make(chan struct{})
	go func() {
		srv.Shutdown(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not return")
	}
}
