package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
	"github.com/medportal/porter/internal/platform/metrics"
	"github.com/medportal/porter/internal/platform/sse"
)

// DefaultPingInterval keeps idle proxies from timing out the push channel.
const DefaultPingInterval = 20 * time.Second

// State is the lifecycle stage of one browser push connection.
type State int32

const (
	StateOpen State = iota
	StateStreaming
	StateClosedNormal
	StateClosedError
	StateClosedByClient
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateStreaming:
		return "streaming"
	case StateClosedNormal:
		return "closed_normal"
	case StateClosedError:
		return "closed_error"
	case StateClosedByClient:
		return "closed_by_client"
	}
	return "unknown"
}

// Terminal reports whether s is one of the closed states.
func (s State) Terminal() bool {
	return s >= StateClosedNormal
}

// Subscriber opens the upstream event stream.
type Subscriber interface {
	SubscribePorterRequests(ctx context.Context, in *dispatchv1.SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[dispatchv1.PorterRequestEvent], error)
}

// connection is one browser push channel and the upstream stream it owns.
// Every exit path ends in close, which runs its body at most once.
type connection struct {
	id    string
	state atomic.Int32

	cancelUpstream func()
	stopTicker     func()
	writer         interface{ Close() bool }

	done chan struct{}
	log  zerolog.Logger
}

func newConnection(id string, log zerolog.Logger) *connection {
	return &connection{id: id, done: make(chan struct{}), log: log}
}

func (c *connection) State() State {
	return State(c.state.Load())
}

// startStreaming moves OPEN to STREAMING. It fails if the connection has
// already been closed during setup.
func (c *connection) startStreaming() bool {
	return c.state.CompareAndSwap(int32(StateOpen), int32(StateStreaming))
}

// close moves the connection to the terminal state to and tears down both
// ends. Only the first caller wins; later callers return false immediately
// and should wait on done. A connection may also close straight from OPEN
// when the browser leaves before the first frame; it then never reaches
// STREAMING.
func (c *connection) close(to State) bool {
	for {
		cur := State(c.state.Load())
		if cur.Terminal() {
			return false
		}
		if c.state.CompareAndSwap(int32(cur), int32(to)) {
			break
		}
	}
	if c.cancelUpstream != nil {
		c.cancelUpstream()
	}
	if c.stopTicker != nil {
		c.stopTicker()
	}
	if c.writer != nil {
		c.writer.Close()
	}
	metrics.RelayClosed.WithLabelValues(to.String()).Inc()
	c.log.Info().Str("state", to.String()).Msg("push connection closed")
	close(c.done)
	return true
}

// Relay bridges the dispatch subscription stream to browser push channels.
type Relay struct {
	upstream     Subscriber
	pingInterval time.Duration
	logger       zerolog.Logger

	stopping chan struct{}
	stopOnce sync.Once
}

// NewRelay returns a Relay. A non-positive pingInterval uses the default.
func NewRelay(upstream Subscriber, pingInterval time.Duration, logger zerolog.Logger) *Relay {
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}
	return &Relay{
		upstream:     upstream,
		pingInterval: pingInterval,
		logger:       logger.With().Str("component", "gateway.relay").Logger(),
		stopping:     make(chan struct{}),
	}
}

// Shutdown ends every open push connection normally. It is safe to call
// more than once.
func (r *Relay) Shutdown() {
	r.stopOnce.Do(func() { close(r.stopping) })
}

type errorFrame struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Stream serves GET /porter-requests/stream. The response stays open until
// the browser leaves or the upstream stream ends or fails.
func (r *Relay) Stream(c echo.Context) error {
	in := &dispatchv1.SubscribeRequest{}
	if v := c.QueryParam("status"); v != "" {
		in.StatusFilter = wrapperspb.String(v)
	}
	if v := c.QueryParam("urgency_level"); v != "" {
		in.UrgencyFilter = wrapperspb.String(v)
	}

	conn := newConnection(uuid.NewString(), r.logger)
	conn.log = r.logger.With().Str("connection", conn.id).Logger()

	ctx, cancel := context.WithCancel(c.Request().Context())
	conn.cancelUpstream = cancel
	stream, err := r.upstream.SubscribePorterRequests(ctx, in)
	if err != nil {
		cancel()
		conn.log.Warn().Err(err).Msg("cannot open upstream stream")
		return echo.NewHTTPError(http.StatusServiceUnavailable, "dispatch service unavailable")
	}

	w, err := sse.NewWriter(c.Response())
	if err != nil {
		cancel()
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	conn.writer = w
	w.Open()

	ticker := time.NewTicker(r.pingInterval)
	conn.stopTicker = ticker.Stop
	if c.Request().Context().Err() != nil {
		conn.close(StateClosedByClient)
	}
	if !conn.startStreaming() {
		<-conn.done
		return nil
	}

	metrics.RelayConnections.Inc()
	defer metrics.RelayConnections.Dec()
	conn.log.Info().
		Str("status", c.QueryParam("status")).
		Str("urgency_level", c.QueryParam("urgency_level")).
		Msg("push connection open")

	go r.pump(ctx, conn, stream, w)

	clientGone := c.Request().Context().Done()
	for {
		select {
		case <-conn.done:
			return nil
		case <-clientGone:
			conn.close(StateClosedByClient)
			<-conn.done
			return nil
		case <-r.stopping:
			conn.close(StateClosedNormal)
			<-conn.done
			return nil
		case <-ticker.C:
			if err := w.Comment("ping"); err != nil && !errors.Is(err, sse.ErrClosed) {
				conn.close(StateClosedByClient)
			}
		}
	}
}

// pump copies upstream events onto the push channel until the stream ends.
func (r *Relay) pump(ctx context.Context, conn *connection, stream grpc.ServerStreamingClient[dispatchv1.PorterRequestEvent], w *sse.Writer) {
	for {
		ev, err := stream.Recv()
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				conn.close(StateClosedNormal)
			case ctx.Err() != nil:
				// torn down from our side
			default:
				st := status.Convert(err)
				conn.log.Warn().Err(err).Msg("upstream stream failed")
				_ = w.Event("error", errorFrame{Code: st.Code().String(), Message: st.Message()})
				conn.close(StateClosedError)
			}
			return
		}

		if w.Closed() {
			return
		}
		env, ok := envelopeFor(ev)
		if !ok {
			conn.log.Warn().Int32("type", int32(ev.GetType())).Msg("dropping event with unknown type")
			continue
		}
		if err := w.Data(env); err != nil {
			if errors.Is(err, sse.ErrClosed) {
				return
			}
			conn.log.Debug().Err(err).Msg("push write failed")
			conn.close(StateClosedByClient)
			return
		}
	}
}
