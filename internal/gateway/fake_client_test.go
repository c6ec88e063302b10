package gateway

import (
	"context"
	"io"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
)

// fakeStream is driven by the test through events and errs. Closing events
// ends the stream with io.EOF.
type fakeStream struct {
	grpc.ClientStream
	ctx    context.Context
	events chan *dispatchv1.PorterRequestEvent
	errs   chan error
}

func newFakeStream(ctx context.Context) *fakeStream {
	return &fakeStream{
		ctx:    ctx,
		events: make(chan *dispatchv1.PorterRequestEvent, 16),
		errs:   make(chan error, 1),
	}
}

func (s *fakeStream) Recv() (*dispatchv1.PorterRequestEvent, error) {
	select {
	case <-s.ctx.Done():
		return nil, status.FromContextError(s.ctx.Err()).Err()
	case err := <-s.errs:
		return nil, err
	case ev, ok := <-s.events:
		if !ok {
			return nil, io.EOF
		}
		return ev, nil
	}
}

func (s *fakeStream) Context() context.Context { return s.ctx }

// fakeDispatch implements dispatchv1.PorterServiceClient. Unset funcs panic
// so an unexpected call fails loudly.
type fakeDispatch struct {
	mu        sync.Mutex
	subscribe *dispatchv1.SubscribeRequest
	streams   chan *fakeStream
	subErr    error

	create    func(*dispatchv1.CreatePorterRequestRequest) (*dispatchv1.PorterRequestResponse, error)
	get       func(*dispatchv1.GetPorterRequestRequest) (*dispatchv1.PorterRequestResponse, error)
	list      func(*dispatchv1.ListPorterRequestsRequest) (*dispatchv1.ListPorterRequestsResponse, error)
	update    func(*dispatchv1.UpdatePorterRequestRequest) (*dispatchv1.PorterRequestResponse, error)
	setStatus func(*dispatchv1.UpdateStatusRequest) (*dispatchv1.PorterRequestResponse, error)
	setTimes  func(*dispatchv1.UpdateTimestampsRequest) (*dispatchv1.PorterRequestResponse, error)
	del       func(*dispatchv1.DeletePorterRequestRequest) (*dispatchv1.DeletePorterRequestResponse, error)
	patient   func(*dispatchv1.LookupPatientRequest) (*dispatchv1.Patient, error)
}

func newFakeDispatch() *fakeDispatch {
	return &fakeDispatch{streams: make(chan *fakeStream, 4)}
}

func (f *fakeDispatch) lastSubscribe() *dispatchv1.SubscribeRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subscribe
}

func (f *fakeDispatch) SubscribePorterRequests(ctx context.Context, in *dispatchv1.SubscribeRequest, _ ...grpc.CallOption) (grpc.ServerStreamingClient[dispatchv1.PorterRequestEvent], error) {
	f.mu.Lock()
	f.subscribe = in
	f.mu.Unlock()
	if f.subErr != nil {
		return nil, f.subErr
	}
	s := newFakeStream(ctx)
	f.streams <- s
	return s, nil
}

func (f *fakeDispatch) CreatePorterRequest(_ context.Context, in *dispatchv1.CreatePorterRequestRequest, _ ...grpc.CallOption) (*dispatchv1.PorterRequestResponse, error) {
	return f.create(in)
}

func (f *fakeDispatch) GetPorterRequest(_ context.Context, in *dispatchv1.GetPorterRequestRequest, _ ...grpc.CallOption) (*dispatchv1.PorterRequestResponse, error) {
	return f.get(in)
}

func (f *fakeDispatch) ListPorterRequests(_ context.Context, in *dispatchv1.ListPorterRequestsRequest, _ ...grpc.CallOption) (*dispatchv1.ListPorterRequestsResponse, error) {
	return f.list(in)
}

func (f *fakeDispatch) UpdatePorterRequest(_ context.Context, in *dispatchv1.UpdatePorterRequestRequest, _ ...grpc.CallOption) (*dispatchv1.PorterRequestResponse, error) {
	return f.update(in)
}

func (f *fakeDispatch) UpdatePorterRequestStatus(_ context.Context, in *dispatchv1.UpdateStatusRequest, _ ...grpc.CallOption) (*dispatchv1.PorterRequestResponse, error) {
	return f.setStatus(in)
}

func (f *fakeDispatch) UpdatePorterRequestTimestamps(_ context.Context, in *dispatchv1.UpdateTimestampsRequest, _ ...grpc.CallOption) (*dispatchv1.PorterRequestResponse, error) {
	return f.setTimes(in)
}

func (f *fakeDispatch) DeletePorterRequest(_ context.Context, in *dispatchv1.DeletePorterRequestRequest, _ ...grpc.CallOption) (*dispatchv1.DeletePorterRequestResponse, error) {
	return f.del(in)
}

func (f *fakeDispatch) LookupPatient(_ context.Context, in *dispatchv1.LookupPatientRequest, _ ...grpc.CallOption) (*dispatchv1.Patient, error) {
	return f.patient(in)
}
