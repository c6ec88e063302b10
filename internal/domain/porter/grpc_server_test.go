package porter

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
)

func startDispatch(t *testing.T) (dispatchv1.PorterServiceClient, *Bus) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	bus := NewBus(16)
	svc := NewService(newMockPorterRepo(), bus, NewEnricher(mockNames{}), zerolog.Nop())

	srv := grpc.NewServer()
	NewGRPCServer(svc, bus, nil, zerolog.Nop()).Register(srv)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
		bus.Close()
		srv.Stop()
	})
	return dispatchv1.NewPorterServiceClient(conn), bus
}

// waitSubscribers blocks until the server side has registered n streams.
func waitSubscribers(t *testing.T, bus *Bus, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for bus.Len() != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d subscribers, have %d", n, bus.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func wireRequest(urgency string) *dispatchv1.PorterRequest {
	return &dispatchv1.PorterRequest{
		RequesterName: "Ward 7",
		PatientHn:     "HN-9",
		PatientName:   "Malee",
		Pickup:        &dispatchv1.Location{BuildingId: "B1", DepartmentId: "D1"},
		Delivery:      &dispatchv1.Location{BuildingId: "B2", DepartmentId: "D2"},
		UrgencyLevel:  urgency,
	}
}

func TestSubscribe_EndToEnd(t *testing.T) {
	client, bus := startDispatch(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emergency, err := client.SubscribePorterRequests(ctx, &dispatchv1.SubscribeRequest{UrgencyFilter: wrapperspb.String("EMERGENCY")})
	if err != nil {
		t.Fatalf("subscribe emergency: %v", err)
	}
	all, err := client.SubscribePorterRequests(ctx, &dispatchv1.SubscribeRequest{})
	if err != nil {
		t.Fatalf("subscribe all: %v", err)
	}
	waitSubscribers(t, bus, 2)

	created, err := client.CreatePorterRequest(ctx, &dispatchv1.CreatePorterRequestRequest{Request: wireRequest("NORMAL")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ev, err := all.Recv()
	if err != nil {
		t.Fatalf("recv created: %v", err)
	}
	if ev.Type != dispatchv1.EventType_EVENT_TYPE_CREATED || ev.Request.Id != created.Request.Id {
		t.Fatalf("expected CREATED for %s, got %s for %s", created.Request.Id, ev.Type, ev.Request.Id)
	}

	if _, err := client.UpdatePorterRequestStatus(ctx, &dispatchv1.UpdateStatusRequest{
		Id:           created.Request.Id,
		Status:       "IN_PROGRESS",
		AssignedToId: wrapperspb.String("E1"),
	}); err != nil {
		t.Fatalf("transition: %v", err)
	}
	ev, err = all.Recv()
	if err != nil {
		t.Fatalf("recv status change: %v", err)
	}
	if ev.Type != dispatchv1.EventType_EVENT_TYPE_STATUS_CHANGED {
		t.Fatalf("expected STATUS_CHANGED, got %s", ev.Type)
	}
	if ev.Request.Status != "IN_PROGRESS" {
		t.Errorf("expected IN_PROGRESS, got %s", ev.Request.Status)
	}
	if ev.GetRequest().GetAssignedToId().GetValue() != "E1" {
		t.Errorf("expected assigned_to_id E1, got %v", ev.GetRequest().GetAssignedToId())
	}
	if ev.Request.AssignedToName != "Employee E1" {
		t.Errorf("expected enriched assignee name, got %q", ev.Request.AssignedToName)
	}

	// Delivery is ordered per subscriber, so if the first thing the
	// emergency subscriber sees is this marker, it saw nothing of R.
	marker, err := client.CreatePorterRequest(ctx, &dispatchv1.CreatePorterRequestRequest{Request: wireRequest("EMERGENCY")})
	if err != nil {
		t.Fatal(err)
	}
	ev, err = emergency.Recv()
	if err != nil {
		t.Fatalf("recv emergency: %v", err)
	}
	if ev.Request.Id != marker.Request.Id {
		t.Errorf("emergency subscriber received %s event for a NORMAL request", ev.Type)
	}
}

func TestSubscribe_StatusFilter(t *testing.T) {
	client, bus := startDispatch(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.SubscribePorterRequests(ctx, &dispatchv1.SubscribeRequest{StatusFilter: wrapperspb.String("IN_PROGRESS")})
	if err != nil {
		t.Fatal(err)
	}
	waitSubscribers(t, bus, 1)

	var ids []string
	for i := 0; i < 3; i++ {
		resp, err := client.CreatePorterRequest(ctx, &dispatchv1.CreatePorterRequestRequest{Request: wireRequest("RUSH")})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, resp.Request.Id)
	}
	if _, err := client.UpdatePorterRequestStatus(ctx, &dispatchv1.UpdateStatusRequest{Id: ids[1], Status: "IN_PROGRESS"}); err != nil {
		t.Fatal(err)
	}

	ev, err := stream.Recv()
	if err != nil {
		t.Fatal(err)
	}
	if ev.Type != dispatchv1.EventType_EVENT_TYPE_STATUS_CHANGED || ev.Request.Id != ids[1] {
		t.Errorf("expected only the STATUS_CHANGED for %s, got %s for %s", ids[1], ev.Type, ev.Request.Id)
	}
}

func TestSubscribe_WaitingFilterCoversBothStages(t *testing.T) {
	client, bus := startDispatch(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.SubscribePorterRequests(ctx, &dispatchv1.SubscribeRequest{StatusFilter: wrapperspb.String("WAITING")})
	if err != nil {
		t.Fatal(err)
	}
	waitSubscribers(t, bus, 1)

	created, err := client.CreatePorterRequest(ctx, &dispatchv1.CreatePorterRequestRequest{Request: wireRequest("NORMAL")})
	if err != nil {
		t.Fatal(err)
	}
	id := created.Request.Id
	for _, st := range []string{"WAITING_ACCEPT", "IN_PROGRESS"} {
		if _, err := client.UpdatePorterRequestStatus(ctx, &dispatchv1.UpdateStatusRequest{Id: id, Status: st}); err != nil {
			t.Fatalf("%s: %v", st, err)
		}
	}
	// Per-subscriber order means the marker arrives only after IN_PROGRESS was filtered.
	marker, err := client.CreatePorterRequest(ctx, &dispatchv1.CreatePorterRequestRequest{Request: wireRequest("NORMAL")})
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		id     string
		status string
	}{
		{id, "WAITING_CENTER"},
		{id, "WAITING_ACCEPT"},
		{marker.Request.Id, "WAITING_CENTER"},
	}
	for i, w := range want {
		ev, err := stream.Recv()
		if err != nil {
			t.Fatalf("recv %d: %v", i, err)
		}
		if ev.GetRequest().GetId() != w.id || ev.GetRequest().GetStatus() != w.status {
			t.Fatalf("event %d: expected %s in %s, got %s in %s",
				i, w.id, w.status, ev.GetRequest().GetId(), ev.GetRequest().GetStatus())
		}
	}
}

func TestSubscribe_ClientCancelUnsubscribes(t *testing.T) {
	client, bus := startDispatch(t)
	ctx, cancel := context.WithCancel(context.Background())

	stream, err := client.SubscribePorterRequests(ctx, &dispatchv1.SubscribeRequest{})
	if err != nil {
		t.Fatal(err)
	}
	waitSubscribers(t, bus, 1)

	cancel()
	if _, err := stream.Recv(); status.Code(err) != codes.Canceled {
		t.Errorf("expected Canceled, got %v", err)
	}
	waitSubscribers(t, bus, 0)
}

func TestSubscribe_BusCloseEndsStream(t *testing.T) {
	client, bus := startDispatch(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.SubscribePorterRequests(ctx, &dispatchv1.SubscribeRequest{})
	if err != nil {
		t.Fatal(err)
	}
	waitSubscribers(t, bus, 1)

	bus.Close()
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after bus close, got %v", err)
	}
}

func TestUnary_ErrorCodes(t *testing.T) {
	client, _ := startDispatch(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.GetPorterRequest(ctx, &dispatchv1.GetPorterRequestRequest{Id: uuid.NewString()})
	if status.Code(err) != codes.NotFound {
		t.Errorf("unknown id: expected NotFound, got %v", err)
	}
	_, err = client.GetPorterRequest(ctx, &dispatchv1.GetPorterRequestRequest{Id: "nope"})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("bad id: expected InvalidArgument, got %v", err)
	}

	created, err := client.CreatePorterRequest(ctx, &dispatchv1.CreatePorterRequestRequest{Request: wireRequest("NORMAL")})
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.UpdatePorterRequestStatus(ctx, &dispatchv1.UpdateStatusRequest{Id: created.Request.Id, Status: "COMPLETED"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("WAITING_CENTER -> COMPLETED: expected FailedPrecondition, got %v", err)
	}
	_, err = client.UpdatePorterRequestStatus(ctx, &dispatchv1.UpdateStatusRequest{Id: created.Request.Id, Status: "CANCELLED"})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("cancel without reason: expected InvalidArgument, got %v", err)
	}
	_, err = client.LookupPatient(ctx, &dispatchv1.LookupPatientRequest{Hn: "HN-1"})
	if status.Code(err) != codes.Unavailable {
		t.Errorf("lookup without clinical api: expected Unavailable, got %v", err)
	}
}

func TestUnary_ListAndDelete(t *testing.T) {
	client, _ := startDispatch(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.CreatePorterRequest(ctx, &dispatchv1.CreatePorterRequestRequest{Request: wireRequest("NORMAL")})
	if err != nil {
		t.Fatal(err)
	}
	list, err := client.ListPorterRequests(ctx, &dispatchv1.ListPorterRequestsRequest{Status: "waiting"})
	if err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 || len(list.Items) != 1 {
		t.Fatalf("expected 1 waiting request, got %d", list.Total)
	}
	if list.Items[0].Pickup.BuildingName != "Building B1" {
		t.Errorf("expected enriched list items, got %q", list.Items[0].Pickup.BuildingName)
	}

	if _, err := client.DeletePorterRequest(ctx, &dispatchv1.DeletePorterRequestRequest{Id: created.Request.Id}); err != nil {
		t.Fatal(err)
	}
	_, err = client.DeletePorterRequest(ctx, &dispatchv1.DeletePorterRequestRequest{Id: created.Request.Id})
	if status.Code(err) != codes.NotFound {
		t.Errorf("expected NotFound on second delete, got %v", err)
	}
}

type failingSender struct{ calls int }

func (f *failingSender) Send(*dispatchv1.PorterRequestEvent) error {
	f.calls++
	return errors.New("transport is closing")
}

func TestDeliver_Outcomes(t *testing.T) {
	inProgress := StatusInProgress
	filter := SubscriptionFilter{Status: &inProgress}
	sender := &failingSender{}

	res := deliver(sender, filter, Event{Type: EventCreated, Request: &PorterRequest{Status: StatusWaitingCenter}})
	if res.Outcome != DeliveryFiltered || sender.calls != 0 {
		t.Errorf("expected filtered without a send, got %v after %d sends", res.Outcome, sender.calls)
	}

	res = deliver(sender, filter, Event{Type: EventStatusChanged, Request: &PorterRequest{Status: StatusInProgress}})
	if res.Outcome != DeliveryFailed || res.Err == nil {
		t.Errorf("expected a failed result carrying the error, got %+v", res)
	}
}
