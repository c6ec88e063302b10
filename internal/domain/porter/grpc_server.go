package porter

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
	"github.com/medportal/porter/internal/platform/clinical"
	"github.com/medportal/porter/internal/platform/metrics"
	"github.com/medportal/porter/pkg/pagination"
)

// PatientLookup resolves a hospital number against the clinical API.
type PatientLookup interface {
	LookupPatient(ctx context.Context, hn string) (*clinical.Patient, error)
}

// GRPCServer serves the dispatch API over gRPC.
type GRPCServer struct {
	dispatchv1.UnimplementedPorterServiceServer

	svc      *Service
	bus      *Bus
	patients PatientLookup
	logger   zerolog.Logger
}

// NewGRPCServer wires the server. patients may be nil when the clinical API
// is not configured; LookupPatient then answers Unavailable.
func NewGRPCServer(svc *Service, bus *Bus, patients PatientLookup, logger zerolog.Logger) *GRPCServer {
	return &GRPCServer{
		svc:      svc,
		bus:      bus,
		patients: patients,
		logger:   logger.With().Str("component", "porter.grpc").Logger(),
	}
}

// Register attaches the server to a gRPC registrar.
func (s *GRPCServer) Register(r grpc.ServiceRegistrar) {
	dispatchv1.RegisterPorterServiceServer(r, s)
}

func (s *GRPCServer) CreatePorterRequest(ctx context.Context, in *dispatchv1.CreatePorterRequestRequest) (*dispatchv1.PorterRequestResponse, error) {
	if in.GetRequest() == nil {
		return nil, ToStatus(validationError("request is required"))
	}
	r := fromProtoCreate(in.GetRequest())
	if err := s.svc.Create(ctx, r); err != nil {
		return nil, ToStatus(err)
	}
	return &dispatchv1.PorterRequestResponse{Request: ToProto(r)}, nil
}

func (s *GRPCServer) GetPorterRequest(ctx context.Context, in *dispatchv1.GetPorterRequestRequest) (*dispatchv1.PorterRequestResponse, error) {
	id, err := parseID(in.GetId())
	if err != nil {
		return nil, ToStatus(err)
	}
	r, err := s.svc.Get(ctx, id)
	if err != nil {
		return nil, ToStatus(err)
	}
	return &dispatchv1.PorterRequestResponse{Request: ToProto(r)}, nil
}

func (s *GRPCServer) ListPorterRequests(ctx context.Context, in *dispatchv1.ListPorterRequestsRequest) (*dispatchv1.ListPorterRequestsResponse, error) {
	var f ListFilter
	if v := in.GetStatus(); v != "" {
		st := ParseStatusFilter(v)
		f.Status = &st
	}
	if v := in.GetUrgencyLevel(); v != "" {
		u := ParseUrgency(v)
		f.UrgencyLevel = &u
	}
	if v := in.GetAssignedToId(); v != "" {
		f.AssignedToID = &v
	}
	if v := in.GetRequesterUserId(); v != "" {
		f.RequesterUserID = &v
	}
	p := pagination.Clamp(int(in.GetLimit()), int(in.GetOffset()))

	items, total, err := s.svc.List(ctx, f, p.Limit, p.Offset)
	if err != nil {
		return nil, ToStatus(err)
	}
	out := &dispatchv1.ListPorterRequestsResponse{
		Items: make([]*dispatchv1.PorterRequest, 0, len(items)),
		Total: int32(total),
	}
	for _, r := range items {
		out.Items = append(out.Items, ToProto(r))
	}
	return out, nil
}

func (s *GRPCServer) UpdatePorterRequest(ctx context.Context, in *dispatchv1.UpdatePorterRequestRequest) (*dispatchv1.PorterRequestResponse, error) {
	id, err := parseID(in.GetId())
	if err != nil {
		return nil, ToStatus(err)
	}
	r, err := s.svc.Update(ctx, id, fieldsFromProto(in.GetPatch()))
	if err != nil {
		return nil, ToStatus(err)
	}
	return &dispatchv1.PorterRequestResponse{Request: ToProto(r)}, nil
}

func (s *GRPCServer) UpdatePorterRequestStatus(ctx context.Context, in *dispatchv1.UpdateStatusRequest) (*dispatchv1.PorterRequestResponse, error) {
	id, err := parseID(in.GetId())
	if err != nil {
		return nil, ToStatus(err)
	}
	r, err := s.svc.TransitionStatus(ctx, id, StatusChange{
		Status:          ParseStatus(in.GetStatus()),
		AssignedToID:    stringPtr(in.GetAssignedToId()),
		CancelledReason: stringPtr(in.GetCancelledReason()),
		ActorID:         stringPtr(in.GetActorId()),
	})
	if err != nil {
		return nil, ToStatus(err)
	}
	return &dispatchv1.PorterRequestResponse{Request: ToProto(r)}, nil
}

func (s *GRPCServer) UpdatePorterRequestTimestamps(ctx context.Context, in *dispatchv1.UpdateTimestampsRequest) (*dispatchv1.PorterRequestResponse, error) {
	id, err := parseID(in.GetId())
	if err != nil {
		return nil, ToStatus(err)
	}
	r, err := s.svc.UpdateTimestamps(ctx, id, TimestampPatch{
		PickupAt:   timePtr(in.GetPickupAt()),
		DeliveryAt: timePtr(in.GetDeliveryAt()),
		ReturnAt:   timePtr(in.GetReturnAt()),
	})
	if err != nil {
		return nil, ToStatus(err)
	}
	return &dispatchv1.PorterRequestResponse{Request: ToProto(r)}, nil
}

func (s *GRPCServer) DeletePorterRequest(ctx context.Context, in *dispatchv1.DeletePorterRequestRequest) (*dispatchv1.DeletePorterRequestResponse, error) {
	id, err := parseID(in.GetId())
	if err != nil {
		return nil, ToStatus(err)
	}
	if err := s.svc.Delete(ctx, id); err != nil {
		return nil, ToStatus(err)
	}
	return &dispatchv1.DeletePorterRequestResponse{}, nil
}

func (s *GRPCServer) LookupPatient(ctx context.Context, in *dispatchv1.LookupPatientRequest) (*dispatchv1.Patient, error) {
	if s.patients == nil {
		return nil, status.Error(codes.Unavailable, "clinical api is not configured")
	}
	p, err := s.patients.LookupPatient(ctx, in.GetHn())
	switch {
	case errors.Is(err, clinical.ErrPatientNotFound):
		return nil, status.Error(codes.NotFound, err.Error())
	case errors.Is(err, clinical.ErrExternalAuth):
		return nil, status.Error(codes.Unauthenticated, err.Error())
	case err != nil:
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &dispatchv1.Patient{
		Hn:        p.HN,
		Title:     p.Title,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
		BirthDate: p.BirthDate,
	}, nil
}

// SubscribePorterRequests streams every matching distribution event to the
// caller until the caller goes away or the bus closes. The filter is fixed
// for the life of the stream.
func (s *GRPCServer) SubscribePorterRequests(in *dispatchv1.SubscribeRequest, stream grpc.ServerStreamingServer[dispatchv1.PorterRequestEvent]) error {
	statusFilter := in.GetStatusFilter().GetValue()
	urgencyFilter := in.GetUrgencyFilter().GetValue()
	filter := NewSubscriptionFilter(statusFilter, urgencyFilter)
	sub := SubscribeTypes(s.bus, EventCreated, EventUpdated, EventStatusChanged, EventDeleted)
	defer sub.Close()

	metrics.StreamSubscribers.Inc()
	defer metrics.StreamSubscribers.Dec()

	log := s.logger.With().Uint64("subscription", sub.ID).Logger()
	log.Info().
		Str("status_filter", statusFilter).
		Str("urgency_filter", urgencyFilter).
		Msg("subscriber connected")

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("subscriber disconnected")
			return nil
		case ev, ok := <-sub.C:
			if !ok {
				log.Info().Msg("event bus closed, ending stream")
				return nil
			}
			res := deliver(stream, filter, ev)
			metrics.StreamDeliveries.WithLabelValues(res.Outcome.String()).Inc()
			if res.Outcome == DeliveryFailed {
				log.Warn().Err(res.Err).
					Str("event", ev.Type.String()).
					Msg("delivery failed")
			}
		}
	}
}

// DeliveryOutcome classifies one attempt to hand an event to a subscriber.
type DeliveryOutcome int

const (
	DeliveryDelivered DeliveryOutcome = iota
	DeliveryFiltered
	DeliveryFailed
)

func (o DeliveryOutcome) String() string {
	switch o {
	case DeliveryDelivered:
		return "delivered"
	case DeliveryFiltered:
		return "filtered"
	default:
		return "failed"
	}
}

// DeliveryResult reports a single delivery. Err is set only for
// DeliveryFailed and is for logs and metrics; it never reaches the
// publisher.
type DeliveryResult struct {
	Outcome DeliveryOutcome
	Err     error
}

type eventSender interface {
	Send(*dispatchv1.PorterRequestEvent) error
}

func deliver(stream eventSender, filter SubscriptionFilter, ev Event) DeliveryResult {
	if !filter.Matches(ev) {
		return DeliveryResult{Outcome: DeliveryFiltered}
	}
	if err := stream.Send(EventToProto(ev)); err != nil {
		return DeliveryResult{Outcome: DeliveryFailed, Err: err}
	}
	return DeliveryResult{Outcome: DeliveryDelivered}
}
