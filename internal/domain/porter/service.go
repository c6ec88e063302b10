package porter

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medportal/porter/internal/platform/metrics"
)

// Service owns every mutation of a porter request. Each successful mutation
// publishes exactly one event on the bus before returning.
type Service struct {
	repo     Repository
	bus      *Bus
	enricher *Enricher
	logger   zerolog.Logger
	now      func() time.Time
}

// NewService wires a Service. enricher may be nil.
func NewService(repo Repository, bus *Bus, enricher *Enricher, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		bus:      bus,
		enricher: enricher,
		logger:   logger.With().Str("component", "porter.service").Logger(),
		now:      time.Now,
	}
}

func validateRequest(r *PorterRequest) error {
	switch {
	case strings.TrimSpace(r.RequesterName) == "":
		return validationError("requester name is required")
	case strings.TrimSpace(r.PatientName) == "":
		return validationError("patient name is required")
	case strings.TrimSpace(r.PatientHN) == "":
		return validationError("patient identifier is required")
	case r.Pickup.BuildingID == "":
		return validationError("pickup building is required")
	case r.Delivery.BuildingID == "":
		return validationError("delivery building is required")
	}
	return nil
}

// Create persists a new request in WAITING_CENTER and publishes CREATED. On
// return r carries its id, timestamps and display names.
func (s *Service) Create(ctx context.Context, r *PorterRequest) error {
	if err := validateRequest(r); err != nil {
		return err
	}
	r.Status = StatusWaitingCenter
	if !r.UrgencyLevel.Valid() {
		r.UrgencyLevel = ParseUrgency(string(r.UrgencyLevel))
	}
	r.VehicleType = ParseVehicleType(string(r.VehicleType))
	if r.RequestedAt.IsZero() {
		r.RequestedAt = s.now()
	}
	r.AssignedToID, r.AcceptedByID, r.CancelledByID = nil, nil, nil
	r.AcceptedAt, r.CompletedAt, r.CancelledAt, r.CancelledReason = nil, nil, nil, nil

	if err := s.repo.Create(ctx, r); err != nil {
		return err
	}
	s.distribute(ctx, EventCreated, r)
	return nil
}

// Get returns an enriched request.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PorterRequest, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.enrich(ctx, r)
	return r, nil
}

// List returns a page of enriched requests and the total match count.
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*PorterRequest, int, error) {
	items, total, err := s.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for _, r := range items {
		s.enrich(ctx, r)
	}
	return items, total, nil
}

// Update applies a partial update. A status in fields that differs from the
// stored one goes through Transition and publishes STATUS_CHANGED; anything
// else publishes UPDATED.
func (s *Service) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*PorterRequest, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := cur.Clone()
	fields.Apply(next)
	if err := validateRequest(next); err != nil {
		return nil, err
	}
	if fields.Status != nil && *fields.Status != cur.Status {
		next, err = Transition(next, StatusChange{
			Status:          *fields.Status,
			AssignedToID:    fields.AssignedToID,
			CancelledReason: fields.CancelledReason,
			ActorID:         fields.ActorID,
		}, s.now())
		if err != nil {
			return nil, err
		}
	} else if fields.AssignedToID != nil && !cur.Status.Terminal() {
		next.AssignedToID = clonePtr(fields.AssignedToID)
	}

	if err := s.repo.Update(ctx, next, cur.Status); err != nil {
		return nil, err
	}
	s.distribute(ctx, eventFor(cur.Status, next.Status), next)
	return next, nil
}

// TransitionStatus moves a request along its lifecycle.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, change StatusChange) (*PorterRequest, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := Transition(cur, change, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, next, cur.Status); err != nil {
		return nil, err
	}
	s.distribute(ctx, eventFor(cur.Status, next.Status), next)
	return next, nil
}

// UpdateTimestamps sets any of the pickup, delivery and return milestones
// without touching status.
func (s *Service) UpdateTimestamps(ctx context.Context, id uuid.UUID, patch TimestampPatch) (*PorterRequest, error) {
	if patch.Empty() {
		return nil, validationError("at least one timestamp is required")
	}
	r, err := s.repo.UpdateTimestamps(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.distribute(ctx, EventUpdated, r)
	return r, nil
}

// Delete removes a request and publishes DELETED with its last snapshot.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.distribute(ctx, EventDeleted, cur)
	return nil
}

func eventFor(from, to Status) EventType {
	if from != to {
		return EventStatusChanged
	}
	return EventUpdated
}

func (s *Service) enrich(ctx context.Context, r *PorterRequest) {
	if err := s.enricher.Enrich(ctx, r); err != nil {
		s.logger.Warn().Err(err).Str("request_id", r.ID.String()).Msg("enrichment incomplete")
	}
}

// distribute enriches r in place and publishes a private copy of it. The
// write has already succeeded, so nothing here can fail the caller.
func (s *Service) distribute(ctx context.Context, t EventType, r *PorterRequest) {
	s.enrich(ctx, r)
	if s.bus == nil {
		return
	}
	n := s.bus.Publish(Event{Type: t, Request: r.Clone()})
	metrics.EventsPublished.WithLabelValues(t.String()).Inc()
	s.logger.Debug().
		Str("event", t.String()).
		Str("request_id", r.ID.String()).
		Str("status", string(r.Status)).
		Int("subscribers", n).
		Msg("published")
}
