package porter

import (
	"fmt"
	"strings"
	"time"
)

// StatusChange is the input of a status transition.
type StatusChange struct {
	Status          Status
	AssignedToID    *string
	CancelledReason *string
	ActorID         *string
}

// Transition applies change to a copy of req and returns it. It enforces the
// forward-only lifecycle:
//
//	WAITING_CENTER -> WAITING_ACCEPT -> IN_PROGRESS -> COMPLETED
//	any non-terminal stage ---------------------------> CANCELLED
//
// A change to the current status of a non-terminal request returns an
// unchanged copy; the caller distributes it as an ordinary update.
func Transition(req *PorterRequest, change StatusChange, now time.Time) (*PorterRequest, error) {
	from := req.Status
	to := change.Status
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if from.Terminal() {
		return nil, fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}

	next := req.Clone()
	if from == to {
		return next, nil
	}
	if statusRank[to] < statusRank[from] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	switch to {
	case StatusWaitingAccept:
		// only the status moves
	case StatusInProgress:
		if change.AssignedToID != nil {
			next.AssignedToID = clonePtr(change.AssignedToID)
		}
		next.AcceptedByID = actorOr(change.ActorID, next.AcceptedByID)
		if next.AcceptedAt == nil {
			next.AcceptedAt = &now
		}
	case StatusCompleted:
		if from != StatusInProgress {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}
		next.CompletedAt = &now
	case StatusCancelled:
		if change.CancelledReason == nil || strings.TrimSpace(*change.CancelledReason) == "" {
			return nil, ErrCancelReasonRequired
		}
		reason := strings.TrimSpace(*change.CancelledReason)
		next.CancelledReason = &reason
		next.CancelledByID = actorOr(change.ActorID, next.CancelledByID)
		next.CancelledAt = &now
	}

	next.Status = to
	next.UpdatedAt = now
	return next, nil
}

func actorOr(actor, fallback *string) *string {
	if actor != nil && *actor != "" {
		return clonePtr(actor)
	}
	return fallback
}
