package porter

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists porter requests. Implementations return ErrNotFound
// for unknown ids and ErrStaleStatus when a conditional update loses a race.
type Repository interface {
	Create(ctx context.Context, r *PorterRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*PorterRequest, error)
	// Update writes every mutable column of r, provided the stored status
	// still equals expected.
	Update(ctx context.Context, r *PorterRequest, expected Status) error
	UpdateTimestamps(ctx context.Context, id uuid.UUID, patch TimestampPatch) (*PorterRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*PorterRequest, int, error)
}
