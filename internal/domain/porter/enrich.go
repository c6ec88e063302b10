package porter

import (
	"context"
	"errors"
)

// NameResolver resolves directory ids to display names. A missing id returns
// an empty name and no error.
type NameResolver interface {
	BuildingName(ctx context.Context, id string) (string, error)
	DepartmentName(ctx context.Context, id string) (string, error)
	EmployeeName(ctx context.Context, id string) (string, error)
}

// Enricher fills the display-name fields of a request snapshot.
type Enricher struct {
	names NameResolver
}

// NewEnricher returns an Enricher. A nil resolver makes Enrich a no-op.
func NewEnricher(names NameResolver) *Enricher {
	return &Enricher{names: names}
}

// Enrich resolves every display name on r. It resolves as many names as it
// can and returns the joined lookup errors, so a partial failure still
// leaves a usable snapshot.
func (e *Enricher) Enrich(ctx context.Context, r *PorterRequest) error {
	if e == nil || e.names == nil || r == nil {
		return nil
	}
	var errs []error
	set := func(dst *string, id string, lookup func(context.Context, string) (string, error)) {
		if id == "" {
			return
		}
		name, err := lookup(ctx, id)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = name
	}

	set(&r.RequesterDepartmentName, r.RequesterDepartmentID, e.names.DepartmentName)
	set(&r.Pickup.BuildingName, r.Pickup.BuildingID, e.names.BuildingName)
	set(&r.Pickup.DepartmentName, r.Pickup.DepartmentID, e.names.DepartmentName)
	set(&r.Delivery.BuildingName, r.Delivery.BuildingID, e.names.BuildingName)
	set(&r.Delivery.DepartmentName, r.Delivery.DepartmentID, e.names.DepartmentName)
	if r.AssignedToID != nil {
		set(&r.AssignedToName, *r.AssignedToID, e.names.EmployeeName)
	}
	return errors.Join(errs...)
}
