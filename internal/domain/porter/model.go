package porter

import (
	"time"

	"github.com/google/uuid"
)

// Location is a pickup or delivery point inside the facility. The *Name
// fields are filled in by enrichment and never persisted.
type Location struct {
	BuildingID     string  `db:"building_id" json:"building_id"`
	BuildingName   string  `db:"-" json:"building_name,omitempty"`
	DepartmentID   string  `db:"department_id" json:"department_id"`
	DepartmentName string  `db:"-" json:"department_name,omitempty"`
	RoomBed        *string `db:"room_bed" json:"room_bed,omitempty"`
}

// PorterRequest maps to the porter_request table.
type PorterRequest struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	RequesterDepartmentID   string `db:"requester_department_id" json:"requester_department_id"`
	RequesterDepartmentName string `db:"-" json:"requester_department_name,omitempty"`
	RequesterName           string `db:"requester_name" json:"requester_name"`
	RequesterPhone          string `db:"requester_phone" json:"requester_phone"`
	RequesterUserID         string `db:"requester_user_id" json:"requester_user_id"`

	PatientHN         string   `db:"patient_hn" json:"patient_hn"`
	PatientName       string   `db:"patient_name" json:"patient_name"`
	PatientConditions []string `db:"patient_conditions" json:"patient_conditions"`

	Pickup   Location `json:"pickup"`
	Delivery Location `json:"delivery"`

	RequestedAt     time.Time    `db:"requested_at" json:"requested_at"`
	UrgencyLevel    UrgencyLevel `db:"urgency_level" json:"urgency_level"`
	VehicleType     VehicleType  `db:"vehicle_type" json:"vehicle_type"`
	HasVehicle      bool         `db:"has_vehicle" json:"has_vehicle"`
	ReturnTrip      bool         `db:"return_trip" json:"return_trip"`
	TransportReason string       `db:"transport_reason" json:"transport_reason"`
	Equipment       []Equipment  `db:"equipment" json:"equipment"`
	SpecialNotes    *string      `db:"special_notes" json:"special_notes,omitempty"`

	Status Status `db:"status" json:"status"`

	AssignedToID    *string    `db:"assigned_to_id" json:"assigned_to_id,omitempty"`
	AssignedToName  string     `db:"-" json:"assigned_to_name,omitempty"`
	AcceptedByID    *string    `db:"accepted_by_id" json:"accepted_by_id,omitempty"`
	CancelledByID   *string    `db:"cancelled_by_id" json:"cancelled_by_id,omitempty"`
	AcceptedAt      *time.Time `db:"accepted_at" json:"accepted_at,omitempty"`
	CompletedAt     *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CancelledAt     *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CancelledReason *string    `db:"cancelled_reason" json:"cancelled_reason,omitempty"`

	PickupAt   *time.Time `db:"pickup_at" json:"pickup_at,omitempty"`
	DeliveryAt *time.Time `db:"delivery_at" json:"delivery_at,omitempty"`
	ReturnAt   *time.Time `db:"return_at" json:"return_at,omitempty"`
}

// Clone returns a deep copy so published snapshots never alias the stored
// request.
func (r *PorterRequest) Clone() *PorterRequest {
	if r == nil {
		return nil
	}
	c := *r
	c.PatientConditions = append([]string(nil), r.PatientConditions...)
	c.Equipment = append([]Equipment(nil), r.Equipment...)
	c.Pickup.RoomBed = clonePtr(r.Pickup.RoomBed)
	c.Delivery.RoomBed = clonePtr(r.Delivery.RoomBed)
	c.SpecialNotes = clonePtr(r.SpecialNotes)
	c.AssignedToID = clonePtr(r.AssignedToID)
	c.AcceptedByID = clonePtr(r.AcceptedByID)
	c.CancelledByID = clonePtr(r.CancelledByID)
	c.AcceptedAt = clonePtr(r.AcceptedAt)
	c.CompletedAt = clonePtr(r.CompletedAt)
	c.CancelledAt = clonePtr(r.CancelledAt)
	c.CancelledReason = clonePtr(r.CancelledReason)
	c.PickupAt = clonePtr(r.PickupAt)
	c.DeliveryAt = clonePtr(r.DeliveryAt)
	c.ReturnAt = clonePtr(r.ReturnAt)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// UpdateFields is a partial update of the non-lifecycle fields. Nil fields
// are left untouched. Status, when set, is routed through Transition.
type UpdateFields struct {
	RequesterDepartmentID *string
	RequesterName         *string
	RequesterPhone        *string
	PatientHN             *string
	PatientName           *string
	PatientConditions     []string
	Pickup                *Location
	Delivery              *Location
	RequestedAt           *time.Time
	UrgencyLevel          *UrgencyLevel
	VehicleType           *VehicleType
	HasVehicle            *bool
	ReturnTrip            *bool
	TransportReason       *string
	Equipment             []Equipment
	SpecialNotes          *string
	Status                *Status
	AssignedToID          *string
	CancelledReason       *string
	ActorID               *string
}

// Apply copies the set fields onto r. It does not touch Status.
func (u UpdateFields) Apply(r *PorterRequest) {
	if u.RequesterDepartmentID != nil {
		r.RequesterDepartmentID = *u.RequesterDepartmentID
	}
	if u.RequesterName != nil {
		r.RequesterName = *u.RequesterName
	}
	if u.RequesterPhone != nil {
		r.RequesterPhone = *u.RequesterPhone
	}
	if u.PatientHN != nil {
		r.PatientHN = *u.PatientHN
	}
	if u.PatientName != nil {
		r.PatientName = *u.PatientName
	}
	if u.PatientConditions != nil {
		r.PatientConditions = append([]string(nil), u.PatientConditions...)
	}
	if u.Pickup != nil {
		r.Pickup = *u.Pickup
	}
	if u.Delivery != nil {
		r.Delivery = *u.Delivery
	}
	if u.RequestedAt != nil {
		r.RequestedAt = *u.RequestedAt
	}
	if u.UrgencyLevel != nil {
		r.UrgencyLevel = *u.UrgencyLevel
	}
	if u.VehicleType != nil {
		r.VehicleType = *u.VehicleType
	}
	if u.HasVehicle != nil {
		r.HasVehicle = *u.HasVehicle
	}
	if u.ReturnTrip != nil {
		r.ReturnTrip = *u.ReturnTrip
	}
	if u.TransportReason != nil {
		r.TransportReason = *u.TransportReason
	}
	if u.Equipment != nil {
		r.Equipment = append([]Equipment(nil), u.Equipment...)
	}
	if u.SpecialNotes != nil {
		r.SpecialNotes = u.SpecialNotes
	}
}

// TimestampPatch carries the independently-set transport milestones.
type TimestampPatch struct {
	PickupAt   *time.Time
	DeliveryAt *time.Time
	ReturnAt   *time.Time
}

// Empty reports whether the patch sets nothing.
func (p TimestampPatch) Empty() bool {
	return p.PickupAt == nil && p.DeliveryAt == nil && p.ReturnAt == nil
}

// ListFilter narrows List results. Status may be StatusWaiting to match both
// waiting stages.
type ListFilter struct {
	Status          *Status
	UrgencyLevel    *UrgencyLevel
	AssignedToID    *string
	RequesterUserID *string
}
