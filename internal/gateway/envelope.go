package gateway

import (
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
)

// Envelope is one browser push frame.
type Envelope struct {
	Type string       `json:"type"`
	Data *RequestView `json:"data"`
}

// LocationView is the display shape of a pickup or delivery point.
type LocationView struct {
	BuildingID     string  `json:"buildingId"`
	BuildingName   string  `json:"buildingName,omitempty"`
	DepartmentID   string  `json:"departmentId"`
	DepartmentName string  `json:"departmentName,omitempty"`
	RoomBed        *string `json:"roomBed,omitempty"`
}

// RequestView is the display shape of a porter request.
type RequestView struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RequesterDepartmentID   string `json:"requesterDepartmentId"`
	RequesterDepartmentName string `json:"requesterDepartmentName,omitempty"`
	RequesterName           string `json:"requesterName"`
	RequesterPhone          string `json:"requesterPhone"`
	RequesterUserID         string `json:"requesterUserId"`

	PatientHN         string   `json:"patientHN"`
	PatientName       string   `json:"patientName"`
	PatientConditions []string `json:"patientConditions"`

	PickupLocation   LocationView `json:"pickupLocation"`
	DeliveryLocation LocationView `json:"deliveryLocation"`

	RequestedAt     time.Time `json:"requestedAt"`
	UrgencyLevel    string    `json:"urgencyLevel"`
	VehicleType     string    `json:"vehicleType"`
	HasVehicle      bool      `json:"hasVehicle"`
	ReturnTrip      bool      `json:"returnTrip"`
	TransportReason string    `json:"transportReason"`
	Equipment       []string  `json:"equipment"`
	SpecialNotes    *string   `json:"specialNotes,omitempty"`
	Status          string    `json:"status"`

	AssignedToID    *string    `json:"assignedToId,omitempty"`
	AssignedToName  string     `json:"assignedToName,omitempty"`
	AcceptedByID    *string    `json:"acceptedById,omitempty"`
	CancelledByID   *string    `json:"cancelledById,omitempty"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CancelledReason *string    `json:"cancelledReason,omitempty"`

	PickupAt   *time.Time `json:"pickupAt,omitempty"`
	DeliveryAt *time.Time `json:"deliveryAt,omitempty"`
	ReturnAt   *time.Time `json:"returnAt,omitempty"`
}

// PatientView is the display shape of a clinical lookup.
type PatientView struct {
	HN        string `json:"hn"`
	Title     string `json:"title,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
}

func newPatientView(p *dispatchv1.Patient) PatientView {
	return PatientView{
		HN:        p.GetHn(),
		Title:     p.GetTitle(),
		FirstName: p.GetFirstName(),
		LastName:  p.GetLastName(),
		Gender:    p.GetGender(),
		BirthDate: p.GetBirthDate(),
	}
}

func optString(v *wrapperspb.StringValue) *string {
	if v == nil {
		return nil
	}
	s := v.GetValue()
	return &s
}

func optTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func timeOf(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func locationView(l *dispatchv1.Location) LocationView {
	return LocationView{
		BuildingID:     l.GetBuildingId(),
		BuildingName:   l.GetBuildingName(),
		DepartmentID:   l.GetDepartmentId(),
		DepartmentName: l.GetDepartmentName(),
		RoomBed:        optString(l.GetRoomBed()),
	}
}

// displayVehicle renders GOLF_CART the way the portal has always shown it.
func displayVehicle(v string) string {
	return strings.ReplaceAll(v, "_", "-")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// NewRequestView converts a wire request into its display shape.
func NewRequestView(r *dispatchv1.PorterRequest) *RequestView {
	if r == nil {
		return nil
	}
	return &RequestView{
		ID:                      r.GetId(),
		CreatedAt:               timeOf(r.GetCreatedAt()),
		UpdatedAt:               timeOf(r.GetUpdatedAt()),
		RequesterDepartmentID:   r.GetRequesterDepartmentId(),
		RequesterDepartmentName: r.GetRequesterDepartmentName(),
		RequesterName:           r.GetRequesterName(),
		RequesterPhone:          r.GetRequesterPhone(),
		RequesterUserID:         r.GetRequesterUserId(),
		PatientHN:               r.GetPatientHn(),
		PatientName:             r.GetPatientName(),
		PatientConditions:       nonNil(r.GetPatientConditions()),
		PickupLocation:          locationView(r.GetPickup()),
		DeliveryLocation:        locationView(r.GetDelivery()),
		RequestedAt:             timeOf(r.GetRequestedAt()),
		UrgencyLevel:            r.GetUrgencyLevel(),
		VehicleType:             displayVehicle(r.GetVehicleType()),
		HasVehicle:              r.GetHasVehicle(),
		ReturnTrip:              r.GetReturnTrip(),
		TransportReason:         r.GetTransportReason(),
		Equipment:               nonNil(r.GetEquipment()),
		SpecialNotes:            optString(r.GetSpecialNotes()),
		Status:                  r.GetStatus(),
		AssignedToID:            optString(r.GetAssignedToId()),
		AssignedToName:          r.GetAssignedToName(),
		AcceptedByID:            optString(r.GetAcceptedById()),
		CancelledByID:           optString(r.GetCancelledById()),
		AcceptedAt:              optTime(r.GetAcceptedAt()),
		CompletedAt:             optTime(r.GetCompletedAt()),
		CancelledAt:             optTime(r.GetCancelledAt()),
		CancelledReason:         optString(r.GetCancelledReason()),
		PickupAt:                optTime(r.GetPickupAt()),
		DeliveryAt:              optTime(r.GetDeliveryAt()),
		ReturnAt:                optTime(r.GetReturnAt()),
	}
}

// envelopeFor builds the push frame for a stream event. Unknown event types
// report false and are dropped.
func envelopeFor(ev *dispatchv1.PorterRequestEvent) (Envelope, bool) {
	name, ok := envelopeTypes[ev.GetType()]
	if !ok {
		return Envelope{}, false
	}
	return Envelope{Type: name, Data: NewRequestView(ev.GetRequest())}, true
}

var envelopeTypes = map[dispatchv1.EventType]string{
	dispatchv1.EventType_EVENT_TYPE_CREATED:        "CREATED",
	dispatchv1.EventType_EVENT_TYPE_UPDATED:        "UPDATED",
	dispatchv1.EventType_EVENT_TYPE_STATUS_CHANGED: "STATUS_CHANGED",
	dispatchv1.EventType_EVENT_TYPE_DELETED:        "DELETED",
}
