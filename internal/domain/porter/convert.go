package porter

import (
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
)

func stringValue(p *string) *wrapperspb.StringValue {
	if p == nil {
		return nil
	}
	return wrapperspb.String(*p)
}

func stringPtr(v *wrapperspb.StringValue) *string {
	if v == nil {
		return nil
	}
	s := v.GetValue()
	return &s
}

func boolPtr(v *wrapperspb.BoolValue) *bool {
	if v == nil {
		return nil
	}
	b := v.GetValue()
	return &b
}

func timestampOf(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func timePtr(ts *timestamppb.Timestamp) *time.Time {
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

func locationToProto(l Location) *dispatchv1.Location {
	return &dispatchv1.Location{
		BuildingId:     l.BuildingID,
		BuildingName:   l.BuildingName,
		DepartmentId:   l.DepartmentID,
		DepartmentName: l.DepartmentName,
		RoomBed:        stringValue(l.RoomBed),
	}
}

func locationFromProto(l *dispatchv1.Location) Location {
	return Location{
		BuildingID:   l.GetBuildingId(),
		DepartmentID: l.GetDepartmentId(),
		RoomBed:      stringPtr(l.GetRoomBed()),
	}
}

// ToProto converts an enriched request to its wire message.
func ToProto(r *PorterRequest) *dispatchv1.PorterRequest {
	if r == nil {
		return nil
	}
	return &dispatchv1.PorterRequest{
		Id:                      r.ID.String(),
		CreatedAt:               timestamppb.New(r.CreatedAt),
		UpdatedAt:               timestamppb.New(r.UpdatedAt),
		RequesterDepartmentId:   r.RequesterDepartmentID,
		RequesterDepartmentName: r.RequesterDepartmentName,
		RequesterName:           r.RequesterName,
		RequesterPhone:          r.RequesterPhone,
		RequesterUserId:         r.RequesterUserID,
		PatientHn:               r.PatientHN,
		PatientName:             r.PatientName,
		PatientConditions:       append([]string(nil), r.PatientConditions...),
		Pickup:                  locationToProto(r.Pickup),
		Delivery:                locationToProto(r.Delivery),
		RequestedAt:             timestamppb.New(r.RequestedAt),
		UrgencyLevel:            string(r.UrgencyLevel),
		VehicleType:             string(r.VehicleType),
		HasVehicle:              r.HasVehicle,
		ReturnTrip:              r.ReturnTrip,
		TransportReason:         r.TransportReason,
		Equipment:               equipmentStrings(r.Equipment),
		SpecialNotes:            stringValue(r.SpecialNotes),
		Status:                  string(r.Status),
		AssignedToId:            stringValue(r.AssignedToID),
		AssignedToName:          r.AssignedToName,
		AcceptedById:            stringValue(r.AcceptedByID),
		CancelledById:           stringValue(r.CancelledByID),
		AcceptedAt:              timestampOf(r.AcceptedAt),
		CompletedAt:             timestampOf(r.CompletedAt),
		CancelledAt:             timestampOf(r.CancelledAt),
		CancelledReason:         stringValue(r.CancelledReason),
		PickupAt:                timestampOf(r.PickupAt),
		DeliveryAt:              timestampOf(r.DeliveryAt),
		ReturnAt:                timestampOf(r.ReturnAt),
	}
}

// fromProtoCreate builds a new request from a create message. Lifecycle
// fields on the message are ignored.
func fromProtoCreate(w *dispatchv1.PorterRequest) *PorterRequest {
	return &PorterRequest{
		RequesterDepartmentID: w.GetRequesterDepartmentId(),
		RequesterName:         w.GetRequesterName(),
		RequesterPhone:        w.GetRequesterPhone(),
		RequesterUserID:       w.GetRequesterUserId(),
		PatientHN:             w.GetPatientHn(),
		PatientName:           w.GetPatientName(),
		PatientConditions:     append([]string(nil), w.GetPatientConditions()...),
		Pickup:                locationFromProto(w.GetPickup()),
		Delivery:              locationFromProto(w.GetDelivery()),
		RequestedAt:           timeOf(w.GetRequestedAt()),
		UrgencyLevel:          ParseUrgency(w.GetUrgencyLevel()),
		VehicleType:           ParseVehicleType(w.GetVehicleType()),
		HasVehicle:            w.GetHasVehicle(),
		ReturnTrip:            w.GetReturnTrip(),
		TransportReason:       w.GetTransportReason(),
		Equipment:             ParseEquipment(w.GetEquipment()),
		SpecialNotes:          stringPtr(w.GetSpecialNotes()),
	}
}

func fieldsFromProto(p *dispatchv1.PorterRequestPatch) UpdateFields {
	u := UpdateFields{
		RequesterDepartmentID: stringPtr(p.GetRequesterDepartmentId()),
		RequesterName:         stringPtr(p.GetRequesterName()),
		RequesterPhone:        stringPtr(p.GetRequesterPhone()),
		PatientHN:             stringPtr(p.GetPatientHn()),
		PatientName:           stringPtr(p.GetPatientName()),
		PatientConditions:     p.GetPatientConditions(),
		RequestedAt:           timePtr(p.GetRequestedAt()),
		HasVehicle:            boolPtr(p.GetHasVehicle()),
		ReturnTrip:            boolPtr(p.GetReturnTrip()),
		TransportReason:       stringPtr(p.GetTransportReason()),
		SpecialNotes:          stringPtr(p.GetSpecialNotes()),
		AssignedToID:          stringPtr(p.GetAssignedToId()),
		CancelledReason:       stringPtr(p.GetCancelledReason()),
		ActorID:               stringPtr(p.GetActorId()),
	}
	if p.GetPickup() != nil {
		l := locationFromProto(p.GetPickup())
		u.Pickup = &l
	}
	if p.GetDelivery() != nil {
		l := locationFromProto(p.GetDelivery())
		u.Delivery = &l
	}
	if v := p.GetUrgencyLevel(); v != nil {
		lvl := ParseUrgency(v.GetValue())
		u.UrgencyLevel = &lvl
	}
	if v := p.GetVehicleType(); v != nil {
		vt := ParseVehicleType(v.GetValue())
		u.VehicleType = &vt
	}
	if len(p.GetEquipment()) > 0 {
		u.Equipment = ParseEquipment(p.GetEquipment())
	}
	if v := p.GetStatus(); v != nil {
		st := ParseStatus(v.GetValue())
		u.Status = &st
	}
	return u
}

func eventTypeToProto(t EventType) dispatchv1.EventType {
	switch t {
	case EventCreated:
		return dispatchv1.EventType_EVENT_TYPE_CREATED
	case EventUpdated:
		return dispatchv1.EventType_EVENT_TYPE_UPDATED
	case EventStatusChanged:
		return dispatchv1.EventType_EVENT_TYPE_STATUS_CHANGED
	case EventDeleted:
		return dispatchv1.EventType_EVENT_TYPE_DELETED
	}
	return dispatchv1.EventType(-1)
}

// EventToProto converts a bus event to a stream frame.
func EventToProto(e Event) *dispatchv1.PorterRequestEvent {
	return &dispatchv1.PorterRequestEvent{
		Type:    eventTypeToProto(e.Type),
		Request: ToProto(e.Request),
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, validationError("invalid id %q", raw)
	}
	return id, nil
}
