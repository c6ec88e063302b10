package porter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	dispatchv1 "github.com/medportal/porter/api/gen/go/porter/dispatch/v1"
)

func TestEventToProto_SurvivesWireEncoding(t *testing.T) {
	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	accepted := created.Add(10 * time.Minute)
	r := &PorterRequest{
		ID:           uuid.New(),
		CreatedAt:    created,
		UpdatedAt:    accepted,
		PatientHN:    "HN001",
		Pickup:       Location{BuildingID: "b1", BuildingName: "Main", RoomBed: strPtr("12A")},
		Delivery:     Location{BuildingID: "b2"},
		RequestedAt:  created,
		UrgencyLevel: UrgencyEmergency,
		VehicleType:  VehicleGolfCart,
		Equipment:    []Equipment{EquipmentOxygen},
		Status:       StatusInProgress,
		AssignedToID: strPtr("E1"),
		AcceptedAt:   &accepted,
	}

	b, err := proto.Marshal(EventToProto(Event{Type: EventStatusChanged, Request: r}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got dispatchv1.PorterRequestEvent
	if err := proto.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.GetType() != dispatchv1.EventType_EVENT_TYPE_STATUS_CHANGED || int32(got.GetType()) != 2 {
		t.Errorf("unexpected event type %v", got.GetType())
	}
	w := got.GetRequest()
	if w.GetId() != r.ID.String() || w.GetPatientHn() != "HN001" {
		t.Errorf("identity lost: %v", w)
	}
	if !w.GetCreatedAt().AsTime().Equal(created) || !w.GetAcceptedAt().AsTime().Equal(accepted) {
		t.Errorf("timestamps changed: created=%v accepted=%v", w.GetCreatedAt(), w.GetAcceptedAt())
	}
	if w.GetAssignedToId().GetValue() != "E1" {
		t.Errorf("expected assignee E1, got %v", w.GetAssignedToId())
	}
	if w.GetPickup().GetRoomBed().GetValue() != "12A" || w.GetDelivery().GetRoomBed() != nil {
		t.Errorf("room/bed not carried as optional: %v %v", w.GetPickup(), w.GetDelivery())
	}
	if w.GetCompletedAt() != nil || w.GetCancelledAt() != nil || w.GetCancelledReason() != nil || w.GetSpecialNotes() != nil {
		t.Error("unset optional fields must stay absent on the wire")
	}
	if len(w.GetEquipment()) != 1 || w.GetEquipment()[0] != "OXYGEN" {
		t.Errorf("unexpected equipment %v", w.GetEquipment())
	}
}

func TestFieldsFromProto_AbsentStaysUnset(t *testing.T) {
	u := fieldsFromProto(&dispatchv1.PorterRequestPatch{
		PatientName: wrapperspb.String("New Name"),
		HasVehicle:  wrapperspb.Bool(false),
		Status:      wrapperspb.String("IN_PROGRESS"),
	})
	if u.PatientName == nil || *u.PatientName != "New Name" {
		t.Errorf("patient name not set: %v", u.PatientName)
	}
	if u.HasVehicle == nil || *u.HasVehicle {
		t.Errorf("explicit false must be kept: %v", u.HasVehicle)
	}
	if u.Status == nil || *u.Status != StatusInProgress {
		t.Errorf("status not parsed: %v", u.Status)
	}
	if u.RequesterName != nil || u.Pickup != nil || u.UrgencyLevel != nil || u.Equipment != nil || u.RequestedAt != nil {
		t.Errorf("absent fields must stay unset: %+v", u)
	}

	if got := fieldsFromProto(nil); got.Status != nil || got.PatientName != nil {
		t.Errorf("nil patch must produce no changes: %+v", got)
	}
}
