package porter

import "strings"

// Status is the lifecycle stage of a porter request.
type Status string

const (
	StatusWaitingCenter Status = "WAITING_CENTER"
	StatusWaitingAccept Status = "WAITING_ACCEPT"
	StatusInProgress    Status = "IN_PROGRESS"
	StatusCompleted     Status = "COMPLETED"
	StatusCancelled     Status = "CANCELLED"
)

// StatusWaiting is a read-filter alias matching both waiting stages.
const StatusWaiting Status = "WAITING"

var statusRank = map[Status]int{
	StatusWaitingCenter: 0,
	StatusWaitingAccept: 1,
	StatusInProgress:    2,
	StatusCompleted:     3,
	StatusCancelled:     3,
}

// Valid reports whether s is one of the five lifecycle stages.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no transition can leave s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Waiting reports whether s is WAITING_CENTER or WAITING_ACCEPT.
func (s Status) Waiting() bool {
	return s == StatusWaitingCenter || s == StatusWaitingAccept
}

// ParseStatus maps a wire value to a Status. Unrecognised values fall back to
// WAITING_CENTER instead of failing; existing callers send lowercase and
// legacy spellings and rely on this.
func ParseStatus(v string) Status {
	s := Status(strings.ToUpper(strings.TrimSpace(v)))
	if s.Valid() {
		return s
	}
	return StatusWaitingCenter
}

// ParseStatusFilter is ParseStatus for read filters, which also accept the
// WAITING alias.
func ParseStatusFilter(v string) Status {
	if Status(strings.ToUpper(strings.TrimSpace(v))) == StatusWaiting {
		return StatusWaiting
	}
	return ParseStatus(v)
}

// UrgencyLevel ranks how quickly a request must be served.
type UrgencyLevel string

const (
	UrgencyNormal    UrgencyLevel = "NORMAL"
	UrgencyRush      UrgencyLevel = "RUSH"
	UrgencyEmergency UrgencyLevel = "EMERGENCY"
)

// Valid reports whether u is a known urgency level.
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyNormal, UrgencyRush, UrgencyEmergency:
		return true
	}
	return false
}

// ParseUrgency maps a wire value to an UrgencyLevel, defaulting to NORMAL.
func ParseUrgency(v string) UrgencyLevel {
	u := UrgencyLevel(strings.ToUpper(strings.TrimSpace(v)))
	if u.Valid() {
		return u
	}
	return UrgencyNormal
}

// VehicleType is the conveyance used for the transport.
type VehicleType string

const (
	VehicleSitting  VehicleType = "SITTING"
	VehicleLying    VehicleType = "LYING"
	VehicleGolfCart VehicleType = "GOLF_CART"
)

// ParseVehicleType maps a wire value to a VehicleType, defaulting to SITTING.
// "GOLF-CART" is accepted as a spelling of GOLF_CART.
func ParseVehicleType(v string) VehicleType {
	t := VehicleType(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(v)), "-", "_"))
	switch t {
	case VehicleSitting, VehicleLying, VehicleGolfCart:
		return t
	}
	return VehicleSitting
}

// Equipment is an item that must accompany the patient.
type Equipment string

const (
	EquipmentOxygen         Equipment = "OXYGEN"
	EquipmentIVPole         Equipment = "IV_POLE"
	EquipmentMonitor        Equipment = "MONITOR"
	EquipmentWheelchairBelt Equipment = "WHEELCHAIR_BELT"
	EquipmentSuction        Equipment = "SUCTION"
	EquipmentInfusionPump   Equipment = "INFUSION_PUMP"
)

var validEquipment = map[Equipment]bool{
	EquipmentOxygen:         true,
	EquipmentIVPole:         true,
	EquipmentMonitor:        true,
	EquipmentWheelchairBelt: true,
	EquipmentSuction:        true,
	EquipmentInfusionPump:   true,
}

// ParseEquipment normalises a list of wire values into a de-duplicated set,
// silently dropping unknown entries.
func ParseEquipment(values []string) []Equipment {
	seen := make(map[Equipment]bool, len(values))
	out := make([]Equipment, 0, len(values))
	for _, v := range values {
		e := Equipment(strings.ToUpper(strings.TrimSpace(v)))
		if !validEquipment[e] || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
