package porter

import "github.com/medportal/porter/internal/platform/eventbus"

// EventType tags a distribution event. The numeric values are the wire
// values of the subscription stream.
type EventType int

const (
	EventCreated EventType = iota
	EventUpdated
	EventStatusChanged
	EventDeleted
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "CREATED"
	case EventUpdated:
		return "UPDATED"
	case EventStatusChanged:
		return "STATUS_CHANGED"
	case EventDeleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether t is one of the four event tags.
func (t EventType) Valid() bool {
	return t >= EventCreated && t <= EventDeleted
}

// Event is published once per successful mutation. Request is an enriched
// snapshot owned by the event; subscribers must not mutate it.
type Event struct {
	Type    EventType
	Request *PorterRequest
}

// Bus is the dispatch service's event bus.
type Bus = eventbus.Bus[Event]

// NewBus constructs the process-wide bus. bufSize bounds each subscription.
func NewBus(bufSize int, opts ...eventbus.Option[Event]) *Bus {
	return eventbus.New[Event](bufSize, opts...)
}

// SubscribeTypes registers a subscription receiving only the listed event
// types; no types means all four.
func SubscribeTypes(bus *Bus, types ...EventType) *eventbus.Subscription[Event] {
	if len(types) == 0 {
		return bus.Subscribe(nil)
	}
	var mask [4]bool
	for _, t := range types {
		if t.Valid() {
			mask[t] = true
		}
	}
	return bus.Subscribe(func(e Event) bool {
		return e.Type.Valid() && mask[e.Type]
	})
}
