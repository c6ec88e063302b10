package porter

// SubscriptionFilter is captured once when a subscriber connects. A nil
// field matches everything; a set field is compared for equality against the
// event's request, except StatusWaiting, which matches both waiting stages
// the same way the list filter does.
type SubscriptionFilter struct {
	Status       *Status
	UrgencyLevel *UrgencyLevel
}

// Matches reports whether the event should be delivered.
func (f SubscriptionFilter) Matches(e Event) bool {
	if e.Request == nil {
		return f.Status == nil && f.UrgencyLevel == nil
	}
	if f.Status != nil && !statusMatches(*f.Status, e.Request.Status) {
		return false
	}
	if f.UrgencyLevel != nil && e.Request.UrgencyLevel != *f.UrgencyLevel {
		return false
	}
	return true
}

func statusMatches(want, got Status) bool {
	if want == StatusWaiting {
		return got.Waiting()
	}
	return want == got
}

// NewSubscriptionFilter builds a filter from optional wire strings. Empty
// strings mean "no filter"; other values go through the lenient parsers.
func NewSubscriptionFilter(status, urgency string) SubscriptionFilter {
	var f SubscriptionFilter
	if status != "" {
		s := ParseStatusFilter(status)
		f.Status = &s
	}
	if urgency != "" {
		u := ParseUrgency(urgency)
		f.UrgencyLevel = &u
	}
	return f
}
