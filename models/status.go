package models

// Status is the lifecycle state of a service request.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	// StatusPaymentCompleted keeps the historical wire casing; clients filter on it.
	StatusPaymentCompleted Status = "PaymentCompleted"
)

// transitions is the single source of truth for legal status changes.
// Anything absent here, including self-loops and backward edges, is rejected.
var transitions = map[Status][]Status{
	StatusPending:          {StatusAccepted, StatusRejected},
	StatusAccepted:         {StatusInProgress},
	StatusInProgress:       {StatusCompleted},
	StatusCompleted:        {StatusPaymentCompleted},
	StatusRejected:         {},
	StatusPaymentCompleted: {},
}

// providerSettable is the subset of statuses a provider may request directly.
// PaymentCompleted is only reachable through payment confirmation.
var providerSettable = map[Status]bool{
	StatusAccepted:   true,
	StatusRejected:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is a known lifecycle status.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the edge s -> next exists in the table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ProviderSettable reports whether a provider may request s on an owned record.
func (s Status) ProviderSettable() bool {
	return providerSettable[s]
}

// AllStatuses returns every known status, useful for validation sweeps.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusAccepted,
		StatusRejected,
		StatusInProgress,
		StatusCompleted,
		StatusPaymentCompleted,
	}
}
