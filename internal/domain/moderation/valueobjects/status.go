package valueobjects

import "fmt"

// TicketStatus is the review state of a ticket. Pending is the only
// non-terminal state; accepted and rejected are final and immutable.
type TicketStatus string

const (
	StatusPending  TicketStatus = "pending"
	StatusAccepted TicketStatus = "accepted"
	StatusRejected TicketStatus = "rejected"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusPending:  true,
	StatusAccepted: true,
	StatusRejected: true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusPending: {
		StatusAccepted,
		StatusRejected,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ts TicketStatus) IsPending() bool {
	return ts == StatusPending
}

func (ts TicketStatus) IsAccepted() bool {
	return ts == StatusAccepted
}

func (ts TicketStatus) IsRejected() bool {
	return ts == StatusRejected
}

// IsTerminal reports whether the status admits no further transitions.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusAccepted || ts == StatusRejected
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
