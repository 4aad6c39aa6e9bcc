// Package lifecycle holds the shared status state machine for time-bounded
// postings. Job and project postings both expire automatically once their
// time bound passes; the transition is applied as an idempotent conditional
// update at the top of every read path and again by the retention sweeper,
// so both converge on the same terminal state.
package lifecycle

import "time"

// Status is a posting lifecycle state
type Status string

// Lifecycle states across both posting kinds
const (
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"    // job postings only
	StatusCompleted Status = "completed" // project postings only
	StatusExpired   Status = "expired"
)

// Expirable is a posting with a status and an optional time bound
type Expirable interface {
	CurrentStatus() Status
	// TimeBound returns the expiration instant and whether one is set
	TimeBound() (time.Time, bool)
}

// ShouldExpire reports whether e must transition active -> expired at now.
// Only active postings expire; closed and completed are terminal for the
// automatic transition.
func ShouldExpire(e Expirable, now time.Time) bool {
	if e.CurrentStatus() != StatusActive {
		return false
	}
	bound, ok := e.TimeBound()
	if !ok {
		return false
	}
	return bound.Before(now)
}

// Rules describes the lifecycle of one posting kind
type Rules struct {
	// ValidStatuses is the closed status set for the kind
	ValidStatuses []Status
	// InteractionStatuses are the states in which like/comment/interest
	// actions are allowed. Empty means the kind has no interactions.
	InteractionStatuses []Status
	// TerminalStatuses are the states a posting never leaves again. The
	// only way out of a terminal state is deletion.
	TerminalStatuses []Status
}

// JobRules governs job postings. They have no interaction sub-entities.
// Once closed or expired a posting stays that way.
var JobRules = Rules{
	ValidStatuses:    []Status{StatusActive, StatusClosed, StatusExpired},
	TerminalStatuses: []Status{StatusClosed, StatusExpired},
}

// ProjectRules governs project postings. Interactions stay open on
// completed projects; only expiration closes them for good.
var ProjectRules = Rules{
	ValidStatuses:       []Status{StatusActive, StatusCompleted, StatusExpired},
	InteractionStatuses: []Status{StatusActive, StatusCompleted},
	TerminalStatuses:    []Status{StatusExpired},
}

// ValidStatus reports whether s belongs to the kind's closed status set
func (r Rules) ValidStatus(s Status) bool {
	for _, v := range r.ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanInteract reports whether interaction actions are allowed in state s
func (r Rules) CanInteract(s Status) bool {
	for _, v := range r.InteractionStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether state s admits no further transitions
func (r Rules) IsTerminal(s Status) bool {
	for _, v := range r.TerminalStatuses {
		if v == s {
			return true
		}
	}
	return false
}
