package domain

import "time"

// Phase is the single tagged state of one workflow flow
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseInvalid    Phase = "invalid"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// Violation identifies a form field that failed validation
type Violation string

const (
	ViolationCheckInTime Violation = "check_in_time"
	ViolationGuestCount  Violation = "number_of_guests"
	ViolationCheckIn     Violation = "check_in_date"
	ViolationCheckOut    Violation = "check_out_date"
)

// FlowState snapshot of one flow (reservation or availability)
type FlowState struct {
	Phase      Phase
	Message    string
	Violations []Violation
	UpdatedAt  time.Time
}

// IsBusy returns true while a request is in flight
func (s FlowState) IsBusy() bool {
	return s.Phase == PhaseValidating || s.Phase == PhaseSubmitting
}

// HasFeedback returns true if the flow shows a transient success or error message
func (s FlowState) HasFeedback() bool {
	return s.Phase == PhaseSucceeded || s.Phase == PhaseFailed
}

// HasViolation reports whether the given field is flagged
func (s FlowState) HasViolation(v Violation) bool {
	for _, got := range s.Violations {
		if got == v {
			return true
		}
	}
	return false
}

// WorkflowSnapshot состояние всего workflow бронирования для одного представления
type WorkflowSnapshot struct {
	ID              string
	AccommodationID string
	Reservation     FlowState
	Availability    FlowState
	Closed          bool
}
