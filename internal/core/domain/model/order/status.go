package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal states with no outgoing transitions.
// Status is a value object that validates state transitions and provides
// string representations for persistence and the API surface.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	Created

	// InProgress indicates the order is being worked on.
	InProgress

	// Completed indicates the order has been fulfilled.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was cancelled by its owner or an admin.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "created",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "created",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses a wire-format status value.
//
// Recognized values are "created", "in_progress", "completed" and "cancelled".
// Any other value yields a validation error, which callers surface as a
// malformed-input failure, never as an illegal transition.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, InProgress, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status.
// For invalid status values it returns "unknown".
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Completed and Cancelled are the terminal states.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether moving from the current status to next
// is a legal lifecycle edge, without performing the transition.
//
// Legal edges:
//   - Created -> InProgress
//   - Created -> Cancelled
//   - InProgress -> Completed
//   - InProgress -> Cancelled
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case Created:
		return next == InProgress || next == Cancelled
	case InProgress:
		return next == Completed || next == Cancelled
	default:
		return false
	}
}

// TransitionTo moves the status along a legal lifecycle edge.
//
// Returns the new status on success. Returns a validation error if next is
// not a recognized status, or an invalid-transition error if the edge is not
// in the allowed set (including any transition out of a terminal status).
//
// Note that a recognized target status is not automatically a legal one:
// enum membership and edge legality are checked separately, and both must hold.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}

	return next, nil
}
