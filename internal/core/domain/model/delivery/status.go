package delivery

import (
	"errors"
	"fmt"

	"deliverytrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with strict forward-only transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │            │
//	   └────────────┴────────────┴────────────┴──> Cancelled
//
// Delivered, Cancelled, and Failed are terminal: no outgoing transitions.
// Failed is representable (legacy rows may carry it) but no transition in
// this subsystem produces it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the sole initial status of a newly created delivery.
	Pending

	// Assigned indicates a driver has been assigned to the delivery.
	Assigned

	// PickedUp indicates the driver collected the order at the restaurant.
	PickedUp

	// InTransit indicates the delivery is on its way to the customer.
	InTransit

	// Delivered indicates successful completion. Terminal.
	Delivered

	// Cancelled indicates the delivery was cancelled with a reason. Terminal.
	Cancelled

	// Failed indicates the delivery could not be completed. Terminal.
	Failed
)

// ErrInvalidTransition is the sentinel all transition failures unwrap to.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports an illegal lifecycle event, naming the
// current status and the attempted event.
type InvalidTransitionError struct {
	From  Status
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot %s from %s", e.Event, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func newInvalidTransitionError(from Status, event string) error {
	return &InvalidTransitionError{From: from, Event: event}
}

// getStatusStrings returns a map of Status values to their string representations.
// The strings are the wire and persistence format, matching the REST API.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
		Failed:    "FAILED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
		Failed:    "FAILED",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unknown strings, including "UNKNOWN" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the seven valid statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Failed
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned
//
// Returns (0, *InvalidTransitionError) from any other status.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, newInvalidTransitionError(s, "assign")
	}
	return Assigned, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Assigned -> PickedUp
//
// Returns (0, *InvalidTransitionError) from any other status.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, newInvalidTransitionError(s, "pick up")
	}
	return PickedUp, nil
}

// StartTransit transitions the status to InTransit.
//
// Valid transitions:
//   - PickedUp -> InTransit
//
// Returns (0, *InvalidTransitionError) from any other status.
func (s Status) StartTransit() (Status, error) {
	if s != PickedUp {
		return 0, newInvalidTransitionError(s, "start transit")
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Returns (0, *InvalidTransitionError) from any other status.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, newInvalidTransitionError(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from every non-terminal status; a terminal status (including
// Cancelled itself) returns (0, *InvalidTransitionError).
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, newInvalidTransitionError(s, "cancel")
	}
	if s.IsTerminal() {
		return 0, newInvalidTransitionError(s, "cancel")
	}
	return Cancelled, nil
}
