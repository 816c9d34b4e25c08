package order

import (
	"fmt"

	"autoparts/internal/pkg/errs"
)

// Status represents the lifecycle state of a sale.
// It implements a state machine with defined transitions to ensure
// sales follow the correct funnel workflow.
//
// Canonical order:
//
//	MessageReceived -> Quoting -> AwaitingPayment -> OrderPending -> Completed
//
// Transitions may only move forward along the canonical order, possibly
// skipping states, or stay in place as a no-op. Backward transitions are
// rejected: a completed order can never silently revert to an earlier stage.
//
// Every state is visible in the sales funnel; only OrderPending is visible
// to warehouse fulfillment.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// MessageReceived is the initial status when a sale is first created
	// from a customer contact.
	MessageReceived

	// Quoting indicates staff are pricing parts for the customer.
	Quoting

	// AwaitingPayment indicates a payment link has been issued and the
	// sale is waiting for the customer to pay.
	AwaitingPayment

	// OrderPending indicates payment is confirmed and the order is waiting
	// for warehouse pick and ship. This is the only fulfillment-visible state.
	OrderPending

	// Completed indicates the order has been fulfilled.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		MessageReceived: "MessageReceived",
		Quoting:         "Quoting",
		AwaitingPayment: "AwaitingPayment",
		OrderPending:    "OrderPending",
		Completed:       "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		MessageReceived: "MessageReceived",
		Quoting:         "Quoting",
		AwaitingPayment: "AwaitingPayment",
		OrderPending:    "OrderPending",
		Completed:       "Completed",
	}
}

// StatusFromString parses a status from its canonical name.
// Used when reconstructing state received over HTTP or from external systems.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: MessageReceived, Quoting, AwaitingPayment, OrderPending,
// Completed. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateTransitionTo checks whether moving to target is allowed without
// performing the transition.
//
// Allowed moves are forward along the canonical order (skipping states is
// permitted) or the same-state no-op. Everything else, including every
// backward move, fails with an InvalidTransitionError and both statuses
// must already be valid.
func (s Status) ValidateTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target < s {
		return errs.NewInvalidTransitionErrorWithCause(s.String(), target.String(),
			fmt.Errorf("backward moves along the sales funnel are not allowed"))
	}

	return nil
}

// TransitionTo returns the status after moving to target.
//
// Returns:
//   - (target, nil) on a valid forward move or same-state no-op
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Order.TransitionTo to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.ValidateTransitionTo(target); err != nil {
		return 0, err
	}

	return target, nil
}

// IsFulfillmentVisible reports whether orders in this status appear in the
// warehouse pick list. Only OrderPending qualifies.
func (s Status) IsFulfillmentVisible() bool {
	return s == OrderPending
}
