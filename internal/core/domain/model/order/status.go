package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State progression is linear:
//
//	Pending ──> Fulfilled
//
// Status is an extensible string type; the domain itself only ever produces
// Pending and Fulfilled. The entity does not gate transitions — the single
// state-machine gate in the system (a delivery may only be scheduled for a
// Fulfilled order) is enforced by the application workflow.
type Status string

const (
	// Pending is the initial status when an order is placed.
	// Stock has not yet been allocated for pending orders.
	Pending Status = "Pending"

	// Fulfilled indicates every line item of the order was allocated and
	// deducted from inventory. Only fulfilled orders can be scheduled
	// for delivery.
	Fulfilled Status = "Fulfilled"
)

// Validate checks that the Status is one of the values the domain produces.
// Used when reconstructing orders from persistence or API input.
func (s Status) Validate() error {
	switch s {
	case Pending, Fulfilled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a known order status", string(s)))
	}
}

// IsFulfilled reports whether the status is exactly Fulfilled.
func (s Status) IsFulfilled() bool {
	return s == Fulfilled
}

// String returns the status in its external string form.
func (s Status) String() string {
	return string(s)
}
