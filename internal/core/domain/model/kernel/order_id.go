package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"supplychain/internal/pkg/errs"
)

// OrderIDPrefix is the prefix of every generated order identifier.
const OrderIDPrefix = "ORD-"

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// NewOrderID or OrderIDFromString. This error is returned when validating a zero-value ID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString constructors")

// OrderID is a value object identifying an order. Order identifiers are
// generated sequentially by the application as "ORD-<n>", where n is the
// count of registered orders plus one. Sequence numbers grow monotonically
// and are never reused.
//
// The zero value of OrderID is invalid and must be constructed via
// NewOrderID or OrderIDFromString.
type OrderID struct {
	seq int
}

// NewOrderID creates an OrderID from its sequence number.
// The sequence number must be positive.
func NewOrderID(seq int) (OrderID, error) {
	if seq <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("sequence number %d is not greater than 0", seq))
	}
	return OrderID{seq: seq}, nil
}

// OrderIDFromString parses an OrderID from its external "ORD-<n>" form.
// Returns an error if the prefix is missing or the sequence number is not
// a positive integer. This function is typically used when reconstructing
// identifiers from persistence or from API requests.
func OrderIDFromString(s string) (OrderID, error) {
	raw, ok := strings.CutPrefix(s, OrderIDPrefix)
	if !ok {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%q does not start with %q", s, OrderIDPrefix))
	}

	seq, err := strconv.Atoi(raw)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	return NewOrderID(seq)
}

// Validate ensures the OrderID was properly constructed.
func (o OrderID) Validate() error {
	if o.seq <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// Seq returns the sequence number of the identifier.
func (o OrderID) Seq() int {
	return o.seq
}

// String returns the identifier in its external "ORD-<n>" form.
func (o OrderID) String() string {
	return fmt.Sprintf("%s%d", OrderIDPrefix, o.seq)
}

// IsEqual compares two order identifiers by value.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.seq == other.seq
}
