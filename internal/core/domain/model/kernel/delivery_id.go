package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"supplychain/internal/pkg/errs"
)

// DeliveryIDPrefix is the prefix of every generated delivery identifier.
const DeliveryIDPrefix = "DEL-"

// ErrDeliveryIDIsNotConstructed indicates that a DeliveryID was not created through
// NewDeliveryID or DeliveryIDFromString. This error is returned when validating a zero-value ID.
var ErrDeliveryIDIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryID must be created via NewDeliveryID or DeliveryIDFromString constructors")

// DeliveryID is a value object identifying a delivery. Delivery identifiers
// follow the same monotonic-counter pattern as order identifiers and render
// as "DEL-<n>".
//
// The zero value of DeliveryID is invalid and must be constructed via
// NewDeliveryID or DeliveryIDFromString.
type DeliveryID struct {
	seq int
}

// NewDeliveryID creates a DeliveryID from its sequence number.
// The sequence number must be positive.
func NewDeliveryID(seq int) (DeliveryID, error) {
	if seq <= 0 {
		return DeliveryID{}, errs.NewValueIsInvalidErrorWithCause("deliveryID",
			fmt.Errorf("sequence number %d is not greater than 0", seq))
	}
	return DeliveryID{seq: seq}, nil
}

// DeliveryIDFromString parses a DeliveryID from its external "DEL-<n>" form.
func DeliveryIDFromString(s string) (DeliveryID, error) {
	raw, ok := strings.CutPrefix(s, DeliveryIDPrefix)
	if !ok {
		return DeliveryID{}, errs.NewValueIsInvalidErrorWithCause("deliveryID",
			fmt.Errorf("%q does not start with %q", s, DeliveryIDPrefix))
	}

	seq, err := strconv.Atoi(raw)
	if err != nil {
		return DeliveryID{}, errs.NewValueIsInvalidErrorWithCause("deliveryID", err)
	}

	return NewDeliveryID(seq)
}

// Validate ensures the DeliveryID was properly constructed.
func (d DeliveryID) Validate() error {
	if d.seq <= 0 {
		return ErrDeliveryIDIsNotConstructed
	}
	return nil
}

// Seq returns the sequence number of the identifier.
func (d DeliveryID) Seq() int {
	return d.seq
}

// String returns the identifier in its external "DEL-<n>" form.
func (d DeliveryID) String() string {
	return fmt.Sprintf("%s%d", DeliveryIDPrefix, d.seq)
}

// IsEqual compares two delivery identifiers by value.
func (d DeliveryID) IsEqual(other DeliveryID) bool {
	return d.seq == other.seq
}
