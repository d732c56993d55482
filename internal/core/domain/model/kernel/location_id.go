package kernel

import (
	"supplychain/internal/pkg/errs"
)

// ErrLocationIDIsNotConstructed indicates that a LocationID was not created through
// the NewLocationID constructor. This error is returned when validating a zero-value ID.
var ErrLocationIDIsNotConstructed = errs.NewValueIsRequiredError(
	"LocationID must be created via NewLocationID constructor")

// LocationID is a value object identifying a storage location in the supply chain
// (a farm, warehouse, or retailer). Location identifiers are supplied by the
// caller at registration time (for example "LOC-002") and are unique.
//
// The zero value of LocationID is invalid and must be constructed via NewLocationID.
type LocationID struct {
	id string
}

// NewLocationID creates a LocationID from its string form.
// Returns an error if the string is empty.
func NewLocationID(id string) (LocationID, error) {
	if id == "" {
		return LocationID{}, errs.NewValueIsRequiredError("locationID")
	}
	return LocationID{id: id}, nil
}

// Validate ensures the LocationID was properly constructed.
func (l LocationID) Validate() error {
	if l.id == "" {
		return ErrLocationIDIsNotConstructed
	}
	return nil
}

// String returns the identifier in its external string form.
func (l LocationID) String() string {
	return l.id
}

// IsEqual compares two location identifiers by value.
func (l LocationID) IsEqual(other LocationID) bool {
	return l.id == other.id
}
