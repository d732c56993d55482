package kernel

import (
	"supplychain/internal/pkg/errs"
)

// ErrProductIDIsNotConstructed indicates that a ProductID was not created through
// the NewProductID constructor. This error is returned when validating a zero-value ID.
var ErrProductIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductID must be created via NewProductID constructor")

// ProductID is a value object identifying a product in the supply chain.
// Product identifiers are supplied by the caller at registration time
// (for example "PROD-001") and are unique across the catalog.
//
// The zero value of ProductID is invalid and must be constructed via NewProductID.
// ProductID is immutable, making it suitable for use as a map key and for
// cross-aggregate references.
type ProductID struct {
	id string
}

// NewProductID creates a ProductID from its string form.
// Returns an error if the string is empty.
func NewProductID(id string) (ProductID, error) {
	if id == "" {
		return ProductID{}, errs.NewValueIsRequiredError("productID")
	}
	return ProductID{id: id}, nil
}

// Validate ensures the ProductID was properly constructed.
func (p ProductID) Validate() error {
	if p.id == "" {
		return ErrProductIDIsNotConstructed
	}
	return nil
}

// String returns the identifier in its external string form.
func (p ProductID) String() string {
	return p.id
}

// IsEqual compares two product identifiers by value.
func (p ProductID) IsEqual(other ProductID) bool {
	return p.id == other.id
}
