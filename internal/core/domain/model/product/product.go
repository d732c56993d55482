package product

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method. This ensures all products are properly validated.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a food product in the supply chain catalog.
//
// Product follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name and category
//   - Expiry date is optional (non-perishable goods carry none)
//   - Is immutable once registered: there are no mutating methods
//
// The Product struct uses private fields to ensure encapsulation; instances
// can only be created through NewProduct or restored through RestoreProduct.
type Product struct {
	id       kernel.ProductID
	name     string
	category string

	// expiry is nil for products without an expiry date.
	expiry *time.Time

	isConstructed bool
}

// NewProduct creates a new Product instance with validation.
//
// Parameters:
//   - id: Unique identifier for the product (must be valid)
//   - name: Human-readable product name (must be non-empty)
//   - category: Free-form category tag, e.g. "Fruits" or "Dairy" (must be non-empty)
//   - expiry: Optional expiry date; nil for non-perishable products
//
// Returns the created product, or a validation error if any parameter is invalid.
func NewProduct(id kernel.ProductID, name string, category string, expiry *time.Time) (*Product, error) {
	p := &Product{
		expiry:        expiry,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// It applies the same validation as NewProduct.
func RestoreProduct(id kernel.ProductID, name string, category string, expiry *time.Time) (*Product, error) {
	return NewProduct(id, name, category, expiry)
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.ProductID {
	return p.id
}

// Name returns the product's human-readable name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the product's category tag.
func (p *Product) Category() string {
	return p.category
}

// Expiry returns the product's expiry date, or nil if it has none.
func (p *Product) Expiry() *time.Time {
	return p.expiry
}

// IsExpired reports whether the product's expiry date lies strictly before
// the given moment. Products without an expiry date never expire.
func (p *Product) IsExpired(now time.Time) bool {
	return p.expiry != nil && p.expiry.Before(now)
}

// String returns a deterministic human-readable description of the product,
// including all identity and key attributes. Used for reporting and logging.
func (p *Product) String() string {
	expiryStr := "No expiry date"
	if p.expiry != nil {
		expiryStr = fmt.Sprintf("Expires on: %s", p.expiry.Format("2006-01-02"))
	}
	return fmt.Sprintf("Product ID: %s, Name: %s, Category: %s, %s", p.id, p.name, p.category, expiryStr)
}

func (p *Product) setID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}
