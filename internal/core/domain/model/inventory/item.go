package inventory

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrQuantityBelowZero is returned when a deduction would drive the
	// item's quantity below zero. Stock levels are never negative.
	ErrQuantityBelowZero = errors.New("deduction would drive quantity below zero")
)

// Item represents a quantity of one product held at one location.
//
// Item follows these invariants:
//   - Composite identity (ProductID, LocationID); at most one item exists per pair
//   - Quantity is never driven below zero by a deduction
//
// Additions do not validate the sign of the added quantity; whether an
// addition makes business sense is the caller's responsibility. Deductions
// are guarded, since fulfillment must only ever ship stock that exists.
type Item struct {
	productID  kernel.ProductID
	locationID kernel.LocationID
	quantity   int

	isConstructed bool
}

// NewItem creates a new inventory Item for a product/location pair.
// An item comes into existence on the first stock addition for its pair;
// subsequent additions accumulate on the same item.
func NewItem(productID kernel.ProductID, locationID kernel.LocationID, quantity int) (*Item, error) {
	item := &Item{
		quantity:      quantity,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setLocationID(locationID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(productID kernel.ProductID, locationID kernel.LocationID, quantity int) (*Item, error) {
	return NewItem(productID, locationID, quantity)
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the product this item holds.
func (i *Item) ProductID() kernel.ProductID {
	return i.productID
}

// LocationID returns the identifier of the location holding this item.
func (i *Item) LocationID() kernel.LocationID {
	return i.locationID
}

// Quantity returns the current stock level.
func (i *Item) Quantity() int {
	return i.quantity
}

// Add accumulates quantity onto the item. The sign of the added quantity is
// not validated; the caller decides what a sensible addition is.
func (i *Item) Add(quantity int) {
	i.quantity += quantity
}

// CanSupply reports whether the item holds at least the needed quantity.
func (i *Item) CanSupply(needed int) bool {
	return i.quantity >= needed
}

// Deduct removes the needed quantity from the item's stock.
// Returns ErrQuantityBelowZero if the item does not hold enough;
// the stock level is left unchanged in that case.
func (i *Item) Deduct(needed int) error {
	if needed > i.quantity {
		return fmt.Errorf("%w: have %d, need %d", ErrQuantityBelowZero, i.quantity, needed)
	}
	i.quantity -= needed
	return nil
}

// String returns a deterministic human-readable description of the item.
func (i *Item) String() string {
	return fmt.Sprintf("Product: %s, Location: %s, Quantity: %d", i.productID, i.locationID, i.quantity)
}

func (i *Item) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	i.locationID = locationID
	return nil
}
