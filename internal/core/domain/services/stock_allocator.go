package services

import (
	"errors"

	"supplychain/internal/core/domain/model/inventory"
	"supplychain/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is returned when no single location holds enough stock
// of a product to cover a requested quantity. A line item is always shipped
// from one location; there is no splitting across locations.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockAllocator is a domain service responsible for allocating one order line
// item against the registered inventory.
//
// Selection rule: the inventory items are scanned in the order given by the
// caller (registration order), and the first item that holds the requested
// product with sufficient quantity wins. There is no optimization for shipping
// distance and no balancing of stock across locations — single-location
// sufficiency is a deliberate simplification of this model, and allocation
// must preserve it.
//
// Example usage:
//
//	allocator := services.NewStockAllocator()
//	item, err := allocator.Allocate(productID, 5, inventoryItems)
//	if errors.Is(err, services.ErrInsufficientStock) {
//	    // No single location can cover the line
//	    return
//	}
//	// item has already been deducted by 5 units
type StockAllocator struct{}

// NewStockAllocator creates a new StockAllocator instance.
func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Allocate finds stock for a single line item and deducts it immediately.
//
// Parameters:
//   - productID: The product requested by the line item (must be valid)
//   - needed: The requested quantity
//   - items: All registered inventory items, in registration order
//
// Returns:
//   - *inventory.Item: The item the stock was deducted from
//   - error: ErrInsufficientStock if no single item can cover the line,
//     or a validation error
//
// The deduction happens on the returned item before Allocate returns; callers
// decide whether and when to persist it.
func (a StockAllocator) Allocate(
	productID kernel.ProductID,
	needed int,
	items []*inventory.Item,
) (*inventory.Item, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	found, err := a.findFirstSufficient(productID, needed, items)
	if err != nil {
		return nil, err
	}

	if err = found.Deduct(needed); err != nil {
		return nil, err
	}

	return found, nil
}

// findFirstSufficient scans the items in the given order and returns the first
// one that holds the requested product with at least the needed quantity.
func (a StockAllocator) findFirstSufficient(
	productID kernel.ProductID,
	needed int,
	items []*inventory.Item,
) (*inventory.Item, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		if !item.ProductID().IsEqual(productID) {
			continue
		}

		if item.CanSupply(needed) {
			return item, nil
		}
	}

	return nil, ErrInsufficientStock
}
