package ports

import (
	"context"

	"supplychain/internal/core/domain/model/inventory"
	"supplychain/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory items.
// An item is keyed by the (product, location) pair.
type InventoryRepository interface {
	// Add persists a new inventory item for a (product, location) pair.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing inventory item.
	Update(ctx context.Context, aggregate *inventory.Item) error

	// Get retrieves the inventory item for a (product, location) pair.
	Get(ctx context.Context, productID kernel.ProductID, locationID kernel.LocationID) (*inventory.Item, error)

	// GetAll retrieves every inventory item ordered by when the stock
	// record was first created. Allocation scans depend on this order.
	GetAll(ctx context.Context) ([]*inventory.Item, error)
}
