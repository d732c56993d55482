package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with line items in insertion order.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Count returns the number of stored orders.
	// Used to derive the sequence of the next order identifier.
	Count(ctx context.Context) (int, error)
}
