package ports

import (
	"context"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.DeliveryID) (*delivery.Delivery, error)

	// Count returns the number of stored deliveries.
	// Used to derive the sequence of the next delivery identifier.
	Count(ctx context.Context) (int, error)
}
