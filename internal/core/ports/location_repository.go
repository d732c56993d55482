package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for location aggregates.
type LocationRepository interface {
	// Add persists a new location aggregate to storage.
	// The location must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.LocationID) (*location.Location, error)

	// Exists reports whether a location with the given identifier is stored.
	Exists(ctx context.Context, id kernel.LocationID) (bool, error)

	// GetAll retrieves every registered location in registration order.
	GetAll(ctx context.Context) ([]*location.Location, error)
}
