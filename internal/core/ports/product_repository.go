// Package ports defines repository interfaces for the supply chain domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.ProductID) (*product.Product, error)

	// Exists reports whether a product with the given identifier is stored.
	Exists(ctx context.Context, id kernel.ProductID) (bool, error)

	// GetAll retrieves every registered product in registration order.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
