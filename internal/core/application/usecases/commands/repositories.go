// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// LocationRepoFactory provides access to location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// InventoryRepoFactory provides access to inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// LocationUoW manages transactions for location-only operations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// InventoryUoW manages transactions for stock registration.
	// Needs product and location repositories to verify references.
	InventoryUoW interface {
		TxManager
		ProductRepoFactory
		LocationRepoFactory
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// OrderUoW manages transactions for order placement.
	// Needs the product repository to filter out unknown products.
	OrderUoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages transactions for order fulfillment.
	// Coordinates changes between order and inventory aggregates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   inventoryRepo := uow.InventoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// DeliveryUoW manages transactions for delivery scheduling and tracking.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
