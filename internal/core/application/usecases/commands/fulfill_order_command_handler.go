package commands

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/services"
)

// FulfillOrderCommandHandler orchestrates the order fulfillment process.
// Walks the order's line items in insertion order and allocates each one from
// the first location holding enough stock, deducting as it goes.
//
// Fulfillment is deliberately not atomic across line items: when a line cannot
// be covered, the deductions already made for earlier lines are committed and
// the order stays Pending. Retrying fulfillment after restocking picks the
// remaining lines up from the already reduced stock levels.
//
// Example:
//
//	handler := NewFulfillOrderCommandHandler(uowFactory)
//	cmd, _ := NewFulfillOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrInsufficientStock):
//	    log.Println("Not enough stock, order left pending")
//	case err != nil:
//	    log.Printf("Fulfillment failed: %v", err)
//	default:
//	    log.Println("Order fulfilled")
//	}
type FulfillOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewFulfillOrderCommandHandler creates a handler for order fulfillment operations.
// Requires a FulfillmentUoWFactory for coordinating order and inventory updates.
func NewFulfillOrderCommandHandler(uowFactory FulfillmentUoWFactory) FulfillOrderCommandHandler {
	return FulfillOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order fulfillment command.
// Returns an error wrapping services.ErrInsufficientStock when a line item
// cannot be covered by any single location. Deductions made for earlier line
// items are committed even in that case.
func (h FulfillOrderCommandHandler) Handle(ctx context.Context, cmd FulfillOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	inventoryRepo := uow.InventoryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	stock, err := inventoryRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	allocator := services.NewStockAllocator()
	for _, item := range aggregate.Items() {
		allocated, allocErr := allocator.Allocate(item.ProductID(), item.Quantity(), stock)
		if errors.Is(allocErr, services.ErrInsufficientStock) {
			if commitErr := uow.Commit(ctx); commitErr != nil {
				return commitErr
			}
			return fmt.Errorf("order %s, product %s: %w", cmd.OrderID(), item.ProductID(), allocErr)
		}
		if allocErr != nil {
			return allocErr
		}

		if err = inventoryRepo.Update(ctx, allocated); err != nil {
			return err
		}
	}

	aggregate.UpdateStatus(order.Fulfilled)
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
