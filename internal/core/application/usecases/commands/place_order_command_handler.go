package commands

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Assigns the next sequential order identifier, keeps only lines whose
// products are registered, and persists the order in Pending status.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Lines referencing unknown products do not fail the order; they are dropped
// and reported in the result. The order identifier is derived from the number
// of orders already stored, so identifiers form the sequence ORD-1, ORD-2...
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	count, err := orderRepo.Count(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	orderID, err := kernel.NewOrderID(count + 1)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	aggregate, err := order.NewOrder(orderID, cmd.Customer(), cmd.OrderDate())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	var skipped []kernel.ProductID
	for _, item := range cmd.Items() {
		exists, existsErr := productRepo.Exists(ctx, item.ProductID())
		if existsErr != nil {
			return PlaceOrderResult{}, existsErr
		}
		if !exists {
			skipped = append(skipped, item.ProductID())
			continue
		}

		if err = aggregate.AddItem(item.ProductID(), item.Quantity()); err != nil {
			return PlaceOrderResult{}, err
		}
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{OrderID: orderID, SkippedProducts: skipped}, nil
}
