package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/inventory"
	"supplychain/internal/pkg/errs"
)

// AddInventoryCommandHandler handles the business logic for stock registration.
// Verifies that both the product and the location are registered, then either
// creates a stock record for the pair or accumulates onto the existing one.
//
// Example:
//
//	handler := NewAddInventoryCommandHandler(uowFactory)
//	cmd, _ := NewAddInventoryCommand(productID, locationID, 50)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidReference) {
//	    log.Println("Unknown product or location")
//	}
type AddInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddInventoryCommandHandler creates a handler for stock registration operations.
// Requires an InventoryUoWFactory for transactional persistence.
func NewAddInventoryCommandHandler(uowFactory InventoryUoWFactory) AddInventoryCommandHandler {
	return AddInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock registration command.
// Returns an error wrapping errs.ErrInvalidReference when the referenced
// product or location is not registered.
func (h AddInventoryCommandHandler) Handle(ctx context.Context, cmd AddInventoryCommand) error {
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

	productExists, err := uow.ProductRepository().Exists(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !productExists {
		return errs.NewInvalidReferenceError("productID", cmd.ProductID().String())
	}

	locationExists, err := uow.LocationRepository().Exists(ctx, cmd.LocationID())
	if err != nil {
		return err
	}
	if !locationExists {
		return errs.NewInvalidReferenceError("locationID", cmd.LocationID().String())
	}

	inventoryRepo := uow.InventoryRepository()

	item, err := inventoryRepo.Get(ctx, cmd.ProductID(), cmd.LocationID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		item, err = inventory.NewItem(cmd.ProductID(), cmd.LocationID(), cmd.Quantity())
		if err != nil {
			return err
		}
		if err = inventoryRepo.Add(ctx, item); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		item.Add(cmd.Quantity())
		if err = inventoryRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
