package commands

import (
	"context"

	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/pkg/errs"
)

// AddProductCommandHandler handles the business logic for product registration.
// Rejects duplicate product identifiers and persists the new catalog entry.
//
// Example:
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	cmd, _ := NewAddProductCommand(productID, "Cheddar", "Dairy", nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("product registration failed: %w", err)
//	}
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for product registration operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product registration command.
// Returns an error wrapping errs.ErrObjectAlreadyExists when the product ID
// is already registered; the existing product is left untouched.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
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

	productRepo := uow.ProductRepository()

	exists, err := productRepo.Exists(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("productID", cmd.ProductID().String())
	}

	aggregate, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Category(), cmd.Expiry())
	if err != nil {
		return err
	}

	if err = productRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
