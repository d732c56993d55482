package commands

import (
	"context"
)

// UpdateDeliveryStatusCommandHandler handles delivery status updates.
// The status is overwritten as reported; no transition rules are enforced.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status updates.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery status update command.
// Returns an error wrapping errs.ErrObjectNotFound when the delivery does not exist.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	aggregate.UpdateStatus(cmd.Status())

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
