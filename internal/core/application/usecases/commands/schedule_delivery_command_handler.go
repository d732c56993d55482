package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
)

// ErrOrderNotFulfilled is returned when a delivery is requested for an order
// that has not reached Fulfilled status yet.
var ErrOrderNotFulfilled = errors.New("order is not fulfilled")

// ScheduleDeliveryCommandHandler handles the business logic for scheduling
// deliveries. Only fulfilled orders can be scheduled; the delivery receives
// the next sequential delivery identifier.
//
// Example:
//
//	handler := NewScheduleDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewScheduleDeliveryCommand(orderID, &date, "TRK-9001")
//	deliveryID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderNotFulfilled) {
//	    log.Println("Fulfill the order first")
//	}
type ScheduleDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery scheduling operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewScheduleDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery scheduling command.
// Returns ErrOrderNotFulfilled when the order exists but is not in Fulfilled
// status. The delivery identifier is derived from the number of deliveries
// already stored, so identifiers form the sequence DEL-1, DEL-2...
func (h ScheduleDeliveryCommandHandler) Handle(
	ctx context.Context, cmd ScheduleDeliveryCommand,
) (kernel.DeliveryID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.DeliveryID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.DeliveryID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.DeliveryID{}, err
	}

	if !aggregate.Status().IsFulfilled() {
		return kernel.DeliveryID{}, ErrOrderNotFulfilled
	}

	count, err := deliveryRepo.Count(ctx)
	if err != nil {
		return kernel.DeliveryID{}, err
	}

	deliveryID, err := kernel.NewDeliveryID(count + 1)
	if err != nil {
		return kernel.DeliveryID{}, err
	}

	newDelivery, err := delivery.NewDelivery(deliveryID, cmd.OrderID(), cmd.DeliveryDate())
	if err != nil {
		return kernel.DeliveryID{}, err
	}

	if cmd.TrackingID() != "" {
		if err = newDelivery.AssignTracking(cmd.TrackingID()); err != nil {
			return kernel.DeliveryID{}, err
		}
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return kernel.DeliveryID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.DeliveryID{}, err
	}

	return deliveryID, nil
}
