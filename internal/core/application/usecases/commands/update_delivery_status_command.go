package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
		"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
	)
	ErrStatusIsRequired = errors.New("status is required")
)

// UpdateDeliveryStatusCommand represents a request to overwrite the status of
// an existing delivery. Statuses are free-form; carriers report values such
// as "Out for Delivery" or "Delivered".
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.DeliveryID
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to update a delivery status.
// Validates that the delivery ID is valid and the status is not empty.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.DeliveryID, status delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	statusCommand := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setDeliveryID(deliveryID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryStatusCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.DeliveryID {
	return c.deliveryID
}

// Status returns the status to set.
func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.DeliveryID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(status delivery.Status) error {
	if status == "" {
		return ErrStatusIsRequired
	}

	c.status = status
	return nil
}
