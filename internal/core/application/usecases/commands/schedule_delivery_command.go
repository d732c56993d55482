package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents a request to schedule a delivery for a
// fulfilled order. The delivery date and tracking identifier are optional and
// can be assigned later.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.OrderID
	deliveryDate *time.Time
	trackingID   string

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to schedule a delivery.
// Validates that the order ID is valid. A nil deliveryDate and an empty
// trackingID are accepted.
func NewScheduleDeliveryCommand(
	orderID kernel.OrderID, deliveryDate *time.Time, trackingID string,
) (ScheduleDeliveryCommand, error) {
	deliveryCommand := ScheduleDeliveryCommand{
		deliveryDate: deliveryDate,
		trackingID:   trackingID,
		guard:        guard.NewConstructorGuard(),
	}

	if err := deliveryCommand.setOrderID(orderID); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScheduleDeliveryCommandIsNotConstructed if validation fails.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c ScheduleDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// DeliveryDate returns the planned delivery date, or nil if not set yet.
func (c ScheduleDeliveryCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// TrackingID returns the carrier tracking identifier, or "" if not assigned.
func (c ScheduleDeliveryCommand) TrackingID() string {
	return c.trackingID
}

func (c *ScheduleDeliveryCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
