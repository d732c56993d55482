package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrFulfillOrderCommandIsNotConstructed = errors.New(
	"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
)

// FulfillOrderCommand represents a request to fulfill a placed order by
// allocating stock to each of its line items.
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to fulfill an order.
// Validates that the order ID is valid.
func NewFulfillOrderCommand(orderID kernel.OrderID) (FulfillOrderCommand, error) {
	fulfillCommand := FulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fulfillCommand.setOrderID(orderID); err != nil {
		return FulfillOrderCommand{}, err
	}

	return fulfillCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFulfillOrderCommandIsNotConstructed if validation fails.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to fulfill.
func (c FulfillOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *FulfillOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
