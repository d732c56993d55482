package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customer is required")
)

// PlaceOrderCommand represents a request to place a customer order.
// The requested lines keep the order the caller listed them in; lines that
// reference unknown products are skipped at handling time rather than
// failing the whole order.
//
// Example:
//
//	line, _ := order.NewItem(productID, 5)
//	cmd, err := NewPlaceOrderCommand("Alice", time.Time{}, []order.Item{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Placed %s, skipped %d unknown products", result.OrderID, len(result.SkippedProducts))
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customer  string
	orderDate time.Time
	items     []order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a customer order.
// Validates that the customer is not empty. A zero orderDate means the
// order is dated at handling time. An empty item list is accepted.
func NewPlaceOrderCommand(customer string, orderDate time.Time, items []order.Item) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		orderDate: orderDate,
		items:     append([]order.Item(nil), items...),
		guard:     guard.NewConstructorGuard(),
	}

	if err := orderCommand.setCustomer(customer); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Customer returns the identifier of the ordering customer.
func (c PlaceOrderCommand) Customer() string {
	return c.customer
}

// OrderDate returns the requested order date; zero means "now".
func (c PlaceOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Items returns the requested order lines in the caller's order.
func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}

	c.customer = customer
	return nil
}

// PlaceOrderResult reports the outcome of order placement: the assigned
// sequential order identifier and the product IDs of any requested lines
// that were dropped because the product is not registered.
type PlaceOrderResult struct {
	OrderID         kernel.OrderID
	SkippedProducts []kernel.ProductID
}
