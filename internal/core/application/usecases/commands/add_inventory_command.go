package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrAddInventoryCommandIsNotConstructed = errors.New(
	"AddInventoryCommand must be created via NewAddInventoryCommand constructor",
)

// AddInventoryCommand represents a request to register stock of a product
// at a location. Repeated commands for the same pair accumulate quantity.
//
// The quantity sign is deliberately not validated: a negative quantity is
// accepted and acts as a manual stock adjustment.
type AddInventoryCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.ProductID
	locationID kernel.LocationID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddInventoryCommand creates a command to register stock at a location.
// Validates that both identifiers are valid.
func NewAddInventoryCommand(
	productID kernel.ProductID, locationID kernel.LocationID, quantity int,
) (AddInventoryCommand, error) {
	inventoryCommand := AddInventoryCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inventoryCommand.setProductID(productID),
		inventoryCommand.setLocationID(locationID),
	); err != nil {
		return AddInventoryCommand{}, err
	}

	return inventoryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddInventoryCommandIsNotConstructed if validation fails.
func (c AddInventoryCommand) Validate() error {
	return c.guard.Validate(ErrAddInventoryCommandIsNotConstructed)
}

// ProductID returns the identifier of the stocked product.
func (c AddInventoryCommand) ProductID() kernel.ProductID {
	return c.productID
}

// LocationID returns the identifier of the stocking location.
func (c AddInventoryCommand) LocationID() kernel.LocationID {
	return c.locationID
}

// Quantity returns the quantity delta to apply.
func (c AddInventoryCommand) Quantity() int {
	return c.quantity
}

func (c *AddInventoryCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddInventoryCommand) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}
