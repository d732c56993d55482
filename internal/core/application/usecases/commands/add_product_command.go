package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrCategoryIsRequired = errors.New("category is required")
)

// AddProductCommand represents a request to register a new product in the catalog.
// Encapsulates the product identity, classification, and an optional expiry date.
//
// Example:
//
//	productID, _ := kernel.NewProductID("P100")
//	cmd, err := NewAddProductCommand(productID, "Whole Milk", "Dairy", &expiry)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewAddProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add product: %w", err)
//	}
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	name      string
	category  string
	expiry    *time.Time

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a new product.
// Validates that the product ID is valid and name and category are not empty.
// The expiry date is optional; nil means the product never expires.
func NewAddProductCommand(
	productID kernel.ProductID, name string, category string, expiry *time.Time,
) (AddProductCommand, error) {
	productCommand := AddProductCommand{
		expiry: expiry,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setCategory(category),
	); err != nil {
		return AddProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddProductCommandIsNotConstructed if validation fails.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c AddProductCommand) ProductID() kernel.ProductID {
	return c.productID
}

// Name returns the human-readable product name.
func (c AddProductCommand) Name() string {
	return c.name
}

// Category returns the product classification.
func (c AddProductCommand) Category() string {
	return c.category
}

// Expiry returns the optional expiry date, or nil if the product never expires.
func (c AddProductCommand) Expiry() *time.Time {
	return c.expiry
}

func (c *AddProductCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}
