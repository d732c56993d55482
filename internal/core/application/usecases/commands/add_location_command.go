package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrAddLocationCommandIsNotConstructed = errors.New(
		"AddLocationCommand must be created via NewAddLocationCommand constructor",
	)
	ErrLocationTypeIsRequired = errors.New("location type is required")
)

// AddLocationCommand represents a request to register a new storage location.
// A location is any node of the supply chain that can hold stock, such as a
// warehouse, a store, or a distribution center.
type AddLocationCommand struct { //nolint:recvcheck //using for validation
	locationID   kernel.LocationID
	name         string
	locationType string

	guard guard.ConstructorGuard
}

// NewAddLocationCommand creates a command to register a new location.
// Validates that the location ID is valid and name and type are not empty.
func NewAddLocationCommand(
	locationID kernel.LocationID, name string, locationType string,
) (AddLocationCommand, error) {
	locationCommand := AddLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setLocationID(locationID),
		locationCommand.setName(name),
		locationCommand.setLocationType(locationType),
	); err != nil {
		return AddLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddLocationCommandIsNotConstructed if validation fails.
func (c AddLocationCommand) Validate() error {
	return c.guard.Validate(ErrAddLocationCommandIsNotConstructed)
}

// LocationID returns the unique identifier for the location.
func (c AddLocationCommand) LocationID() kernel.LocationID {
	return c.locationID
}

// Name returns the human-readable location name.
func (c AddLocationCommand) Name() string {
	return c.name
}

// LocationType returns the kind of location, such as "Warehouse" or "Store".
func (c AddLocationCommand) LocationType() string {
	return c.locationType
}

func (c *AddLocationCommand) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *AddLocationCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddLocationCommand) setLocationType(locationType string) error {
	if locationType == "" {
		return ErrLocationTypeIsRequired
	}

	c.locationType = locationType
	return nil
}
