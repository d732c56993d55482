package location

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not created
// through the NewLocation factory method.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location represents a node in the supply chain where stock is held,
// such as a farm, warehouse, or retailer.
//
// Location follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name and location type
//   - Is immutable once registered
//
// The location type is a free-form tag; the domain does not restrict the set
// of values, so new kinds of nodes can appear without a model change.
type Location struct {
	id           kernel.LocationID
	name         string
	locationType string

	isConstructed bool
}

// NewLocation creates a new Location instance with validation.
//
// Parameters:
//   - id: Unique identifier for the location (must be valid)
//   - name: Human-readable location name (must be non-empty)
//   - locationType: Free-form tag, e.g. "Farm", "Warehouse", "Retailer" (must be non-empty)
//
// Returns the created location, or a validation error if any parameter is invalid.
func NewLocation(id kernel.LocationID, name string, locationType string) (*Location, error) {
	l := &Location{
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setLocationType(locationType),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocation reconstructs a Location from persistence.
// It applies the same validation as NewLocation.
func RestoreLocation(id kernel.LocationID, name string, locationType string) (*Location, error) {
	return NewLocation(id, name, locationType)
}

// Validate ensures the Location instance was properly constructed through NewLocation.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// IsEqual compares two locations by their unique identifiers.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.LocationID {
	return l.id
}

// Name returns the location's human-readable name.
func (l *Location) Name() string {
	return l.name
}

// LocationType returns the location's free-form type tag.
func (l *Location) LocationType() string {
	return l.locationType
}

// String returns a deterministic human-readable description of the location.
func (l *Location) String() string {
	return fmt.Sprintf("Location ID: %s, Name: %s, Type: %s", l.id, l.name, l.locationType)
}

func (l *Location) setID(id kernel.LocationID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setLocationType(locationType string) error {
	if locationType == "" {
		return errs.NewValueIsRequiredError("locationType")
	}
	l.locationType = locationType
	return nil
}
