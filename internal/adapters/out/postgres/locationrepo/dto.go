// Package locationrepo provides data transfer objects and mapping functions for location persistence.
package locationrepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/location"
)

// LocationDTO represents the database structure for persisting location aggregates.
// Seq is assigned by the database on insert and preserves registration order
// for ordered listings.
type LocationDTO struct {
	Seq          int64  `gorm:"uniqueIndex;autoIncrement"`
	ID           string `gorm:"primaryKey"`
	Name         string
	LocationType string
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location domain aggregate to its database representation.
func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:           aggregate.ID().String(),
		Name:         aggregate.Name(),
		LocationType: aggregate.LocationType(),
	}
}

// toDomain converts a database DTO to a location domain aggregate.
func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.NewLocationID(dto.ID)
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(id, dto.Name, dto.LocationType)
}
