// Package inventoryrepo provides data transfer objects and mapping functions for stock persistence.
// A stock record is keyed by its (product, location) pair; the database-assigned
// Seq column preserves the order records were first created in, which the
// allocation scan and the inventory report both rely on.
package inventoryrepo

import (
	"supplychain/internal/core/domain/model/inventory"
	"supplychain/internal/core/domain/model/kernel"
)

// ItemDTO represents the database structure for persisting stock records.
type ItemDTO struct {
	Seq        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID  string `gorm:"uniqueIndex:idx_inventory_pair"`
	LocationID string `gorm:"uniqueIndex:idx_inventory_pair"`
	Quantity   int
}

// TableName specifies the database table name for stock records.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// fromDomain converts a stock record to its database representation.
// Seq stays zero for new records; the database assigns it on insert.
func fromDomain(aggregate *inventory.Item) ItemDTO {
	return ItemDTO{
		ProductID:  aggregate.ProductID().String(),
		LocationID: aggregate.LocationID().String(),
		Quantity:   aggregate.Quantity(),
	}
}

// toDomain converts a database DTO to a stock record.
func toDomain(dto ItemDTO) (*inventory.Item, error) {
	productID, err := kernel.NewProductID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	locationID, err := kernel.NewLocationID(dto.LocationID)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(productID, locationID, dto.Quantity)
}
