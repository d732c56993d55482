// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order spans two tables: the order row and its line item rows. Line items
// carry an explicit position so insertion order survives the round trip.
package orderrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID        string `gorm:"primaryKey"`
	Customer  string
	OrderDate time.Time
	Status    string
	Items     []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row. Position is the zero-based
// index of the line within its order.
type ItemDTO struct {
	OrderID   string `gorm:"primaryKey"`
	Position  int    `gorm:"primaryKey"`
	ProductID string
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for position, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID().String(),
			Position:  position,
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().String(),
		Customer:  aggregate.Customer(),
		OrderDate: aggregate.OrderDate(),
		Status:    aggregate.Status().String(),
		Items:     itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Item DTOs must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, pidErr := kernel.NewProductID(itemDTO.ProductID)
		if pidErr != nil {
			return nil, pidErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Customer, dto.OrderDate, items, order.Status(dto.Status))
}
