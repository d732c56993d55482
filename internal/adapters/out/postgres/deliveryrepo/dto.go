// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
package deliveryrepo

import (
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// DeliveryDate is nullable; TrackingID is empty until a carrier assigns one.
type DeliveryDTO struct {
	ID           string `gorm:"primaryKey"`
	OrderID      string `gorm:"index"`
	DeliveryDate *time.Time
	TrackingID   string
	Status       string
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:           aggregate.ID().String(),
		OrderID:      aggregate.OrderID().String(),
		DeliveryDate: aggregate.DeliveryDate(),
		TrackingID:   aggregate.TrackingID(),
		Status:       aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.DeliveryIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, dto.DeliveryDate, dto.TrackingID, delivery.Status(dto.Status))
}
