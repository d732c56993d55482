// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Seq is assigned by the database on insert and preserves registration order
// for ordered listings.
type ProductDTO struct {
	Seq      int64  `gorm:"uniqueIndex;autoIncrement"`
	ID       string `gorm:"primaryKey"`
	Name     string
	Category string
	Expiry   *time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:       aggregate.ID().String(),
		Name:     aggregate.Name(),
		Category: aggregate.Category(),
		Expiry:   aggregate.Expiry(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.NewProductID(dto.ID)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Category, dto.Expiry)
}
