// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves the stock record for one (product, location) pair.
//
// Example:
//
//	query, _ := NewGetInventoryQuery(productID, locationID)
//	handler := NewGetInventoryQueryHandler(db)
//
//	stock, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("No stock registered for this pair")
//	}
type GetInventoryQuery struct { //nolint:recvcheck //using for validation
	productID  kernel.ProductID
	locationID kernel.LocationID

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a query for one stock record.
// Validates that both identifiers are valid.
func NewGetInventoryQuery(productID kernel.ProductID, locationID kernel.LocationID) (GetInventoryQuery, error) {
	query := GetInventoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setProductID(productID),
		query.setLocationID(locationID),
	); err != nil {
		return GetInventoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryQueryIsNotConstructed if validation fails.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// ProductID returns the identifier of the queried product.
func (q GetInventoryQuery) ProductID() kernel.ProductID {
	return q.productID
}

// LocationID returns the identifier of the queried location.
func (q GetInventoryQuery) LocationID() kernel.LocationID {
	return q.locationID
}

func (q *GetInventoryQuery) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}

func (q *GetInventoryQuery) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	q.locationID = locationID
	return nil
}

// GetInventoryQueryResponse represents one stock record in the read model.
type GetInventoryQueryResponse struct {
	ProductID  kernel.ProductID
	LocationID kernel.LocationID
	Quantity   int
}
