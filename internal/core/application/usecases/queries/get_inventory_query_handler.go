package queries

import (
	"context"
	"database/sql"
	"errors"

	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetInventoryQueryHandler retrieves one stock record from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for stock lookups.
// Requires a GORM database connection for query execution.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the stock lookup. Returns an error wrapping
// errs.ErrObjectNotFound when the (product, location) pair has no record.
// The lookup has no side effects.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) (GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryQueryResponse{}, err
	}

	var quantity int
	err := h.db.WithContext(ctx).Raw(`
		SELECT quantity
		FROM inventory_items
		WHERE product_id = ? AND location_id = ?
	`, query.ProductID().String(), query.LocationID().String()).Row().Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return GetInventoryQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"inventory", query.ProductID().String()+"/"+query.LocationID().String(), err)
	}
	if err != nil {
		return GetInventoryQueryResponse{}, err
	}

	return GetInventoryQueryResponse{
		ProductID:  query.ProductID(),
		LocationID: query.LocationID(),
		Quantity:   quantity,
	}, nil
}
