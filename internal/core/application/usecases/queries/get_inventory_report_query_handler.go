package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetInventoryReportQueryHandler builds the inventory report from the database.
// Joins stock records with product and location names in one round trip.
type GetInventoryReportQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryReportQueryHandler creates a handler for inventory report queries.
// Requires a GORM database connection for query execution.
func NewGetInventoryReportQueryHandler(db *gorm.DB) GetInventoryReportQueryHandler {
	return GetInventoryReportQueryHandler{db: db}
}

// Handle executes the report query.
// Rows come back in stock registration order, the same order fulfillment
// scans stock in, so the report mirrors allocation behavior.
func (h GetInventoryReportQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryReportQuery,
) ([]GetInventoryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]GetInventoryReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.product_id,
			p.name,
			i.location_id,
			l.name,
			i.quantity
		FROM inventory_items i
		JOIN products p ON p.id = i.product_id
		JOIN locations l ON l.id = i.location_id
		ORDER BY i.seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetInventoryReportQueryResponse
		var productID, locationID string

		err = rows.Scan(
			&productID,
			&row.ProductName,
			&locationID,
			&row.LocationName,
			&row.Quantity,
		)
		if err != nil {
			return nil, err
		}

		row.ProductID, err = kernel.NewProductID(productID)
		if err != nil {
			return nil, err
		}
		row.LocationID, err = kernel.NewLocationID(locationID)
		if err != nil {
			return nil, err
		}
		report = append(report, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
