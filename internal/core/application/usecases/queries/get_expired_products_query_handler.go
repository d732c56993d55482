package queries

import (
	"context"
	"time"

	"supplychain/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetExpiredProductsQueryHandler retrieves expired products from the database.
type GetExpiredProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetExpiredProductsQueryHandler creates a handler for expired product queries.
// Requires a GORM database connection for query execution.
func NewGetExpiredProductsQueryHandler(db *gorm.DB) GetExpiredProductsQueryHandler {
	return GetExpiredProductsQueryHandler{db: db}
}

// Handle executes the query, returning products whose expiry date lies
// strictly before the reference instant, in registration order.
func (h GetExpiredProductsQueryHandler) Handle(
	ctx context.Context,
	query GetExpiredProductsQuery,
) ([]GetExpiredProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	expired := make([]GetExpiredProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, category, expiry
		FROM products
		WHERE expiry IS NOT NULL AND expiry < ?
		ORDER BY seq
	`, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product GetExpiredProductsQueryResponse
		var id string
		var expiry time.Time

		err = rows.Scan(&id, &product.Name, &product.Category, &expiry)
		if err != nil {
			return nil, err
		}

		product.ID, err = kernel.NewProductID(id)
		if err != nil {
			return nil, err
		}
		product.Expiry = expiry.In(time.UTC)
		expired = append(expired, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return expired, nil
}
