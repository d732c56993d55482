package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetInventoryReportQueryIsNotConstructed = errors.New(
	"GetInventoryReportQuery must be created via NewGetInventoryReportQuery constructor",
)

// GetInventoryReportQuery retrieves every stock record with its product and
// location names resolved, in stock registration order. An empty inventory
// yields an empty report, not an error.
//
// Example:
//
//	query := NewGetInventoryReportQuery()
//	handler := NewGetInventoryReportQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build inventory report: %w", err)
//	}
//	for _, row := range report {
//	    fmt.Printf("%s at %s: %d\n", row.ProductName, row.LocationName, row.Quantity)
//	}
type GetInventoryReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryReportQuery creates a query for the full inventory report.
// This is a parameterless query that fetches every stock record.
func NewGetInventoryReportQuery() GetInventoryReportQuery {
	return GetInventoryReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryReportQueryIsNotConstructed if validation fails.
func (q GetInventoryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryReportQueryIsNotConstructed)
}

// GetInventoryReportQueryResponse represents one report row: a stock record
// joined with its product and location names.
type GetInventoryReportQueryResponse struct {
	ProductID    kernel.ProductID
	ProductName  string
	LocationID   kernel.LocationID
	LocationName string
	Quantity     int
}
