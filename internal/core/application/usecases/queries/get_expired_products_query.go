package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetExpiredProductsQueryIsNotConstructed = errors.New(
		"GetExpiredProductsQuery must be created via NewGetExpiredProductsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf is required")
)

// GetExpiredProductsQuery retrieves products whose expiry date has passed
// relative to a reference instant. Products without an expiry date never
// appear in the result.
type GetExpiredProductsQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetExpiredProductsQuery creates a query for expired products.
// Validates that the reference instant is not the zero time.
func NewGetExpiredProductsQuery(asOf time.Time) (GetExpiredProductsQuery, error) {
	query := GetExpiredProductsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAsOf(asOf); err != nil {
		return GetExpiredProductsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetExpiredProductsQueryIsNotConstructed if validation fails.
func (q GetExpiredProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiredProductsQueryIsNotConstructed)
}

// AsOf returns the reference instant expiry is judged against.
func (q GetExpiredProductsQuery) AsOf() time.Time {
	return q.asOf
}

func (q *GetExpiredProductsQuery) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return ErrAsOfIsRequired
	}

	q.asOf = asOf
	return nil
}

// GetExpiredProductsQueryResponse represents one expired product in the read model.
type GetExpiredProductsQueryResponse struct {
	ID       kernel.ProductID
	Name     string
	Category string
	Expiry   time.Time
}
