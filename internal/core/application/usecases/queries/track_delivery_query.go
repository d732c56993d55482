package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrTrackDeliveryQueryIsNotConstructed = errors.New(
	"TrackDeliveryQuery must be created via NewTrackDeliveryQuery constructor",
)

// TrackDeliveryQuery retrieves the current state of one delivery.
type TrackDeliveryQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.DeliveryID

	guard guard.ConstructorGuard
}

// NewTrackDeliveryQuery creates a query for one delivery.
// Validates that the delivery ID is valid.
func NewTrackDeliveryQuery(deliveryID kernel.DeliveryID) (TrackDeliveryQuery, error) {
	query := TrackDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeliveryID(deliveryID); err != nil {
		return TrackDeliveryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackDeliveryQueryIsNotConstructed if validation fails.
func (q TrackDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrTrackDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the tracked delivery.
func (q TrackDeliveryQuery) DeliveryID() kernel.DeliveryID {
	return q.deliveryID
}

func (q *TrackDeliveryQuery) setDeliveryID(deliveryID kernel.DeliveryID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}

// TrackDeliveryQueryResponse represents delivery tracking information in the
// read model. TrackingID is empty while no carrier tracking is assigned and
// DeliveryDate is nil while no date is planned.
type TrackDeliveryQueryResponse struct {
	ID           kernel.DeliveryID
	OrderID      kernel.OrderID
	DeliveryDate *time.Time
	TrackingID   string
	Status       delivery.Status
}
