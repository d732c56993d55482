package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"supplychain/internal/core/domain/model/delivery"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackDeliveryQueryHandler retrieves delivery tracking information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewTrackDeliveryQueryHandler(db)
//	query, _ := NewTrackDeliveryQuery(deliveryID)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to track delivery: %v", err)
//	    return err
//	}
//	fmt.Printf("Delivery %s is %s\n", tracking.ID, tracking.Status)
type TrackDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewTrackDeliveryQueryHandler creates a handler for delivery tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackDeliveryQueryHandler(db *gorm.DB) TrackDeliveryQueryHandler {
	return TrackDeliveryQueryHandler{db: db}
}

// Handle executes the delivery lookup. Returns an error wrapping
// errs.ErrObjectNotFound when the delivery does not exist.
func (h TrackDeliveryQueryHandler) Handle(
	ctx context.Context,
	query TrackDeliveryQuery,
) (TrackDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	var (
		id           string
		orderID      string
		deliveryDate sql.NullTime
		trackingID   sql.NullString
		status       string
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, delivery_date, tracking_id, status
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().String()).Row().Scan(&id, &orderID, &deliveryDate, &trackingID, &status)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return TrackDeliveryQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"deliveryID", query.DeliveryID().String(), err)
	}
	if err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	deliveryID, err := kernel.DeliveryIDFromString(id)
	if err != nil {
		return TrackDeliveryQueryResponse{}, err
	}
	deliveredOrderID, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return TrackDeliveryQueryResponse{}, err
	}

	response := TrackDeliveryQueryResponse{
		ID:         deliveryID,
		OrderID:    deliveredOrderID,
		TrackingID: trackingID.String,
		Status:     delivery.Status(status),
	}
	if deliveryDate.Valid {
		date := deliveryDate.Time.In(time.UTC)
		response.DeliveryDate = &date
	}

	return response, nil
}
