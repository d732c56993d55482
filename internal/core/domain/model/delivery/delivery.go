package delivery

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
// through the NewDelivery factory method.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Status is the free-form delivery progress tag. Unlike order status it is
// not restricted to a known set: carriers report arbitrary stage names, and
// status updates overwrite unconditionally.
type Status string

const (
	// Scheduled is the initial status of every delivery.
	Scheduled Status = "Scheduled"

	// OutForDelivery indicates the delivery has left its origin.
	OutForDelivery Status = "Out for Delivery"

	// Delivered indicates the delivery reached the customer.
	Delivered Status = "Delivered"
)

// String returns the status in its external string form.
func (s Status) String() string {
	return string(s)
}

// Delivery represents the shipment of a fulfilled order.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and reference a valid order
//   - Is only ever created for orders whose status is exactly Fulfilled
//     (enforced by the application workflow, not by this entity)
//   - Delivery date and tracking ID are optional
type Delivery struct {
	id           kernel.DeliveryID
	orderID      kernel.OrderID
	deliveryDate *time.Time
	trackingID   string
	status       Status

	isConstructed bool
}

// NewDelivery creates a new Delivery for an order, in Scheduled status.
//
// Parameters:
//   - id: Unique sequential identifier for the delivery (must be valid)
//   - orderID: Identifier of the order being delivered (must be valid)
//   - deliveryDate: Optional planned delivery date; nil if not yet known
//
// Returns the created delivery, or a validation error if an identifier is invalid.
func NewDelivery(id kernel.DeliveryID, orderID kernel.OrderID, deliveryDate *time.Time) (*Delivery, error) {
	d := &Delivery{
		deliveryDate:  deliveryDate,
		status:        Scheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, including its
// tracking ID and current status.
func RestoreDelivery(
	id kernel.DeliveryID,
	orderID kernel.OrderID,
	deliveryDate *time.Time,
	trackingID string,
	status Status,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, deliveryDate)
	if err != nil {
		return nil, err
	}

	d.trackingID = trackingID
	if status != "" {
		d.status = status
	}
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through NewDelivery.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.DeliveryID {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.OrderID {
	return d.orderID
}

// DeliveryDate returns the planned delivery date, or nil if not set.
func (d *Delivery) DeliveryDate() *time.Time {
	return d.deliveryDate
}

// TrackingID returns the carrier tracking identifier, or "" if none was assigned.
func (d *Delivery) TrackingID() string {
	return d.trackingID
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignTracking attaches a carrier tracking identifier to the delivery.
func (d *Delivery) AssignTracking(trackingID string) error {
	if trackingID == "" {
		return errs.NewValueIsRequiredError("trackingID")
	}
	d.trackingID = trackingID
	return nil
}

// UpdateStatus overwrites the delivery's status unconditionally.
// Any non-empty string is accepted; there is no transition validation.
func (d *Delivery) UpdateStatus(status Status) {
	d.status = status
}

// String returns a deterministic human-readable description of the delivery.
func (d *Delivery) String() string {
	dateStr := "Not set"
	if d.deliveryDate != nil {
		dateStr = d.deliveryDate.Format("2006-01-02")
	}
	trackingStr := d.trackingID
	if trackingStr == "" {
		trackingStr = "Not assigned"
	}
	return fmt.Sprintf("Delivery ID: %s, Order ID: %s, Delivery Date: %s, Tracking ID: %s, Status: %s",
		d.id, d.orderID, dateStr, trackingStr, d.status)
}

func (d *Delivery) setID(id kernel.DeliveryID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}
