package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Item is one line of an order: a requested quantity of a product.
// Lines are kept in the order they were first added, and adding a product
// that is already present accumulates onto its existing line.
type Item struct {
	productID kernel.ProductID
	quantity  int
}

// NewItem creates an order line item.
func NewItem(productID kernel.ProductID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	return Item{productID: productID, quantity: quantity}, nil
}

// ProductID returns the identifier of the requested product.
func (i Item) ProductID() kernel.ProductID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Order represents a customer order in the supply chain. It is the aggregate
// root that manages the order's line items and its lifecycle from placement
// to fulfillment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer
//   - Line items are insertion-ordered; one line per product, quantities accumulate
//   - Status progresses linearly from Pending to Fulfilled
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.OrderID
	customer  string
	orderDate time.Time
	items     []Item
	status    Status

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no line items.
//
// Parameters:
//   - id: Unique sequential identifier for the order (must be valid)
//   - customer: Identifier of the ordering customer (must be non-empty)
//   - orderDate: Date of the order; the zero value defaults to the current date
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(id kernel.OrderID, customer string, orderDate time.Time) (*Order, error) {
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	o := &Order{
		orderDate:     orderDate,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its line
// items and current status. The status must be one the domain produces.
func RestoreOrder(id kernel.OrderID, customer string, orderDate time.Time, items []Item, status Status) (*Order, error) {
	o, err := NewOrder(id, customer, orderDate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.items = append(o.items, items...)
	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the identifier of the ordering customer.
func (o *Order) Customer() string {
	return o.customer
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem adds a requested quantity of a product to the order.
// If the product already has a line, the quantity accumulates onto it;
// otherwise a new line is appended. The quantity sign is not validated —
// whether an addition makes business sense is the caller's responsibility.
func (o *Order) AddItem(productID kernel.ProductID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	for i := range o.items {
		if o.items[i].productID.IsEqual(productID) {
			o.items[i].quantity += quantity
			return nil
		}
	}

	o.items = append(o.items, Item{productID: productID, quantity: quantity})
	return nil
}

// UpdateStatus overwrites the order's status unconditionally.
// The entity performs no transition validation; the application workflow is
// the layer that decides which transitions are legal.
func (o *Order) UpdateStatus(status Status) {
	o.status = status
}

// String returns a deterministic human-readable description of the order,
// including its line items in insertion order.
func (o *Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s, Customer: %s, Date: %s, Status: %s",
		o.id, o.customer, o.orderDate.Format("2006-01-02"), o.status)
	b.WriteString("\n  Items:")
	for _, item := range o.items {
		fmt.Fprintf(&b, "\n  - %s: %d", item.productID, item.quantity)
	}
	return b.String()
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}
