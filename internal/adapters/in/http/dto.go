package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewProduct is the request body for POST /api/v1/products.
type NewProduct struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Expiry   *time.Time `json:"expiry,omitempty"`
}

// NewLocation is the request body for POST /api/v1/locations.
type NewLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// NewInventory is the request body for POST /api/v1/inventory.
// Quantity may be negative to correct an earlier overcount.
type NewInventory struct {
	ProductID  string `json:"productId"`
	LocationID string `json:"locationId"`
	Quantity   int    `json:"quantity"`
}

// Inventory is the response body for GET /api/v1/inventory.
type Inventory struct {
	ProductID  string `json:"productId"`
	LocationID string `json:"locationId"`
	Quantity   int    `json:"quantity"`
}

// InventoryReportRow is one row of GET /api/v1/inventory/report.
type InventoryReportRow struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	LocationID   string `json:"locationId"`
	LocationName string `json:"locationName"`
	Quantity     int    `json:"quantity"`
}

// NewOrderItem is one line of a NewOrder request.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for POST /api/v1/orders.
type NewOrder struct {
	Customer  string         `json:"customer"`
	OrderDate time.Time      `json:"orderDate"`
	Items     []NewOrderItem `json:"items"`
}

// OrderPlaced is the response body for POST /api/v1/orders.
type OrderPlaced struct {
	OrderID         string   `json:"orderId"`
	SkippedProducts []string `json:"skippedProducts,omitempty"`
}

// NewDelivery is the request body for POST /api/v1/orders/:id/delivery.
type NewDelivery struct {
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	TrackingID   string     `json:"trackingId,omitempty"`
}

// DeliveryScheduled is the response body for POST /api/v1/orders/:id/delivery.
type DeliveryScheduled struct {
	DeliveryID string `json:"deliveryId"`
}

// DeliveryStatusUpdate is the request body for PUT /api/v1/deliveries/:id/status.
type DeliveryStatusUpdate struct {
	Status string `json:"status"`
}

// Delivery is the response body for GET /api/v1/deliveries/:id.
type Delivery struct {
	ID           string     `json:"id"`
	OrderID      string     `json:"orderId"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	TrackingID   string     `json:"trackingId,omitempty"`
	Status       string     `json:"status"`
}

// ExpiredProduct is one row of GET /api/v1/products/expired.
type ExpiredProduct struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Expiry   time.Time `json:"expiry"`
}
