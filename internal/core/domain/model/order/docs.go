// Package order provides domain entities and business logic for order
// management in the supply-chain system. It implements the Order aggregate
// root with insertion-ordered line items and a linear status progression.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Item: One line of an order (a requested quantity of a product)
//   - Status: The order lifecycle value (Pending -> Fulfilled)
//
// Key business rules:
//   - Orders must have a valid sequential identifier and a non-empty customer
//   - Adding a product already on the order accumulates onto its existing line
//   - Status updates at the entity level are unconditional; the application
//     workflow enforces the single gate in the system (delivery scheduling
//     requires a Fulfilled order)
package order
