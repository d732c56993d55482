// Package inventory provides the Item aggregate: a quantity of one product
// held at one location, identified by the (ProductID, LocationID) pair.
//
// Key business rules:
//   - At most one item exists per product/location pair
//   - Additions accumulate; the sign of an addition is the caller's responsibility
//   - Deductions never drive the quantity below zero
package inventory
