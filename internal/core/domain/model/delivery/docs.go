// Package delivery provides the Delivery aggregate: the shipment of a
// fulfilled order, referenced by its OrderID.
//
// Key business rules:
//   - Deliveries are only created for orders in the Fulfilled status
//     (the gate lives in the application workflow)
//   - Delivery date and tracking ID are optional
//   - The status is a free-form tag defaulting to "Scheduled"; updates
//     overwrite unconditionally
package delivery
