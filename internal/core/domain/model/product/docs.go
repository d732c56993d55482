// Package product provides the Product aggregate for the supply-chain catalog.
//
// Key business rules:
//   - Products must have a valid unique identifier, name, and category
//   - The expiry date is optional
//   - Products are immutable once registered and are never deleted
//
// Other aggregates (inventory items, order line items) reference products by
// their ProductID rather than by shared pointers.
package product
