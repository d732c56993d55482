// Package location provides the Location aggregate: a node in the supply
// chain where stock is held (farm, warehouse, retailer).
//
// Key business rules:
//   - Locations must have a valid unique identifier, name, and type tag
//   - The type tag is free-form; the model does not restrict its values
//   - Locations are immutable once registered and are never deleted
package location
