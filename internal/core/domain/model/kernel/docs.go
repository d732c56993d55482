// Package kernel provides core domain primitives for the supply-chain system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes the identifier value objects:
//   - ProductID, LocationID: caller-supplied keys, unique across their registries
//   - OrderID, DeliveryID: sequential identifiers ("ORD-<n>", "DEL-<n>") generated
//     from a monotonic counter owned by the application; never reused
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and safe for
// concurrent use, and aggregates reference each other through them rather than
// through shared pointers.
package kernel
