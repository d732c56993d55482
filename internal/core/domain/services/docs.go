// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the supply-chain system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StockAllocator: A domain service that allocates order line items against
//     distributed inventory using a first-fit, single-location rule
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
