// Package errs provides standardized error types for the supply-chain application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one type per failure condition the application reports:
//   - ObjectNotFoundError: a referenced product, location, order, or delivery does not exist
//   - ObjectAlreadyExistsError: a registration reused an existing ID
//   - InvalidReferenceError: stock was added against an unregistered product/location pair
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify with errors.Is
//
// None of these conditions are fatal to the process; they are local, recoverable
// conditions surfaced to the caller, which makes partial-success behaviors
// (such as order placement with skipped line items) explicit and testable.
package errs
