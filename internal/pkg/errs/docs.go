// Package errs provides standardized error types for the shipping cost service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the following error types:
//   - ValueIsRequiredError: a required value (e.g. a pricing strategy) is missing
//   - ValueIsInvalidError: a value cannot be interpreted (e.g. an unknown strategy kind)
//   - ValueIsOutOfRangeError: a numeric value is outside its accepted bounds
//   - ObjectNotFoundError: an aggregate cannot be found in storage
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// ValueIsRequiredError is the invalid-argument error of the domain model:
// constructing an order or replacing its strategy without a strategy returns it.
package errs
