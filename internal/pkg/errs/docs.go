// Package errs provides the typed errors shared by the marketplace core.
//
// Every error type follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrInvalidTransition, ...) that Unwrap returns
//   - a struct carrying the details of the failure
//   - New... constructors, with a WithCause variant where a cause makes sense
//
// Callers classify errors with errors.Is against the sentinels. The HTTP adapter
// maps them to status codes; the core never deals with transport concerns.
//
// Kinds:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError (see IsValidation)
//   - ObjectNotFoundError
//   - InvalidTransitionError
//   - InsufficientBalanceError
//   - VersionConflictError
//   - ActionIsForbiddenError
//   - StoreError
package errs
