// Package errs holds the error vocabulary shared by the domain, the use cases and
// the adapters of the ice cream order service.
//
// Every error type wraps one sentinel so callers can classify failures with
// errors.Is instead of matching messages:
//   - ValueIsRequiredError unwraps to ErrValueIsRequired
//   - ValueIsInvalidError unwraps to ErrValueIsInvalid
//   - ValueIsOutOfRangeError unwraps to ErrValueIsOutOfRange
//   - ObjectNotFoundError unwraps to ErrObjectNotFound
//
// IsValidation treats the three value errors as one "bad input" class and looks
// through errors.Join trees, so an order with several broken fields is still
// reported as a single 400. IsNotFound is the 404 counterpart.
package errs
