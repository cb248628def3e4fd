// Package errs provides the standard error types shared by the laundry order service.
//
// Every type follows the same shape:
//   - a sentinel error (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New... and New...WithCause constructors
//   - Error() producing a single-line message and Unwrap() returning the sentinel
//
// Domain packages build on these types instead of ad-hoc fmt.Errorf strings so the
// HTTP adapter can classify failures without parsing messages.
package errs
