// Package errs provides the typed errors shared by the logistics application.
//
// Every error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// The sentinels are what the presentation layers switch on: ErrValueIsInvalid and
// ErrValueIsRequired become "invalid argument" responses, ErrObjectNotFound becomes
// "not found".
package errs
