// Package services provides domain services that coordinate several entities of the
// logistics domain.
//
// The package includes:
//   - OrderDispatcher: first-fit assignment of an available vehicle to an order
package services
