// Package guard provides the constructor guard used by value objects, entities,
// commands and queries to tell a constructed value from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a private
// field, set it with NewConstructorGuard inside the constructor and call Validate from
// the owner's Validate method.
//
// Example:
//
//	var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle")
//
//	type Vehicle struct {
//	    number int
//	    guard  guard.ConstructorGuard
//	}
//
//	func (v *Vehicle) Validate() error {
//	    return v.guard.Validate(ErrVehicleIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
