package vehicle

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using a zero-value Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrVehicleIsUnavailable is returned when a vehicle that already carries an order
	// is asked to take another one.
	ErrVehicleIsUnavailable = errors.New("vehicle is unavailable")
	// ErrOrderIsNotCarried is returned when completing an order the vehicle does not carry.
	ErrOrderIsNotCarried = errors.New("order is not carried by the vehicle")
)

// Vehicle is a delivery unit of the fleet.
//
// Business rules:
//   - The number is caller supplied and must not be negative
//   - A new vehicle is available
//   - An unavailable vehicle carries exactly one order, identified by its order id
//
// Vehicles are shared by pointer between the fleet and the orders bound to them, so a
// state change made through the registry is visible to every holder.
type Vehicle struct {
	// number identifies the vehicle for the operator
	number int
	// orderID is the id of the carried order, nil while available
	orderID *int
	guard   guard.ConstructorGuard
}

// NewVehicle creates an available vehicle with the given number.
//
// Example:
//
//	v, err := vehicle.NewVehicle(10)
//	if err != nil {
//	    // negative number
//	}
//	v.IsAvailable() // true
func NewVehicle(number int) (*Vehicle, error) {
	v := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := v.setNumber(number); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the vehicle was created through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// Number returns the vehicle number.
func (v *Vehicle) Number() int {
	return v.number
}

// IsAvailable reports whether the vehicle can take an order.
func (v *Vehicle) IsAvailable() bool {
	return v.orderID == nil
}

// OrderID returns the id of the carried order and true, or 0 and false while available.
func (v *Vehicle) OrderID() (int, bool) {
	if v.orderID == nil {
		return 0, false
	}
	return *v.orderID, true
}

// TakeOrder binds the vehicle to an order and makes it unavailable.
// Returns ErrVehicleIsUnavailable if the vehicle already carries an order.
func (v *Vehicle) TakeOrder(orderID int) error {
	if err := v.Validate(); err != nil {
		return err
	}

	if !v.IsAvailable() {
		return ErrVehicleIsUnavailable
	}

	v.orderID = &orderID
	return nil
}

// CompleteOrder releases the vehicle after the carried order was delivered.
// Returns ErrOrderIsNotCarried if orderID is not the carried order.
func (v *Vehicle) CompleteOrder(orderID int) error {
	if err := v.Validate(); err != nil {
		return err
	}

	if v.orderID == nil || *v.orderID != orderID {
		return fmt.Errorf("%w: vehicle %d, order %d", ErrOrderIsNotCarried, v.number, orderID)
	}

	v.orderID = nil
	return nil
}

func (v *Vehicle) setNumber(number int) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is negative", number))
	}

	v.number = number
	return nil
}
