package services

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// ErrNoVehicleAvailable is returned when every vehicle of the fleet is busy or the
// fleet is empty. It is a recoverable outcome: the caller may retry once a delivery
// was completed or a vehicle was added.
var ErrNoVehicleAvailable = errors.New("no available vehicle to deliver an order")

// OrderDispatcher assigns orders to vehicles using first-fit selection: the first
// available vehicle by fleet position wins. Selection is deterministic and needs no
// tie-break.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	assigned, err := dispatcher.Dispatch(o, fleet)
//	if errors.Is(err, services.ErrNoVehicleAvailable) {
//	    // inform the operator, nothing was changed
//	    return
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects the first available vehicle, binds it to the order and marks it busy.
//
// Returns:
//   - *vehicle.Vehicle: the vehicle now carrying the order
//   - error: ErrNoVehicleAvailable, or a validation error for the order or a vehicle
//
// Nothing is mutated unless the whole assignment succeeds.
func (d OrderDispatcher) Dispatch(o *order.Order, fleet []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	selected, err := d.findFirstAvailable(fleet)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(selected); err != nil {
		return nil, err
	}

	if err = selected.TakeOrder(o.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

// findFirstAvailable scans the fleet in order and returns the first available vehicle.
func (d OrderDispatcher) findFirstAvailable(fleet []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	for _, v := range fleet {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if v.IsAvailable() {
			return v, nil
		}
	}

	return nil, ErrNoVehicleAvailable
}
