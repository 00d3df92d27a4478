package logistics

import (
	"errors"
	"fmt"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrSystemIsNotConstructed is returned when a zero-value System is used.
var ErrSystemIsNotConstructed = errors.New("System must be created via NewSystem constructor")

// Tracking is the answer to a tracking request: which order, where it goes and what
// it costs.
type Tracking struct {
	OrderID int
	City    string
	Amount  kernel.Price
}

// System is the dispatch registry of one session.
//
// Example usage:
//
//	sys, _ := logistics.NewSystemWithFleet(1, 10)
//	location, _ := kernel.NewLocation("Lviv", 2)
//	o, _ := sys.NewOrder("Bohdan", location, items)
//	if err := sys.PlaceOrder(o); errors.Is(err, services.ErrNoVehicleAvailable) {
//	    // the order is dropped, its id is not reused
//	}
//	tracking, err := sys.TrackOrder(o.ID())
type System struct {
	// sessionID labels the session in logs and metrics
	sessionID kernel.UUID
	// vehicles is the fleet in selection order
	vehicles []*vehicle.Vehicle
	// orders is the order book in placement order
	orders []*order.Order
	// nextOrderID is the id the next constructed order receives
	nextOrderID int
	// issued holds orders built by NewOrder that were not placed or rejected yet
	issued     map[int]*order.Order
	dispatcher services.OrderDispatcher
	guard      guard.ConstructorGuard
}

// NewSystem creates a registry over the given fleet. The slice is copied, so appending
// to the caller's slice later does not change the fleet, while the vehicles stay shared.
func NewSystem(vehicles []*vehicle.Vehicle) (*System, error) {
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	return &System{
		sessionID:  kernel.NewUUID(),
		vehicles:   slices.Clone(vehicles),
		orders:     make([]*order.Order, 0),
		issued:     make(map[int]*order.Order),
		dispatcher: services.NewOrderDispatcher(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewSystemWithFleet creates a registry with one available vehicle per number.
func NewSystemWithFleet(numbers ...int) (*System, error) {
	fleet := make([]*vehicle.Vehicle, 0, len(numbers))
	var joined error
	for _, number := range numbers {
		v, err := vehicle.NewVehicle(number)
		if err != nil {
			joined = errors.Join(joined, err)
			continue
		}
		fleet = append(fleet, v)
	}
	if joined != nil {
		return nil, joined
	}

	return NewSystem(fleet)
}

// Validate ensures the System was created through NewSystem.
func (s *System) Validate() error {
	if s == nil {
		return ErrSystemIsNotConstructed
	}
	return s.guard.Validate(ErrSystemIsNotConstructed)
}

// SessionID returns the identifier of this registry instance.
func (s *System) SessionID() kernel.UUID {
	return s.sessionID
}

// NewOrder builds an order with the next id. The counter advances only when the order
// could be built, and it is not rolled back if the order is later rejected.
func (s *System) NewOrder(userName string, location kernel.Location, items []order.Item) (*order.Order, error) {
	o, err := order.NewOrder(s.nextOrderID, userName, location, items)
	if err != nil {
		return nil, err
	}

	s.nextOrderID++
	s.issued[o.ID()] = o
	return o, nil
}

// PlaceOrder assigns the first available vehicle to the order and appends the order
// to the order book. When no vehicle is available it returns
// services.ErrNoVehicleAvailable and changes nothing else; the order is dropped.
//
// Only orders issued by this registry's NewOrder are accepted, and each only once.
func (s *System) PlaceOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if issued, ok := s.issued[o.ID()]; !ok || issued != o {
		return errs.NewValueIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("order #%d was not issued by this registry or was already placed", o.ID()),
		)
	}

	_, err := s.dispatcher.Dispatch(o, s.vehicles)
	if err != nil && !errors.Is(err, services.ErrNoVehicleAvailable) {
		return err
	}

	delete(s.issued, o.ID())
	if err != nil {
		return err
	}

	s.orders = append(s.orders, o)
	return nil
}

// TrackOrder looks up the placed order with the given id.
// Returns an errs.ObjectNotFoundError when there is none.
func (s *System) TrackOrder(orderID int) (Tracking, error) {
	o, err := s.findOrder(orderID)
	if err != nil {
		return Tracking{}, err
	}

	return Tracking{
		OrderID: o.ID(),
		City:    o.Location().City(),
		Amount:  o.Amount(),
	}, nil
}

// CompleteDelivery marks an Assigned order as Completed and makes its vehicle available
// again. The order stays in the order book. On failure neither the order nor the
// vehicle is changed.
func (s *System) CompleteDelivery(orderID int) error {
	o, err := s.findOrder(orderID)
	if err != nil {
		return err
	}

	if _, err = o.Status().Complete(); err != nil {
		return err
	}

	if err = o.Vehicle().CompleteOrder(o.ID()); err != nil {
		return err
	}

	return o.Complete()
}

// AddVehicle appends a vehicle to the fleet. Numbers are not checked for uniqueness.
func (s *System) AddVehicle(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	s.vehicles = append(s.vehicles, v)
	return nil
}

// Vehicles returns the fleet in selection order. The slice is a copy.
func (s *System) Vehicles() []*vehicle.Vehicle {
	return slices.Clone(s.vehicles)
}

// Orders returns the order book in placement order. The slice is a copy.
func (s *System) Orders() []*order.Order {
	return slices.Clone(s.orders)
}

// NextOrderID returns the id the next constructed order will receive.
func (s *System) NextOrderID() int {
	return s.nextOrderID
}

func (s *System) findOrder(orderID int) (*order.Order, error) {
	for _, o := range s.orders {
		if o.ID() == orderID {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderID", orderID)
}
