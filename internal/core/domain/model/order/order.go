package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer request to deliver a list of items to a location.
//
// Order follows these invariants:
//   - The id is assigned once, at construction, and is never negative
//   - The location is a constructed kernel.Location
//   - Items are copied at construction and never change afterwards
//   - A vehicle is bound iff the status is Assigned or Completed
//
// The order does not own its vehicle: the pointer is shared with the registry fleet.
type Order struct {
	// id is the registry-issued identifier
	id int

	// userName is the name of the requester
	userName string

	// location is the delivery destination
	location kernel.Location

	// items are the delivered line items, possibly empty
	items []Item

	// vehicle is the bound vehicle (nil until placed)
	vehicle *vehicle.Vehicle

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an order in Created status with no vehicle.
//
// Parameters:
//   - id: identifier issued by the dispatch registry (must not be negative)
//   - userName: name of the requester
//   - location: delivery destination (must be constructed)
//   - items: line items, copied; every item must be constructed
//
// Example:
//
//	location, _ := kernel.NewLocation("Lviv", 2)
//	item, _ := order.NewItem("Arduino", decimal.NewFromInt(200))
//	o, err := order.NewOrder(0, "Bohdan", location, []order.Item{item})
func NewOrder(id int, userName string, location kernel.Location, items []Item) (*Order, error) {
	order := &Order{
		userName:      userName,
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setLocation(location),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order id.
func (o *Order) ID() int {
	return o.id
}

// UserName returns the name of the requester.
func (o *Order) UserName() string {
	return o.userName
}

// Location returns the delivery destination.
func (o *Order) Location() kernel.Location {
	return o.location
}

// Items returns a copy of the order items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Vehicle returns the bound vehicle, or nil if the order was not placed.
func (o *Order) Vehicle() *vehicle.Vehicle {
	return o.vehicle
}

// Amount returns the total price of all items. An order without items costs 0.
func (o *Order) Amount() kernel.Price {
	total := kernel.ZeroPrice()
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	return total
}

// ValidateAssign checks that the order can still be bound to a vehicle.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign binds the vehicle and moves the order to Assigned.
//
// Only the binding is recorded here; marking the vehicle as busy is the
// dispatcher's job, see services.OrderDispatcher.
func (o *Order) Assign(v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.vehicle = v
	return nil
}

// Complete marks the order as delivered. The order must be Assigned.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// String describes the order for listings, e.g.
// "The order #0 by Bohdan to city Lviv, postoffice 2. The item is Arduino (200 UAH)."
func (o *Order) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The order #%d by %s to city %s, postoffice %d.",
		o.id, o.userName, o.location.City(), o.location.Postoffice())

	switch len(o.items) {
	case 0:
	case 1:
		fmt.Fprintf(&sb, " The item is %s.", o.items[0])
	default:
		names := make([]string, 0, len(o.items))
		for _, item := range o.items {
			names = append(names, item.String())
		}
		fmt.Fprintf(&sb, " The items are %s.", strings.Join(names, ", "))
	}

	return sb.String()
}

func (o *Order) setID(id int) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is negative", id))
	}
	o.id = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}
