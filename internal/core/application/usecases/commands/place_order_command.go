package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// OrderLine is one requested item of a PlaceOrderCommand.
type OrderLine struct {
	Name  string
	Price decimal.Decimal
}

// PlaceOrderCommand represents a customer request to ship items to a post office.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("Bohdan", "Lviv", 2, []OrderLine{
//	    {Name: "Arduino", Price: decimal.NewFromInt(200)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoVehicleAvailable) {
//	    fmt.Println("There is no available vehicle to deliver an order.")
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userName string
	location kernel.Location
	items    []order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the destination and every line. All failures are
// reported together. Empty names and cities are accepted.
func NewPlaceOrderCommand(userName, city string, postoffice int, lines []OrderLine) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		userName: userName,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLocation(city, postoffice),
		command.setItems(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserName() string {
	return c.userName
}

func (c PlaceOrderCommand) Location() kernel.Location {
	return c.location
}

func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

func (c *PlaceOrderCommand) setLocation(city string, postoffice int) error {
	location, err := kernel.NewLocation(city, postoffice)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *PlaceOrderCommand) setItems(lines []OrderLine) error {
	items := make([]order.Item, 0, len(lines))
	var joined error
	for i, line := range lines {
		item, err := order.NewItem(line.Name, line.Price)
		if err != nil {
			joined = errors.Join(joined, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		items = append(items, item)
	}
	if joined != nil {
		return joined
	}

	c.items = items
	return nil
}
