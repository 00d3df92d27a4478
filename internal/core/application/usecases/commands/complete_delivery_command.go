package commands

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
		"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
	)
)

// CompleteDeliveryCommand marks an assigned order as delivered and releases its vehicle.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand rejects negative order ids.
func NewCompleteDeliveryCommand(orderID int) (CompleteDeliveryCommand, error) {
	command := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the id of the delivered order.
func (c CompleteDeliveryCommand) OrderID() int {
	return c.orderID
}

func (c *CompleteDeliveryCommand) setOrderID(orderID int) error {
	if orderID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("%d is negative", orderID))
	}

	c.orderID = orderID
	return nil
}
