package commands

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAddVehicleCommandIsNotConstructed = errors.New(
		"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
	)
)

// AddVehicleCommand represents a request to extend the fleet with one available vehicle.
// Vehicle numbers are not required to be unique.
//
// Example:
//
//	cmd, err := NewAddVehicleCommand(12)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand rejects negative numbers.
func NewAddVehicleCommand(number int) (AddVehicleCommand, error) {
	command := AddVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setNumber(number); err != nil {
		return AddVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// Number returns the number of the new vehicle.
func (c AddVehicleCommand) Number() int {
	return c.number
}

func (c *AddVehicleCommand) setNumber(number int) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is negative", number))
	}

	c.number = number
	return nil
}
