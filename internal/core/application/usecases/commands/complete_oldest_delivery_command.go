package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrCompleteOldestDeliveryCommandIsNotConstructed = errors.New(
		"CompleteOldestDeliveryCommand must be created via NewCompleteOldestDeliveryCommand constructor",
	)
)

// CompleteOldestDeliveryCommand completes the earliest placed order that is still
// Assigned. It drives the scheduled delivery completion.
type CompleteOldestDeliveryCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteOldestDeliveryCommand creates the parameterless command.
func NewCompleteOldestDeliveryCommand() CompleteOldestDeliveryCommand {
	return CompleteOldestDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CompleteOldestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOldestDeliveryCommandIsNotConstructed)
}
