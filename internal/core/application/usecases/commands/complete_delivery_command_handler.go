package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errors.New("no such order")
)

// CompleteDeliveryCommandHandler finishes the delivery of one order.
//
// Example:
//
//	cmd, _ := NewCompleteDeliveryCommand(3)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // unknown id
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // the order is not Assigned
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	metrics    ports.DispatchMetrics
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	metrics ports.DispatchMetrics,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle completes the order and releases its vehicle.
// Returns ErrOrderNotFound for an id that was never placed.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	systemRepo := uow.SystemRepository()
	system, err := systemRepo.Get(ctx)
	if err != nil {
		return err
	}

	err = system.CompleteDelivery(command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	if err != nil {
		return err
	}

	if err = systemRepo.Save(ctx, system); err != nil {
		return err
	}

	fleet := countFleet(system)
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.DeliveryCompleted()
	h.metrics.FleetChanged(fleet.available, fleet.busy)
	return nil
}
