package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

var (
	ErrNoActiveDelivery = errors.New("no active delivery")
)

// CompleteOldestDeliveryCommandHandler completes the first order of the order book that
// is still Assigned.
type CompleteOldestDeliveryCommandHandler struct {
	uowFactory UoWFactory
	metrics    ports.DispatchMetrics
}

// NewCompleteOldestDeliveryCommandHandler creates the handler used by the delivery
// completion job.
func NewCompleteOldestDeliveryCommandHandler(
	uowFactory UoWFactory,
	metrics ports.DispatchMetrics,
) CompleteOldestDeliveryCommandHandler {
	return CompleteOldestDeliveryCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle returns the id of the completed order, or ErrNoActiveDelivery when every
// vehicle is idle.
func (h CompleteOldestDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CompleteOldestDeliveryCommand,
) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	systemRepo := uow.SystemRepository()
	system, err := systemRepo.Get(ctx)
	if err != nil {
		return 0, err
	}

	var oldest *order.Order
	for _, o := range system.Orders() {
		if o.Status() == order.Assigned {
			oldest = o
			break
		}
	}
	if oldest == nil {
		return 0, ErrNoActiveDelivery
	}

	if err = system.CompleteDelivery(oldest.ID()); err != nil {
		return 0, err
	}

	if err = systemRepo.Save(ctx, system); err != nil {
		return 0, err
	}

	fleet := countFleet(system)
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.metrics.DeliveryCompleted()
	h.metrics.FleetChanged(fleet.available, fleet.busy)
	return oldest.ID(), nil
}
