package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// PlaceOrderCommandHandler builds an order with the next id and dispatches it to the
// first available vehicle.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, metrics)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoVehicleAvailable):
//	    log.Println("All vehicles are busy")
//	case err != nil:
//	    log.Printf("Placement failed: %v", err)
//	default:
//	    log.Printf("Your order number is %d.", orderID)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	metrics    ports.DispatchMetrics
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, metrics ports.DispatchMetrics) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle places the order and returns its id.
//
// When no vehicle is available it returns services.ErrNoVehicleAvailable together with
// the id the rejected order consumed. The transaction is still committed in that case:
// the id counter has advanced and the id is never handed out again.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (int, error) {
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

	o, err := system.NewOrder(command.UserName(), command.Location(), command.Items())
	if err != nil {
		return 0, err
	}

	placeErr := system.PlaceOrder(o)
	if placeErr != nil && !errors.Is(placeErr, services.ErrNoVehicleAvailable) {
		return 0, placeErr
	}

	if err = systemRepo.Save(ctx, system); err != nil {
		return 0, err
	}

	fleet := countFleet(system)
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if placeErr != nil {
		h.metrics.OrderRejected()
		return o.ID(), placeErr
	}

	h.metrics.OrderPlaced()
	h.metrics.FleetChanged(fleet.available, fleet.busy)
	return o.ID(), nil
}
