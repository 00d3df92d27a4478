package commands

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

// AddVehicleCommandHandler appends a new available vehicle to the fleet.
type AddVehicleCommandHandler struct {
	uowFactory UoWFactory
	metrics    ports.DispatchMetrics
}

// NewAddVehicleCommandHandler creates a handler for fleet extension.
func NewAddVehicleCommandHandler(uowFactory UoWFactory, metrics ports.DispatchMetrics) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle adds the vehicle at the end of the fleet, so it is picked last by first-fit.
func (h AddVehicleCommandHandler) Handle(ctx context.Context, command AddVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	v, err := vehicle.NewVehicle(command.Number())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = system.AddVehicle(v); err != nil {
		return err
	}

	if err = systemRepo.Save(ctx, system); err != nil {
		return err
	}

	fleet := countFleet(system)
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.VehicleAdded()
	h.metrics.FleetChanged(fleet.available, fleet.busy)
	return nil
}
