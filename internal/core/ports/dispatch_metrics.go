package ports

// DispatchMetrics receives dispatch outcomes from the command handlers.
type DispatchMetrics interface {
	OrderPlaced()
	OrderRejected()
	DeliveryCompleted()
	VehicleAdded()
	// FleetChanged reports the number of available and busy vehicles after a change.
	FleetChanged(available, busy int)
}

// NopDispatchMetrics discards everything.
type NopDispatchMetrics struct{}

func (NopDispatchMetrics) OrderPlaced() {}
func (NopDispatchMetrics) OrderRejected() {}
func (NopDispatchMetrics) DeliveryCompleted() {}
func (NopDispatchMetrics) VehicleAdded() {}
func (NopDispatchMetrics) FleetChanged(_, _ int) {}
