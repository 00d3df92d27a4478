// Package metrics records dispatch outcomes in Prometheus collectors.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "logistics"

// PromDispatchMetrics implements ports.DispatchMetrics.
type PromDispatchMetrics struct {
	orders     *prometheus.CounterVec
	deliveries prometheus.Counter
	vehicles   prometheus.Counter
	fleet      *prometheus.GaugeVec
}

// NewPromDispatchMetrics registers the collectors on reg, or on the default registerer
// when reg is nil. Collectors that are already registered are reused.
func NewPromDispatchMetrics(reg prometheus.Registerer) (*PromDispatchMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	orders, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_total",
		Help:      "Placement attempts by outcome",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	deliveries, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliveries_completed_total",
		Help:      "Deliveries completed and vehicles released",
	}))
	if err != nil {
		return nil, err
	}

	vehicles, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vehicles_added_total",
		Help:      "Vehicles added to the fleet after start",
	}))
	if err != nil {
		return nil, err
	}

	fleet, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fleet_vehicles",
		Help:      "Vehicles in the fleet by state",
	}, []string{"state"}))
	if err != nil {
		return nil, err
	}

	return &PromDispatchMetrics{
		orders:     orders,
		deliveries: deliveries,
		vehicles:   vehicles,
		fleet:      fleet,
	}, nil
}

func (m *PromDispatchMetrics) OrderPlaced() {
	m.orders.WithLabelValues("placed").Inc()
}

func (m *PromDispatchMetrics) OrderRejected() {
	m.orders.WithLabelValues("no_vehicle").Inc()
}

func (m *PromDispatchMetrics) DeliveryCompleted() {
	m.deliveries.Inc()
}

func (m *PromDispatchMetrics) VehicleAdded() {
	m.vehicles.Inc()
}

func (m *PromDispatchMetrics) FleetChanged(available, busy int) {
	m.fleet.WithLabelValues("available").Set(float64(available))
	m.fleet.WithLabelValues("busy").Set(float64(busy))
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return collector, err
	}
	return collector, nil
}
