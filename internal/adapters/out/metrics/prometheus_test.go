package metrics_test

import (
	"strings"
	"testing"

	"logistics/internal/adapters/out/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromDispatchMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewPromDispatchMetrics(reg)
	require.NoError(t, err)

	m.OrderPlaced()
	m.OrderPlaced()
	m.OrderRejected()
	m.DeliveryCompleted()
	m.VehicleAdded()
	m.FleetChanged(3, 1)

	expected := `
# HELP logistics_orders_total Placement attempts by outcome
# TYPE logistics_orders_total counter
logistics_orders_total{outcome="no_vehicle"} 1
logistics_orders_total{outcome="placed"} 2
# HELP logistics_fleet_vehicles Vehicles in the fleet by state
# TYPE logistics_fleet_vehicles gauge
logistics_fleet_vehicles{state="available"} 3
logistics_fleet_vehicles{state="busy"} 1
# HELP logistics_deliveries_completed_total Deliveries completed and vehicles released
# TYPE logistics_deliveries_completed_total counter
logistics_deliveries_completed_total 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"logistics_orders_total", "logistics_fleet_vehicles", "logistics_deliveries_completed_total")
	require.NoError(t, err)
}

func TestNewPromDispatchMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := metrics.NewPromDispatchMetrics(reg)
	require.NoError(t, err)
	second, err := metrics.NewPromDispatchMetrics(reg)
	require.NoError(t, err)

	first.VehicleAdded()
	second.VehicleAdded()

	count, err := testutil.GatherAndCount(reg, "logistics_vehicles_added_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := `
# HELP logistics_vehicles_added_total Vehicles added to the fleet after start
# TYPE logistics_vehicles_added_total counter
logistics_vehicles_added_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "logistics_vehicles_added_total"))
}
