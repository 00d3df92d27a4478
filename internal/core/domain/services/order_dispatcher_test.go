package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id int) *order.Order {
	t.Helper()
	location, err := kernel.NewLocation("Lviv", 2)
	require.NoError(t, err)
	item, err := order.NewItem("Arduino", decimal.NewFromInt(200))
	require.NoError(t, err)
	o, err := order.NewOrder(id, "Bohdan", location, []order.Item{item})
	require.NoError(t, err)
	return o
}

func newVehicle(t *testing.T, number int, available bool) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(number)
	require.NoError(t, err)
	if !available {
		require.NoError(t, v.TakeOrder(1000+number))
	}
	return v
}

func TestOrderDispatcher_Dispatch(t *testing.T) {
	t.Run("should dispatch to first available vehicle by position", func(t *testing.T) {
		v1 := newVehicle(t, 1, true)
		v2 := newVehicle(t, 2, false)
		v3 := newVehicle(t, 3, true)
		o := newOrder(t, 0)

		result, err := services.NewOrderDispatcher().Dispatch(o, []*vehicle.Vehicle{v1, v2, v3})

		require.NoError(t, err)
		assert.Same(t, v1, result)
		assert.Same(t, v1, o.Vehicle())
		assert.Equal(t, order.Assigned, o.Status())
		assert.False(t, v1.IsAvailable())
		assert.True(t, v3.IsAvailable(), "v3 must stay untouched")
	})

	t.Run("should skip unavailable vehicles at the front", func(t *testing.T) {
		v1 := newVehicle(t, 1, false)
		v2 := newVehicle(t, 2, false)
		v3 := newVehicle(t, 3, true)
		o := newOrder(t, 0)

		result, err := services.NewOrderDispatcher().Dispatch(o, []*vehicle.Vehicle{v1, v2, v3})

		require.NoError(t, err)
		assert.Same(t, v3, result)
		carried, ok := v3.OrderID()
		assert.True(t, ok)
		assert.Equal(t, o.ID(), carried)
	})

	t.Run("should return error when no vehicles provided", func(t *testing.T) {
		o := newOrder(t, 0)

		result, err := services.NewOrderDispatcher().Dispatch(o, nil)

		require.ErrorIs(t, err, services.ErrNoVehicleAvailable)
		assert.Nil(t, result)
		assert.Equal(t, order.Created, o.Status())
	})

	t.Run("should leave state unchanged when all vehicles are busy", func(t *testing.T) {
		v1 := newVehicle(t, 1, false)
		v2 := newVehicle(t, 2, false)
		o := newOrder(t, 0)

		result, err := services.NewOrderDispatcher().Dispatch(o, []*vehicle.Vehicle{v1, v2})

		require.ErrorIs(t, err, services.ErrNoVehicleAvailable)
		assert.Nil(t, result)
		assert.Nil(t, o.Vehicle())
		assert.Equal(t, order.Created, o.Status())
		assert.False(t, v1.IsAvailable())
		assert.False(t, v2.IsAvailable())
	})

	t.Run("should return error when order is invalid", func(t *testing.T) {
		var invalidOrder *order.Order

		result, err := services.NewOrderDispatcher().Dispatch(invalidOrder, []*vehicle.Vehicle{newVehicle(t, 1, true)})

		assert.Nil(t, result)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should return error when order was already placed", func(t *testing.T) {
		v1 := newVehicle(t, 1, true)
		v2 := newVehicle(t, 2, true)
		o := newOrder(t, 0)
		_, err := services.NewOrderDispatcher().Dispatch(o, []*vehicle.Vehicle{v1, v2})
		require.NoError(t, err)

		result, err := services.NewOrderDispatcher().Dispatch(o, []*vehicle.Vehicle{v1, v2})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, result)
		assert.True(t, v2.IsAvailable())
	})

	t.Run("should return error for zero value vehicle in fleet", func(t *testing.T) {
		o := newOrder(t, 0)

		result, err := services.NewOrderDispatcher().Dispatch(o, []*vehicle.Vehicle{{}})

		require.ErrorIs(t, err, vehicle.ErrVehicleIsNotConstructed)
		assert.Nil(t, result)
	})
}
