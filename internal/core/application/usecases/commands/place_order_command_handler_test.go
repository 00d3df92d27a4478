package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPlaceOrderCommand(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand("Bohdan", "Lviv", 2, []commands.OrderLine{
		{Name: "Arduino", Price: decimal.NewFromInt(200)},
	})
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	system, _ := logistics.NewSystemWithFleet(1, 10)
	factory, uow, repo := setupUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SystemRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(system, nil).Once(),
		repo.On("Save", ctx, system).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics := new(MockDispatchMetrics)
	metrics.On("OrderPlaced").Once()
	metrics.On("FleetChanged", 1, 1).Once()

	// When
	h := commands.NewPlaceOrderCommandHandler(factory, metrics)
	orderID, err := h.Handle(ctx, newPlaceOrderCommand(t))

	// Then
	require.NoError(t, err)
	assert.Equal(t, 0, orderID)
	tracking, err := system.TrackOrder(orderID)
	require.NoError(t, err)
	assert.Equal(t, "Lviv", tracking.City)
	assert.False(t, system.Vehicles()[0].IsAvailable())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NoVehicleCommitsConsumedID(t *testing.T) {
	// Given
	ctx := t.Context()
	system, _ := logistics.NewSystemWithFleet()
	factory, uow, repo := setupUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SystemRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(system, nil).Once(),
		repo.On("Save", ctx, system).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics := new(MockDispatchMetrics)
	metrics.On("OrderRejected").Once()

	// When
	h := commands.NewPlaceOrderCommandHandler(factory, metrics)
	orderID, err := h.Handle(ctx, newPlaceOrderCommand(t))

	// Then
	require.ErrorIs(t, err, services.ErrNoVehicleAvailable)
	assert.Equal(t, 0, orderID)
	assert.Equal(t, 1, system.NextOrderID())
	assert.Empty(t, system.Orders())
	uow.AssertExpectations(t)
	metrics.AssertExpectations(t)
	metrics.AssertNotCalled(t, "OrderPlaced")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockDispatchMetrics))
	_, err := h.Handle(ctx, commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	factory, uow, _ := setupUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockDispatchMetrics))
	_, err := h.Handle(ctx, newPlaceOrderCommand(t))

	require.EqualError(t, err, "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	factory, uow, repo := setupUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SystemRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(nil, errors.New("get error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockDispatchMetrics))
	_, err := h.Handle(ctx, newPlaceOrderCommand(t))

	require.EqualError(t, err, "get error")
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	system, _ := logistics.NewSystemWithFleet(1)
	factory, uow, repo := setupUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SystemRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(system, nil).Once(),
		repo.On("Save", ctx, system).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	metrics := new(MockDispatchMetrics)

	h := commands.NewPlaceOrderCommandHandler(factory, metrics)
	_, err := h.Handle(ctx, newPlaceOrderCommand(t))

	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
	metrics.AssertNotCalled(t, "OrderPlaced")
}
