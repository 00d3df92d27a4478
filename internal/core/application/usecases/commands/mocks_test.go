package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSystemRepository struct{ mock.Mock }

func (m *MockSystemRepository) Get(ctx context.Context) (*logistics.System, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.System), args.Error(1)
}

func (m *MockSystemRepository) Save(ctx context.Context, system *logistics.System) error {
	args := m.Called(ctx, system)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SystemRepository() ports.SystemRepository {
	args := m.Called()
	return args.Get(0).(ports.SystemRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDispatchMetrics struct{ mock.Mock }

func (m *MockDispatchMetrics) OrderPlaced() { m.Called() }
func (m *MockDispatchMetrics) OrderRejected() { m.Called() }
func (m *MockDispatchMetrics) DeliveryCompleted() { m.Called() }
func (m *MockDispatchMetrics) VehicleAdded() { m.Called() }
func (m *MockDispatchMetrics) FleetChanged(available, busy int) {
	m.Called(available, busy)
}

// setupUoW wires a factory that hands out a single unit of work.
func setupUoW() (*MockUoWFactory, *MockUoW, *MockSystemRepository) {
	repo := new(MockSystemRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}
