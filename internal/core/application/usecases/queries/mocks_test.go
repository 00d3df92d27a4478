package queries_test

import (
	"context"

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

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) SystemRepository() ports.SystemRepository {
	args := m.Called()
	return args.Get(0).(ports.SystemRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

// readOnly expects one read transaction over system: begin, get, rollback.
func readOnly(ctx context.Context, system *logistics.System) (*MockUnitOfWorkFactory, *MockUnitOfWork) {
	repo := new(MockSystemRepository)
	uow := new(MockUnitOfWork)
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SystemRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(system, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return factory, uow
}
