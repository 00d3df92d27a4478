package memory

import (
	"context"

	"logistics/internal/core/domain/model/logistics"
)

// SystemRepository reads and replaces the registry of a store inside a unit of work.
type SystemRepository struct {
	uow *UnitOfWork
}

// Get returns the registry. Fails with ErrNoActiveTransaction outside Begin.
func (r *SystemRepository) Get(_ context.Context) (*logistics.System, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}
	return r.uow.store.system, nil
}

// Save replaces the registry with a constructed one.
func (r *SystemRepository) Save(_ context.Context, system *logistics.System) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	if err := system.Validate(); err != nil {
		return err
	}

	r.uow.store.system = system
	return nil
}
