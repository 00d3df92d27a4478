// Package memory keeps the dispatch registry of the running session in process memory
// and provides the Unit of Work over it.
//
// A transaction holds the store exclusively from Begin until Commit or Rollback, so
// every command sees and leaves a consistent registry. Registry operations are
// all-or-nothing, which is why Rollback only releases the store and restores nothing.
//
// Usage:
//
//	store, _ := memory.NewStore(system)
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	system, err := uow.SystemRepository().Get(ctx)
//	// ... change the registry
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/core/ports"
)

var (
	// ErrNoActiveTransaction is returned by Commit, Rollback and repository calls made
	// outside Begin.
	ErrNoActiveTransaction = errors.New("no active transaction")
)

// Store holds the registry and serialises access to it.
type Store struct {
	sem    chan struct{}
	system *logistics.System
}

// NewStore creates a store around a constructed registry.
func NewStore(system *logistics.System) (*Store, error) {
	if err := system.Validate(); err != nil {
		return nil, err
	}

	return &Store{
		sem:    make(chan struct{}, 1),
		system: system,
	}, nil
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

// UnitOfWorkFactory creates UnitOfWork instances over one store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. Instances are not meant to be shared between
// goroutines; create one per operation.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork is one exclusive session over the store.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin waits until the store is free or ctx is done.
// Calling Begin on an active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	return nil
}

// Commit keeps the changes and releases the store.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return uow.finish()
}

// Rollback releases the store. Calling it after Commit returns ErrNoActiveTransaction,
// which deferred calls ignore.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return uow.finish()
}

// SystemRepository returns the repository bound to this unit of work.
func (uow *UnitOfWork) SystemRepository() ports.SystemRepository {
	return &SystemRepository{uow: uow}
}

func (uow *UnitOfWork) finish() error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.active = false
	uow.store.release()
	return nil
}
