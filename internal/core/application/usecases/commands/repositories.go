// Package commands contains business operations that modify the dispatch registry.
// All commands follow a consistent pattern: validation, transaction management and
// a single registry operation.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SystemRepoFactory provides access to the registry within a transaction.
	SystemRepoFactory interface {
		SystemRepository() ports.SystemRepository
	}

	// UoW manages a transaction over the registry.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   system, err := uow.SystemRepository().Get(ctx)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		SystemRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
