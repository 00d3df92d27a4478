package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction. Other units of work block until it ends.
	Begin(ctx context.Context) error

	// Commit ends the current transaction and keeps its changes.
	// Returns error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback ends the current transaction.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// SystemRepository returns a SystemRepository bound to the current transaction.
	SystemRepository() SystemRepository
}
