package queries

import (
	"context"

	"logistics/internal/core/domain/model/logistics"
	"logistics/internal/core/ports"
)

// readSystem opens a unit of work for reading. The caller must call release once it
// is done with the registry; nothing is committed.
func readSystem(ctx context.Context, factory ports.UnitOfWorkFactory) (*logistics.System, func(), error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	release := func() {
		_ = uow.Rollback(ctx)
	}

	system, err := uow.SystemRepository().Get(ctx)
	if err != nil {
		release()
		return nil, nil, err
	}

	return system, release, nil
}
