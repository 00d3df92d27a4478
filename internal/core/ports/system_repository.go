// Package ports defines the contracts between the application layer and the adapters
// that store the dispatch registry and observe dispatch outcomes.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/logistics"
)

// SystemRepository gives access to the dispatch registry of the running session.
type SystemRepository interface {
	// Get returns the registry. Changes made to it inside a unit of work become
	// visible to others once the unit of work is committed.
	Get(ctx context.Context) (*logistics.System, error)

	// Save replaces the stored registry. The registry must be valid.
	Save(ctx context.Context, system *logistics.System) error
}
