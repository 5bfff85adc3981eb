// Package store persists case records. The in-memory and Postgres stores stand
// in for the remote case API; RedisCache fronts either of them.
package store

import (
	"context"

	"ethub/internal/cases/models"
)

// Store loads and saves case records. FindByID returns sentinel.ErrNotFound
// for unknown IDs.
type Store interface {
	FindByID(ctx context.Context, caseID string) (*models.Case, error)
	Save(ctx context.Context, c *models.Case) error
}
