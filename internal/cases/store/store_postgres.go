package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"ethub/internal/cases/models"
	"ethub/pkg/platform/sentinel"
	"ethub/pkg/platform/tx"
	"ethub/pkg/requestcontext"
)

// Schema creates the case table used by PostgresStore.
const Schema = `
CREATE TABLE IF NOT EXISTS cases (
	id         TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore persists case records as JSONB documents.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed case store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the table if it does not exist. It joins a transaction
// carried by ctx.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate cases: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, caseID string) (*models.Case, error) {
	var raw []byte
	err := tx.QuerierFrom(ctx, s.db).
		QueryRowContext(ctx, `SELECT data FROM cases WHERE id = $1`, caseID).
		Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find case by id: %w", err)
	}
	var c models.Case
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode case: %w", err)
	}
	return &c, nil
}

func (s *PostgresStore) Save(ctx context.Context, c *models.Case) error {
	c.LastModified = requestcontext.Now(ctx)
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode case: %w", err)
	}
	_, err = tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO cases (id, data, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		c.ID, raw, c.LastModified)
	if err != nil {
		return fmt.Errorf("save case: %w", err)
	}
	return nil
}
