package audit

import (
	"context"
	"database/sql"
	"fmt"

	"ethub/pkg/platform/tx"
)

// Schema creates the audit table used by PostgresStore.
const Schema = `
CREATE TABLE IF NOT EXISTS hub_audit_events (
	id          BIGSERIAL PRIMARY KEY,
	occurred_at TIMESTAMPTZ NOT NULL,
	case_id     TEXT NOT NULL,
	user_id     TEXT NOT NULL,
	flow        TEXT NOT NULL,
	link        TEXT NOT NULL,
	from_status TEXT NOT NULL,
	to_status   TEXT NOT NULL,
	action      TEXT NOT NULL,
	request_id  TEXT NOT NULL,
	device      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS hub_audit_events_case_idx ON hub_audit_events (case_id, occurred_at)`

// PostgresStore appends audit events to a table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate audit: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, e Event) error {
	_, err := tx.QuerierFrom(ctx, s.db).ExecContext(ctx, `
		INSERT INTO hub_audit_events
			(occurred_at, case_id, user_id, flow, link, from_status, to_status, action, request_id, device)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.Timestamp, e.CaseID, e.UserID, e.Flow, e.Link, e.From, e.To, e.Action, e.RequestID, e.Device)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCase(ctx context.Context, caseID string) ([]Event, error) {
	rows, err := tx.QuerierFrom(ctx, s.db).QueryContext(ctx, `
		SELECT occurred_at, case_id, user_id, flow, link, from_status, to_status, action, request_id, device
		FROM hub_audit_events WHERE case_id = $1 ORDER BY occurred_at, id`, caseID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Timestamp, &e.CaseID, &e.UserID, &e.Flow, &e.Link, &e.From, &e.To, &e.Action, &e.RequestID, &e.Device); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
