package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

// RecordsRepo keeps every collection in one table, one JSON body per row.
// Deleted rows stay in place with deleted_at set and are hidden from reads.
type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) List(ctx context.Context, collection string) ([]string, error) {
	query := `SELECT id FROM records WHERE collection = ? AND deleted_at IS NULL ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan record id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *RecordsRepo) Read(ctx context.Context, collection, id string) (core.Record, error) {
	query := `SELECT body FROM records WHERE collection = ? AND id = ? AND deleted_at IS NULL`

	var body string
	err := r.db.QueryRowContext(ctx, query, collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var rec core.Record
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", collection, id, err)
	}
	return rec, nil
}

// Put inserts or replaces a record. Writing over a deleted record revives it.
func (r *RecordsRepo) Put(ctx context.Context, collection, id string, rec core.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	query := `
		INSERT INTO records (collection, id, body) VALUES (?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET
			body = excluded.body,
			updated_at = CURRENT_TIMESTAMP,
			deleted_at = NULL`

	if _, err := r.db.ExecContext(ctx, query, collection, id, string(body)); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func (r *RecordsRepo) Delete(ctx context.Context, collection, id string) error {
	query := `UPDATE records SET deleted_at = CURRENT_TIMESTAMP WHERE collection = ? AND id = ? AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, core.ErrNotFound)
	}
	return nil
}
