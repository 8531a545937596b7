// Package draftstore persists record submissions that have not completed.
//
// A draft row is written before each create call. If the process is
// interrupted or the API rejects the submission, the payload survives
// locally and can be listed and resubmitted on a later invocation.
// Successful submissions stay behind as an inspection trail until pruned.
//
// Storage shares the tppg SQLite database (see internal/database).
package draftstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pgrowth/tppgUtil/internal/database"
)

// Repository defines the persistence interface for drafts.
type Repository interface {
	// Save inserts a draft (ID == 0, assigning an ID) or updates an
	// existing one.
	Save(draft *Draft) error

	// Get retrieves a single draft by ID. Returns nil when absent.
	Get(id int64) (*Draft, error)

	// ListPending returns all pending or failed drafts, newest first.
	// Both states are resumable; submitted drafts are not.
	ListPending() ([]Draft, error)

	// ListRecent returns the most recent n drafts regardless of status,
	// newest first.
	ListRecent(n int) ([]Draft, error)

	// DeleteOlderThan removes submitted and failed drafts older than d.
	// Pending drafts are never pruned. Returns the number removed.
	DeleteOlderThan(d time.Duration) (int64, error)

	// Close releases database resources.
	Close() error
}

// SQLiteRepository implements Repository backed by the shared local
// SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the draft store at the default database path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("draftstore: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens the draft store at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("draftstore: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS drafts (
            id            INTEGER PRIMARY KEY AUTOINCREMENT,
            form          TEXT    NOT NULL,
            payload       TEXT    NOT NULL DEFAULT '',
            status        TEXT    NOT NULL DEFAULT 'pending',
            record_id     TEXT    NOT NULL DEFAULT '',
            error_message TEXT    NOT NULL DEFAULT '',
            created_at    TEXT    NOT NULL,
            updated_at    TEXT    NOT NULL
        );
        CREATE INDEX IF NOT EXISTS idx_drafts_status ON drafts(status);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("draftstore: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new draft (ID == 0) or updates an existing one.
func (r *SQLiteRepository) Save(d *Draft) error {
	d.UpdatedAt = time.Now().UTC()
	if d.Status == "" {
		d.Status = StatusPending
	}

	if d.ID == 0 {
		if d.CreatedAt.IsZero() {
			d.CreatedAt = d.UpdatedAt
		}
		result, err := r.db.Exec(`
            INSERT INTO drafts (form, payload, status, record_id, error_message, created_at, updated_at)
            VALUES (?, ?, ?, ?, ?, ?, ?)`,
			d.Form, d.Payload, d.Status, d.RecordID, d.ErrorMessage,
			d.CreatedAt.Format(time.RFC3339Nano), d.UpdatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("draftstore: insert failed: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("draftstore: failed to get last insert ID: %w", err)
		}
		d.ID = id
		return nil
	}

	result, err := r.db.Exec(`
        UPDATE drafts SET form=?, payload=?, status=?, record_id=?, error_message=?, updated_at=?
        WHERE id=?`,
		d.Form, d.Payload, d.Status, d.RecordID, d.ErrorMessage,
		d.UpdatedAt.Format(time.RFC3339Nano), d.ID,
	)
	if err != nil {
		return fmt.Errorf("draftstore: update failed: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("draftstore: draft with ID %d not found", d.ID)
	}
	return nil
}

// Get retrieves a single draft by ID.
func (r *SQLiteRepository) Get(id int64) (*Draft, error) {
	row := r.db.QueryRow(`
        SELECT id, form, payload, status, record_id, error_message, created_at, updated_at
        FROM drafts WHERE id = ?`, id)

	d, err := scanRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("draftstore: query failed: %w", err)
	}
	return d, nil
}

// ListPending returns all resumable drafts (pending or failed).
func (r *SQLiteRepository) ListPending() ([]Draft, error) {
	rows, err := r.db.Query(`
        SELECT id, form, payload, status, record_id, error_message, created_at, updated_at
        FROM drafts WHERE status IN (?, ?) ORDER BY created_at DESC`,
		StatusPending, StatusFailed)
	if err != nil {
		return nil, fmt.Errorf("draftstore: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListRecent returns the most recent n drafts regardless of status.
func (r *SQLiteRepository) ListRecent(n int) ([]Draft, error) {
	rows, err := r.db.Query(`
        SELECT id, form, payload, status, record_id, error_message, created_at, updated_at
        FROM drafts ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("draftstore: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// DeleteOlderThan removes resolved drafts older than d.
func (r *SQLiteRepository) DeleteOlderThan(d time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-d).Format(time.RFC3339Nano)
	result, err := r.db.Exec(`
        DELETE FROM drafts WHERE status != ? AND updated_at < ?`,
		StatusPending, cutoff)
	if err != nil {
		return 0, fmt.Errorf("draftstore: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRow(row *sql.Row) (*Draft, error) {
	var d Draft
	var createdStr, updatedStr string
	err := row.Scan(
		&d.ID, &d.Form, &d.Payload, &d.Status, &d.RecordID, &d.ErrorMessage,
		&createdStr, &updatedStr,
	)
	if err != nil {
		return nil, err
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	d.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return &d, nil
}

func scanRows(rows *sql.Rows) ([]Draft, error) {
	var drafts []Draft
	for rows.Next() {
		var d Draft
		var createdStr, updatedStr string
		err := rows.Scan(
			&d.ID, &d.Form, &d.Payload, &d.Status, &d.RecordID, &d.ErrorMessage,
			&createdStr, &updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("draftstore: scan failed: %w", err)
		}
		d.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		d.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}
