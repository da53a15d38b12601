// Package sqlite stores contact submissions in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/trueluxconstruction/landing/internal/platform/storage/sqlitemigrate"
	"github.com/trueluxconstruction/landing/internal/services/contact/storage"
	"github.com/trueluxconstruction/landing/internal/services/contact/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// listPrealloc bounds the slice capacity reserved before rows arrive.
const listPrealloc = 64

// Store provides SQLite-backed submission persistence.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.SubmissionStore = (*Store)(nil)

// Open opens the submission database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordSubmission persists one processed submission.
func (s *Store) RecordSubmission(ctx context.Context, record storage.SubmissionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.ID = strings.TrimSpace(record.ID)
	record.Outcome = strings.TrimSpace(record.Outcome)
	if record.ID == "" {
		return fmt.Errorf("submission id is required")
	}
	switch record.Outcome {
	case storage.OutcomeSent, storage.OutcomeFailed:
	default:
		return fmt.Errorf("unknown outcome %q", record.Outcome)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO contact_submissions (
	id,
	name,
	email,
	phone,
	location,
	project_type,
	timeline,
	description,
	outcome,
	reason,
	last_error,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		record.ID,
		record.Name,
		record.Email,
		record.Phone,
		record.Location,
		record.ProjectType,
		record.Timeline,
		record.Description,
		record.Outcome,
		record.Reason,
		record.LastError,
		record.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	return nil
}

// ListSubmissions returns the newest submissions first.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]storage.SubmissionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	id,
	name,
	email,
	phone,
	location,
	project_type,
	timeline,
	description,
	outcome,
	reason,
	last_error,
	created_at
FROM contact_submissions
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	records := make([]storage.SubmissionRecord, 0, min(limit, listPrealloc))
	for rows.Next() {
		var record storage.SubmissionRecord
		var createdAt int64
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Email,
			&record.Phone,
			&record.Location,
			&record.ProjectType,
			&record.Timeline,
			&record.Description,
			&record.Outcome,
			&record.Reason,
			&record.LastError,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		record.CreatedAt = time.UnixMilli(createdAt).UTC()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return records, nil
}
