// Package sqlite implements the vizier storage interfaces on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ssoudan/oss-vizier/internal/platform/storage/sqlitemigrate"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/names"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage"
	"github.com/ssoudan/oss-vizier/internal/services/vizier/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const sqliteURLPrefix = "sqlite:///"

// Store provides a SQLite-backed store implementing the storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Store = (*Store)(nil)

// OpenURL opens a store from a database URL.
//
// An empty URL or storage.SQLMemoryURL opens an ephemeral in-memory database;
// "sqlite:///<path>" opens (and creates if needed) a database file. Any other
// scheme is rejected.
func OpenURL(databaseURL string) (*Store, error) {
	databaseURL = strings.TrimSpace(databaseURL)
	if databaseURL == "" || databaseURL == storage.SQLMemoryURL {
		return openDB(":memory:")
	}
	if !strings.HasPrefix(databaseURL, sqliteURLPrefix) {
		return nil, fmt.Errorf("unsupported database url %q: only sqlite:/// urls are supported", databaseURL)
	}
	path := strings.TrimPrefix(databaseURL, sqliteURLPrefix)
	if path == "" {
		return nil, fmt.Errorf("database url %q has no path", databaseURL)
	}
	if path == ":memory:" {
		return openDB(":memory:")
	}
	return Open(path)
}

// Open opens a SQLite store at the provided file path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return openDB(filepath.Clean(path))
}

func openDB(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		// _txlock=immediate takes the write lock at BEGIN so concurrent
		// read-modify-write transactions queue on busy_timeout instead of
		// failing once they upgrade to a write.
		dsn += "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL&_txlock=immediate"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// database/sql opens one in-memory database per connection; a single
		// connection keeps every caller on the same database.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func toNullMillis(value *time.Time) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*value), Valid: true}
}

func fromNullMillis(value sql.NullInt64) *time.Time {
	if !value.Valid {
		return nil
	}
	t := fromMillis(value.Int64)
	return &t
}

// CreateStudy stores a new study record.
func (s *Store) CreateStudy(ctx context.Context, record storage.StudyRecord) error {
	spec, err := marshalSpec(record.Spec)
	if err != nil {
		return fmt.Errorf("marshal study spec: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO studies (name, owner, study_id, display_name, state, spec, create_time)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.Name, record.Owner, record.StudyID, record.DisplayName,
		string(record.State), spec, toMillis(record.CreateTime))
	if err != nil {
		// The primary key on name detects duplicates atomically; a racing
		// create loses here, not on a pre-read.
		if isConstraintError(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert study %s: %w", record.Name, err)
	}
	return nil
}

// isConstraintError reports whether err is a SQLite constraint violation.
func isConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}

// GetStudy returns a study record by resource name.
func (s *Store) GetStudy(ctx context.Context, name string) (storage.StudyRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT name, owner, study_id, display_name, state, spec, create_time
FROM studies WHERE name = ?`, name)
	return scanStudy(row)
}

// ListStudies returns a page of the owner's studies ordered by creation time.
func (s *Store) ListStudies(ctx context.Context, owner string, pageSize int, cursor string) (storage.StudyPage, error) {
	if pageSize <= 0 {
		return storage.StudyPage{}, fmt.Errorf("page size must be greater than zero")
	}

	args := []any{owner}
	query := `
SELECT name, owner, study_id, display_name, state, spec, create_time
FROM studies WHERE owner = ?`
	if cursor != "" {
		query += " AND name > ?"
		args = append(args, cursor)
	}
	query += " ORDER BY name LIMIT ?"
	args = append(args, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return storage.StudyPage{}, fmt.Errorf("list studies: %w", err)
	}
	defer rows.Close()

	var page storage.StudyPage
	for rows.Next() {
		record, err := scanStudy(rows)
		if err != nil {
			return storage.StudyPage{}, err
		}
		page.Studies = append(page.Studies, record)
	}
	if err := rows.Err(); err != nil {
		return storage.StudyPage{}, fmt.Errorf("read studies: %w", err)
	}

	if len(page.Studies) > pageSize {
		page.Studies = page.Studies[:pageSize]
		page.NextCursor = page.Studies[pageSize-1].Name
	}
	return page, nil
}

// DeleteStudy removes a study and all of its trials.
func (s *Store) DeleteStudy(ctx context.Context, name string) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete study: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, "DELETE FROM studies WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete study %s: %w", name, err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete study %s: %w", name, err)
	}
	if deleted == 0 {
		return storage.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM trials WHERE study_name = ?", name); err != nil {
		return fmt.Errorf("delete trials of %s: %w", name, err)
	}
	return tx.Commit()
}

// CreateTrial assigns the next trial ID within the study and stores the trial.
func (s *Store) CreateTrial(ctx context.Context, record storage.TrialRecord) (storage.TrialRecord, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.TrialRecord{}, fmt.Errorf("begin create trial: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	row := tx.QueryRowContext(ctx, "SELECT 1 FROM studies WHERE name = ?", record.StudyName)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.TrialRecord{}, storage.ErrNotFound
		}
		return storage.TrialRecord{}, fmt.Errorf("check study %s: %w", record.StudyName, err)
	}

	row = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(trial_id), 0) + 1 FROM trials WHERE study_name = ?", record.StudyName)
	if err := row.Scan(&record.TrialID); err != nil {
		return storage.TrialRecord{}, fmt.Errorf("next trial id for %s: %w", record.StudyName, err)
	}
	record.Name = names.FormatTrial(record.StudyName, record.TrialID)

	parameters, finalMeasurement, measurements, err := marshalTrialBlobs(record)
	if err != nil {
		return storage.TrialRecord{}, err
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO trials (name, study_name, trial_id, state, client_id, parameters,
                    final_measurement, measurements, infeasible_reason, start_time, end_time)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Name, record.StudyName, record.TrialID, string(record.State),
		record.ClientID, parameters, finalMeasurement, measurements,
		record.InfeasibleReason, toMillis(record.StartTime), toNullMillis(record.EndTime))
	if err != nil {
		if isConstraintError(err) {
			return storage.TrialRecord{}, storage.ErrAlreadyExists
		}
		return storage.TrialRecord{}, fmt.Errorf("insert trial %s: %w", record.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return storage.TrialRecord{}, fmt.Errorf("commit create trial: %w", err)
	}
	return record, nil
}

// GetTrial returns a trial record by resource name.
func (s *Store) GetTrial(ctx context.Context, name string) (storage.TrialRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx, trialSelect+" WHERE name = ?", name)
	return scanTrial(row)
}

// UpdateTrial replaces the stored trial identified by record.Name.
func (s *Store) UpdateTrial(ctx context.Context, record storage.TrialRecord) error {
	parameters, finalMeasurement, measurements, err := marshalTrialBlobs(record)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE trials
SET state = ?, client_id = ?, parameters = ?, final_measurement = ?,
    measurements = ?, infeasible_reason = ?, end_time = ?
WHERE name = ?`,
		string(record.State), record.ClientID, parameters, finalMeasurement,
		measurements, record.InfeasibleReason, toNullMillis(record.EndTime), record.Name)
	if err != nil {
		return fmt.Errorf("update trial %s: %w", record.Name, err)
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update trial %s: %w", record.Name, err)
	}
	if updated == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// MutateTrial applies mutate to the stored trial inside a single transaction.
func (s *Store) MutateTrial(ctx context.Context, name string, mutate func(*storage.TrialRecord) error) (storage.TrialRecord, error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.TrialRecord{}, fmt.Errorf("begin mutate trial: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, trialSelect+" WHERE name = ?", name)
	record, err := scanTrial(row)
	if err != nil {
		return storage.TrialRecord{}, err
	}

	if err := mutate(&record); err != nil {
		return storage.TrialRecord{}, err
	}
	record.Name = name

	parameters, finalMeasurement, measurements, err := marshalTrialBlobs(record)
	if err != nil {
		return storage.TrialRecord{}, err
	}

	_, err = tx.ExecContext(ctx, `
UPDATE trials
SET state = ?, client_id = ?, parameters = ?, final_measurement = ?,
    measurements = ?, infeasible_reason = ?, end_time = ?
WHERE name = ?`,
		string(record.State), record.ClientID, parameters, finalMeasurement,
		measurements, record.InfeasibleReason, toNullMillis(record.EndTime), record.Name)
	if err != nil {
		return storage.TrialRecord{}, fmt.Errorf("update trial %s: %w", record.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return storage.TrialRecord{}, fmt.Errorf("commit mutate trial: %w", err)
	}
	return record, nil
}

// ListTrials returns a page of the study's trials ordered by trial ID.
func (s *Store) ListTrials(ctx context.Context, studyName string, pageSize int, cursor string) (storage.TrialPage, error) {
	if pageSize <= 0 {
		return storage.TrialPage{}, fmt.Errorf("page size must be greater than zero")
	}

	afterID := int64(0)
	if cursor != "" {
		if _, err := fmt.Sscanf(cursor, "%d", &afterID); err != nil {
			return storage.TrialPage{}, fmt.Errorf("invalid trial cursor %q", cursor)
		}
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		trialSelect+" WHERE study_name = ? AND trial_id > ? ORDER BY trial_id LIMIT ?",
		studyName, afterID, pageSize+1)
	if err != nil {
		return storage.TrialPage{}, fmt.Errorf("list trials: %w", err)
	}
	defer rows.Close()

	var page storage.TrialPage
	for rows.Next() {
		record, err := scanTrial(rows)
		if err != nil {
			return storage.TrialPage{}, err
		}
		page.Trials = append(page.Trials, record)
	}
	if err := rows.Err(); err != nil {
		return storage.TrialPage{}, fmt.Errorf("read trials: %w", err)
	}

	if len(page.Trials) > pageSize {
		page.Trials = page.Trials[:pageSize]
		page.NextCursor = fmt.Sprintf("%d", page.Trials[pageSize-1].TrialID)
	}
	return page, nil
}

// DeleteTrial removes a trial by resource name.
func (s *Store) DeleteTrial(ctx context.Context, name string) error {
	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM trials WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete trial %s: %w", name, err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trial %s: %w", name, err)
	}
	if deleted == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// TrialsForClient returns the study's non-terminal trials assigned to a client.
func (s *Store) TrialsForClient(ctx context.Context, studyName, clientID string) ([]storage.TrialRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		trialSelect+` WHERE study_name = ? AND client_id = ? AND state IN (?, ?)
ORDER BY trial_id`,
		studyName, clientID,
		string(storage.TrialStateRequested), string(storage.TrialStateActive))
	if err != nil {
		return nil, fmt.Errorf("list trials for client: %w", err)
	}
	defer rows.Close()
	return collectTrials(rows)
}

// TrialsInState returns all trials in the given state across studies.
func (s *Store) TrialsInState(ctx context.Context, state storage.TrialState) ([]storage.TrialRecord, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		trialSelect+" WHERE state = ? ORDER BY study_name, trial_id", string(state))
	if err != nil {
		return nil, fmt.Errorf("list trials in state %s: %w", state, err)
	}
	defer rows.Close()
	return collectTrials(rows)
}

const trialSelect = `
SELECT name, study_name, trial_id, state, client_id, parameters,
       final_measurement, measurements, infeasible_reason, start_time, end_time
FROM trials`

func collectTrials(rows *sql.Rows) ([]storage.TrialRecord, error) {
	var records []storage.TrialRecord
	for rows.Next() {
		record, err := scanTrial(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read trials: %w", err)
	}
	return records, nil
}
