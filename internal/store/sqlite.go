package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/rcliao/string-analyzer/internal/analyzer"
	"github.com/rcliao/string-analyzer/internal/errors"
	"github.com/rcliao/string-analyzer/internal/model"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const selectColumns = `SELECT id, value, length, is_palindrome, unique_characters, word_count,
	       sha256_hash, character_frequency_map, created_at FROM strings`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
// If logger is nil, the store operates silently.
func NewSQLiteStore(dbPath string, logger *zap.SugaredLogger) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create db dir")
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "open db")
	}

	// One connection: check-then-act transactions run strictly one at a time.
	db.SetMaxOpenConns(1)

	s := newStore(db, logger)
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "migrate")
	}

	s.logger.Debugw("Database opened", "path", dbPath)
	return s, nil
}

func newStore(db *sql.DB, logger *zap.SugaredLogger) *SQLiteStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SQLiteStore{db: db, logger: logger, now: time.Now}
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS strings (
		id                      TEXT PRIMARY KEY,
		value                   TEXT NOT NULL,
		length                  INTEGER NOT NULL,
		is_palindrome           INTEGER NOT NULL,
		unique_characters       INTEGER NOT NULL,
		word_count              INTEGER NOT NULL,
		sha256_hash             TEXT NOT NULL UNIQUE,
		character_frequency_map TEXT NOT NULL,
		created_at              TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_strings_value ON strings(value);
	CREATE INDEX IF NOT EXISTS idx_strings_length ON strings(length);
	CREATE INDEX IF NOT EXISTS idx_strings_word_count ON strings(word_count);
	CREATE INDEX IF NOT EXISTS idx_strings_created ON strings(created_at, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Insert(ctx context.Context, value string) (*model.StringRecord, error) {
	props := analyzer.Analyze(value)
	freqJSON, err := json.Marshal(props.CharacterFrequency)
	if err != nil {
		return nil, errors.Wrap(err, "encode character frequency")
	}
	now := s.now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "begin insert")
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM strings WHERE id = ?`, props.ContentHash).Scan(&exists)
	switch {
	case err == nil:
		return nil, errors.NewConflictError("string already exists in the system")
	case !errors.Is(err, sql.ErrNoRows):
		return nil, errors.Wrap(err, "check existing string")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO strings (id, value, length, is_palindrome, unique_characters, word_count,
		                      sha256_hash, character_frequency_map, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		props.ContentHash, value, props.Length, props.IsPalindrome, props.UniqueCharacters,
		props.WordCount, props.ContentHash, string(freqJSON), now.Format(timeLayout))
	if err != nil {
		if isConstraintViolation(err) {
			return nil, errors.NewConflictError("string already exists in the system")
		}
		return nil, errors.Wrap(err, "insert string")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit insert")
	}

	s.logger.Debugw("Stored string", "id", shortID(props.ContentHash), "length", props.Length)

	return &model.StringRecord{
		ID:         props.ContentHash,
		Value:      value,
		Properties: props,
		CreatedAt:  now,
	}, nil
}

func (s *SQLiteStore) GetByValue(ctx context.Context, value string) (*model.StringRecord, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE value = ? LIMIT 1`, value)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewNotFoundError("string does not exist in the system")
	}
	if err != nil {
		return nil, errors.Wrap(err, "get string")
	}
	return &rec, nil
}

func (s *SQLiteStore) DeleteByValue(ctx context.Context, value string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin delete")
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM strings WHERE value = ? LIMIT 1`, value).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFoundError("string does not exist in the system")
	}
	if err != nil {
		return errors.Wrap(err, "find string")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM strings WHERE id = ?`, id); err != nil {
		return errors.Wrap(err, "delete string")
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit delete")
	}

	s.logger.Debugw("Deleted string", "id", shortID(id))
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, f model.Filters) (*ListResult, error) {
	if err := ValidateFilters(f); err != nil {
		return nil, err
	}

	records, err := s.query(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListResult{Records: records, Count: len(records), Filters: f}, nil
}

func (s *SQLiteStore) ListByNaturalLanguage(ctx context.Context, text string) (*NaturalLanguageResult, error) {
	f, err := ParseNaturalLanguage(text)
	if err != nil {
		return nil, err
	}

	res, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &NaturalLanguageResult{
		Records: res.Records,
		Count:   res.Count,
		Query:   InterpretedQuery{Original: text, ParsedFilters: f},
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// query lists records matching f in insertion order; id breaks ties.
func (s *SQLiteStore) query(ctx context.Context, f model.Filters) ([]model.StringRecord, error) {
	where, args := filterClause(f)
	q := selectColumns
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list strings")
	}
	defer rows.Close()

	records := []model.StringRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan string")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "list strings")
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (model.StringRecord, error) {
	var r model.StringRecord
	var freqJSON, createdAt string

	err := row.Scan(
		&r.ID, &r.Value, &r.Properties.Length, &r.Properties.IsPalindrome,
		&r.Properties.UniqueCharacters, &r.Properties.WordCount,
		&r.Properties.ContentHash, &freqJSON, &createdAt,
	)
	if err != nil {
		return r, err
	}

	if err := json.Unmarshal([]byte(freqJSON), &r.Properties.CharacterFrequency); err != nil {
		return r, errors.Wrap(err, "decode character frequency")
	}
	r.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return r, errors.Wrap(err, "parse created_at")
	}
	return r, nil
}

func isConstraintViolation(err error) bool {
	return strings.Contains(err.Error(), "constraint failed")
}

// shortID truncates an ID to 8 characters for logging
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
