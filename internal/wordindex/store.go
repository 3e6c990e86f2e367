package wordindex

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"anagramkit/internal/anagram"
	"anagramkit/internal/config"
	"anagramkit/internal/logging"
)

// Store manages the word index backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	mode   anagram.Mode
	lock   *flock.Flock
	logger *slog.Logger

	// importMu serializes imports within this process; lock covers other processes.
	importMu sync.Mutex
}

// Open initializes or connects to the index database at cfg.Index.Path.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Index.Path
	db, err := sql.Open("sqlite", dataSourceName(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	store := &Store{
		db:     db,
		path:   dbPath,
		mode:   cfg.Mode(),
		lock:   flock.New(dbPath + ".lock"),
		logger: logging.NewComponentLogger(logger, "wordindex"),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	store.logger.Debug("index opened",
		logging.String("path", dbPath),
		logging.String(logging.FieldMode, string(store.mode)),
	)
	return store, nil
}

// dataSourceName applies pragmas per connection so every pooled connection
// enforces foreign keys and waits on busy locks.
func dataSourceName(path string) string {
	pragmas := []string{
		"_pragma=journal_mode(WAL)",
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
	}
	return "file:" + path + "?" + strings.Join(pragmas, "&")
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// LockPath returns the lock file guarding imports.
func (s *Store) LockPath() string {
	return s.lock.Path()
}

// Mode returns the normalization mode the store reads and writes.
func (s *Store) Mode() anagram.Mode {
	return s.mode
}

// timestampLayout is fixed width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(raw string) time.Time {
	ts, err := time.Parse(timestampLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}
