package wordindex

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"anagramkit/internal/anagram"
	"anagramkit/internal/logging"
	"anagramkit/internal/textutil"
)

// ErrLocked indicates another process is importing into the same index.
var ErrLocked = errors.New("index is locked by another import")

// Import stores words under a new batch. Words that normalize to nothing are
// rejected and words already indexed under the store's mode are counted as
// duplicates. Concurrent calls on one Store run one at a time.
func (s *Store) Import(ctx context.Context, words []string, source string) (*ImportResult, error) {
	s.importMu.Lock()
	defer s.importMu.Unlock()

	locked, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, s.lock.Path())
	}
	defer func() { _ = s.lock.Unlock() }()

	result := &ImportResult{
		BatchID: uuid.NewString(),
		Source:  textutil.SanitizeLabel(source),
	}
	ctx = logging.WithSource(logging.WithBatchID(ctx, result.BatchID), result.Source)
	logger := logging.WithContext(ctx, s.logger)
	start := time.Now()
	timestamp := formatTimestamp(start)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO batches (id, source, mode, created_at) VALUES (?, ?, ?, ?)`,
		result.BatchID, result.Source, string(s.mode), timestamp,
	); err != nil {
		return nil, fmt.Errorf("insert batch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO words (word, normalized, signature, mode, source, batch_id, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("prepare word insert: %w", err)
	}
	defer stmt.Close()

	for _, raw := range words {
		word := strings.TrimSpace(raw)
		normalized := anagram.Normalize(word, s.mode)
		if normalized == "" {
			result.Rejected++
			continue
		}
		res, err := stmt.ExecContext(ctx,
			word,
			normalized,
			anagram.Signature(word, s.mode),
			string(s.mode),
			result.Source,
			result.BatchID,
			timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("insert word %q: %w", word, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			result.Duplicates++
			continue
		}
		result.Inserted++
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE batches SET inserted = ?, skipped = ? WHERE id = ?`,
		result.Inserted, result.Duplicates+result.Rejected, result.BatchID,
	); err != nil {
		return nil, fmt.Errorf("update batch counts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	logger.Info("words imported",
		logging.Int("inserted", result.Inserted),
		logging.Int("duplicates", result.Duplicates),
		logging.Int("rejected", result.Rejected),
		logging.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}
