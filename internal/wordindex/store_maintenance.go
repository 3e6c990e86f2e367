package wordindex

import (
	"context"
	"fmt"

	"anagramkit/internal/logging"
)

// RemoveBatch deletes an import batch and every word it inserted. It returns
// the number of words removed; zero with a nil error means the batch was
// unknown or belongs to another mode.
func (s *Store) RemoveBatch(ctx context.Context, batchID string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin remove tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM words WHERE batch_id = ? AND mode = ?`, batchID, string(s.mode))
	if err != nil {
		return 0, fmt.Errorf("delete batch words: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM batches WHERE id = ? AND mode = ?`, batchID, string(s.mode)); err != nil {
		return 0, fmt.Errorf("delete batch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit remove: %w", err)
	}

	logging.WithContext(logging.WithBatchID(ctx, batchID), s.logger).Info("batch removed",
		logging.Int64("words", removed),
	)
	return removed, nil
}

// Clear removes every word and batch recorded under the store's mode.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{`DELETE FROM words WHERE mode = ?`, `DELETE FROM batches WHERE mode = ?`} {
		if _, err := tx.ExecContext(ctx, stmt, string(s.mode)); err != nil {
			return fmt.Errorf("clear index: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	s.logger.Info("index cleared", logging.String(logging.FieldMode, string(s.mode)))
	return nil
}
