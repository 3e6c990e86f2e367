package wordindex

import (
	"context"
	"database/sql"
	"fmt"

	"anagramkit/internal/anagram"
)

const wordColumns = "id, word, normalized, signature, source, batch_id, created_at"

func scanWord(scanner interface{ Scan(dest ...any) error }) (IndexedWord, error) {
	var (
		w          IndexedWord
		createdRaw string
	)
	if err := scanner.Scan(&w.ID, &w.Word, &w.Normalized, &w.Signature, &w.Source, &w.BatchID, &createdRaw); err != nil {
		return IndexedWord{}, fmt.Errorf("scan word: %w", err)
	}
	w.CreatedAt = parseTimestamp(createdRaw)
	return w, nil
}

// Lookup returns indexed anagrams of word, excluding entries that normalize to
// the same text as word itself.
func (s *Store) Lookup(ctx context.Context, word string) ([]IndexedWord, error) {
	normalized := anagram.Normalize(word, s.mode)
	if normalized == "" {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+wordColumns+` FROM words
         WHERE mode = ? AND signature = ? AND normalized <> ?
         ORDER BY word`,
		string(s.mode), anagram.Signature(word, s.mode), normalized,
	)
	if err != nil {
		return nil, fmt.Errorf("lookup anagrams: %w", err)
	}
	defer rows.Close()

	var words []IndexedWord
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// Contains reports whether word, after normalization, is indexed.
func (s *Store) Contains(ctx context.Context, word string) (bool, error) {
	normalized := anagram.Normalize(word, s.mode)
	if normalized == "" {
		return false, nil
	}
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM words WHERE mode = ? AND normalized = ?`,
		string(s.mode), normalized,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check word: %w", err)
	}
	return count > 0, nil
}

// Families returns signatures with at least minSize members, largest first.
func (s *Store) Families(ctx context.Context, minSize int) ([]anagram.Family, error) {
	if minSize < 1 {
		minSize = 1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT signature, word FROM words
         WHERE mode = ? AND signature IN (
             SELECT signature FROM words WHERE mode = ?
             GROUP BY signature HAVING COUNT(*) >= ?
         )
         ORDER BY signature, id`,
		string(s.mode), string(s.mode), minSize,
	)
	if err != nil {
		return nil, fmt.Errorf("query families: %w", err)
	}
	defer rows.Close()

	var families []anagram.Family
	for rows.Next() {
		var sig, word string
		if err := rows.Scan(&sig, &word); err != nil {
			return nil, fmt.Errorf("scan family member: %w", err)
		}
		if n := len(families); n == 0 || families[n-1].Signature != sig {
			families = append(families, anagram.Family{Signature: sig})
		}
		last := &families[len(families)-1]
		last.Members = append(last.Members, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return anagram.FilterFamilies(families, minSize), nil
}

// Stats summarizes the index for the store's mode.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Mode: string(s.mode)}
	queries := []struct {
		dest  *int
		query string
		args  []any
	}{
		{&stats.Words, `SELECT COUNT(1) FROM words WHERE mode = ?`, []any{string(s.mode)}},
		{&stats.Signatures, `SELECT COUNT(DISTINCT signature) FROM words WHERE mode = ?`, []any{string(s.mode)}},
		{&stats.Families, `SELECT COUNT(1) FROM (
             SELECT signature FROM words WHERE mode = ? GROUP BY signature HAVING COUNT(*) >= 2
         )`, []any{string(s.mode)}},
		{&stats.Batches, `SELECT COUNT(1) FROM batches WHERE mode = ?`, []any{string(s.mode)}},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query, q.args...).Scan(q.dest); err != nil {
			return Stats{}, fmt.Errorf("index stats: %w", err)
		}
	}
	return stats, nil
}

// Batches lists past imports for the store's mode, newest first.
func (s *Store) Batches(ctx context.Context) ([]Batch, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, mode, inserted, skipped, created_at FROM batches
         WHERE mode = ? ORDER BY created_at DESC, rowid DESC`,
		string(s.mode),
	)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var (
			b          Batch
			createdRaw sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Source, &b.Mode, &b.Inserted, &b.Skipped, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		b.CreatedAt = parseTimestamp(createdRaw.String)
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
