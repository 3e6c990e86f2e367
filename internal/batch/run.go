package batch

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"anagramkit/internal/anagram"
	"anagramkit/internal/logging"
)

// Options configures Run.
type Options struct {
	Checker anagram.Checker
	Workers int
	Logger  *slog.Logger
}

// PairResult is the outcome for one input line.
type PairResult struct {
	Line      int     `json:"line"`
	Left      string  `json:"left"`
	Right     *string `json:"right"`
	Anagrams  bool    `json:"anagrams"`
	Signature string  `json:"signature,omitempty"`
}

// Run parses r and checks every pair. Results keep input order.
func Run(ctx context.Context, r io.Reader, opts Options) ([]PairResult, error) {
	pairs, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Check(ctx, pairs, opts)
}

// Check runs the configured checker over pairs with at most opts.Workers
// concurrent checks.
func Check(ctx context.Context, pairs []Pair, opts Options) ([]PairResult, error) {
	logger := logging.NewComponentLogger(opts.Logger, "batch")
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()
	results := make([]PairResult, len(pairs))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, pair := range pairs {
		if gctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			left := pair.Left
			matched := opts.Checker.Check(&left, pair.Right)
			result := PairResult{
				Line:     pair.Line,
				Left:     pair.Left,
				Right:    pair.Right,
				Anagrams: matched,
			}
			if matched {
				result.Signature = anagram.Signature(pair.Left, opts.Checker.Mode)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total, matched := Summary(results)
	logger.Debug("batch checked",
		logging.Int("pairs", total),
		logging.Int("matched", matched),
		logging.Int("workers", workers),
		logging.Duration("elapsed", time.Since(start)),
	)
	return results, nil
}

// Summary counts results and matches.
func Summary(results []PairResult) (total, matched int) {
	for _, r := range results {
		if r.Anagrams {
			matched++
		}
	}
	return len(results), matched
}
