package testsupport

import (
	"testing"

	"anagramkit/internal/config"
	"anagramkit/internal/logging"
	"anagramkit/internal/wordindex"
)

// MustOpenStore opens a wordindex.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *wordindex.Store {
	t.Helper()

	store, err := wordindex.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("wordindex.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
