package logging_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"anagramkit/internal/logging"
	"anagramkit/internal/testsupport"
)

func newLogFile(t *testing.T) (string, func() string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "anagramkit.log")
	return logPath, func() string {
		content, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatalf("read log file: %v", err)
		}
		return string(content)
	}
}

func newLogger(t *testing.T, opts logging.Options) *slog.Logger {
	t.Helper()
	logger, closer, err := logging.New(opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { _ = closer.Close() })
	return logger
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLogFile())
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	logger, closer, err := logging.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("index opened", logging.String("path", "/tmp/index.db"))
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	logger.Info("after close")

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "INFO index opened path=/tmp/index.db") {
		t.Fatalf("unexpected log content %q", content)
	}
	if strings.Contains(string(content), "after close") {
		t.Fatalf("expected closed file to receive no more entries, got %q", content)
	}
}

func TestCloserWithoutFilesIsNoop(t *testing.T) {
	_, closer, err := logging.NewFromConfig(nil)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath, read := newLogFile(t)
	logger := newLogger(t, logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})

	logger.Info("message without caller")

	if content := read(); strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logPath, read := newLogFile(t)
	logger := newLogger(t, logging.Options{Format: "console", Level: "debug", OutputPaths: []string{logPath}})

	logger.Info("message with caller")

	if content := read(); !strings.Contains(content, ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerComponentAndGroups(t *testing.T) {
	logPath, read := newLogFile(t)
	logger := newLogger(t, logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})

	logger = logging.NewComponentLogger(logger, "wordindex")
	logger.WithGroup("import").With(logging.Int("words", 3)).Info("done", logging.String("source", "my list"))
	logger.Warn("lock held", logging.Error(errors.New("busy")))

	content := read()
	for _, want := range []string{
		"INFO wordindex: done import.words=3 import.source=\"my list\"",
		"WARN wordindex: lock held error=busy",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
}

func TestConsoleLoggerFiltersBelowLevel(t *testing.T) {
	logPath, read := newLogFile(t)
	logger := newLogger(t, logging.Options{Format: "console", Level: "warn", OutputPaths: []string{logPath}})
	logger.Info("hidden")
	logger.Error("shown")

	content := read()
	if strings.Contains(content, "hidden") || !strings.Contains(content, "ERROR shown") {
		t.Fatalf("unexpected filtered output %q", content)
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	logPath, read := newLogFile(t)
	logger := newLogger(t, logging.Options{Format: "json", Level: "info", OutputPaths: []string{logPath}})
	logger.Info("checked", logging.Bool("anagrams", true))

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(read())), &entry); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if entry["msg"] != "checked" || entry["level"] != "info" || entry["anagrams"] != true {
		t.Fatalf("unexpected json entry %#v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %#v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsBatchFields(t *testing.T) {
	logPath, read := newLogFile(t)
	logger := newLogger(t, logging.Options{Format: "console", Level: "info", OutputPaths: []string{logPath}})

	ctx := logging.WithSource(logging.WithBatchID(context.Background(), "b-1"), "words")
	logging.WithContext(ctx, logger).Info("imported")

	if content := read(); !strings.Contains(content, "imported batch_id=b-1 source=words") {
		t.Fatalf("expected context fields, got %q", content)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("expected nop logger to be disabled")
	}
	logging.WithContext(context.Background(), nil).Info("ignored")
}
