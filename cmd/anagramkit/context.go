package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"anagramkit/internal/anagram"
	"anagramkit/internal/config"
	"anagramkit/internal/logging"
	"anagramkit/internal/wordindex"
)

type globalFlags struct {
	config   string
	mode     string
	strategy string
	json     bool
}

type commandContext struct {
	flags *globalFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce   sync.Once
	logger       *slog.Logger
	loggerCloser io.Closer
	loggerErr    error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads configuration once and applies the --mode and
// --strategy overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if mode := strings.TrimSpace(c.flags.mode); mode != "" {
			cfg.Anagram.Mode = strings.ToLower(mode)
		}
		if strategy := strings.TrimSpace(c.flags.strategy); strategy != "" {
			cfg.Anagram.Strategy = strings.ToLower(strategy)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, closer, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
		c.loggerCloser = closer
	})
	return c.logger, c.loggerErr
}

// close releases the log files opened by ensureLogger.
func (c *commandContext) close() error {
	if c.loggerCloser == nil {
		return nil
	}
	return c.loggerCloser.Close()
}

func (c *commandContext) checker() (anagram.Checker, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return anagram.Checker{}, err
	}
	return cfg.Checker(), nil
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.json
}

// withStore opens the word index for the duration of fn.
func (c *commandContext) withStore(fn func(*wordindex.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	store, err := wordindex.Open(cfg, logger)
	if err != nil {
		return wrapStoreError(err, cfg.Index.Path)
	}
	defer store.Close()
	return wrapStoreError(fn(store), cfg.Index.Path)
}

func wrapStoreError(err error, path string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wordindex.ErrLocked):
		return fmt.Errorf("index %s is busy with another import; retry when it finishes: %w", path, err)
	case errors.Is(err, wordindex.ErrSchemaMismatch):
		return fmt.Errorf("open index: %w", err)
	default:
		return err
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
