package config

import (
	"errors"
	"fmt"

	"anagramkit/internal/anagram"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnagram(); err != nil {
		return err
	}
	if err := c.validateIndex(); err != nil {
		return err
	}
	if err := c.validateBatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnagram() error {
	if _, err := anagram.ParseMode(c.Anagram.Mode); err != nil {
		return fmt.Errorf("anagram.mode must be one of %v: %w", anagram.Modes(), err)
	}
	if _, err := anagram.ParseStrategy(c.Anagram.Strategy); err != nil {
		return fmt.Errorf("anagram.strategy must be one of %v: %w", anagram.Strategies(), err)
	}
	return nil
}

func (c *Config) validateIndex() error {
	if c.Index.Path == "" {
		return errors.New("index.path must be set")
	}
	return nil
}

func (c *Config) validateBatch() error {
	if c.Batch.Workers > maxBatchWorkers {
		return fmt.Errorf("batch.workers must be at most %d", maxBatchWorkers)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
