package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeAnagram()
	if err := c.normalizeIndex(); err != nil {
		return err
	}
	c.normalizeBatch()
	return c.normalizeLogging()
}

func (c *Config) normalizeAnagram() {
	c.Anagram.Mode = strings.ToLower(strings.TrimSpace(c.Anagram.Mode))
	if c.Anagram.Mode == "" {
		c.Anagram.Mode = defaultMode
	}
	c.Anagram.Strategy = strings.ToLower(strings.TrimSpace(c.Anagram.Strategy))
	if c.Anagram.Strategy == "" {
		c.Anagram.Strategy = defaultStrategy
	}
}

func (c *Config) normalizeIndex() error {
	if strings.TrimSpace(c.Index.Path) == "" {
		if value, ok := os.LookupEnv("ANAGRAMKIT_INDEX_PATH"); ok && strings.TrimSpace(value) != "" {
			c.Index.Path = strings.TrimSpace(value)
		} else {
			c.Index.Path = defaultIndexPath
		}
	}
	var err error
	if c.Index.Path, err = expandPath(c.Index.Path); err != nil {
		return fmt.Errorf("index.path: %w", err)
	}
	if c.Index.MinWordLength <= 0 {
		c.Index.MinWordLength = defaultMinWordLength
	}
	return nil
}

func (c *Config) normalizeBatch() {
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = defaultBatchWorkers()
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv("ANAGRAMKIT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		} else {
			c.Logging.Level = defaultLogLevel
		}
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
