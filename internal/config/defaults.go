package config

import "runtime"

const (
	defaultConfigPath    = "~/.config/anagramkit/config.toml"
	projectConfigName    = "anagramkit.toml"
	defaultIndexPath     = "~/.local/share/anagramkit/index.db"
	defaultMode          = "ascii"
	defaultStrategy      = "count"
	defaultMinWordLength = 2
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	maxBatchWorkers      = 64
)

// Default returns a Config populated with repository defaults. Index.Path and
// Logging.Level stay empty so normalize can fall back to the environment
// before the built-in values.
func Default() Config {
	return Config{
		Anagram: Anagram{
			Mode:     defaultMode,
			Strategy: defaultStrategy,
		},
		Index: Index{
			MinWordLength: defaultMinWordLength,
		},
		Batch: Batch{
			Workers: defaultBatchWorkers(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}

func defaultBatchWorkers() int {
	n := runtime.NumCPU()
	if n > maxBatchWorkers {
		return maxBatchWorkers
	}
	return n
}
