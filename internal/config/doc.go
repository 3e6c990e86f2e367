// Package config loads, normalizes, and validates anagramkit configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ANAGRAMKIT_INDEX_PATH. The Config type centralizes every knob the CLI needs:
// the comparison mode and strategy, the word index location, batch
// parallelism, and log output.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical mode names, and clear validation errors.
package config
