package anagram

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the normalization applied before comparison.
type Mode string

const (
	// ModeASCII lower-cases and keeps only ASCII letters and digits.
	ModeASCII Mode = "ascii"
	// ModeFold strips diacritics and compatibility forms, then applies ModeASCII.
	ModeFold Mode = "fold"
	// ModeUnicode lower-cases and keeps every Unicode letter and digit.
	ModeUnicode Mode = "unicode"
)

// Strategy selects the comparison algorithm.
type Strategy string

const (
	// StrategyCount compares character frequency tables.
	StrategyCount Strategy = "count"
	// StrategySort compares sorted character sequences.
	StrategySort Strategy = "sort"
)

var (
	// ErrUnknownMode reports a mode name outside Modes().
	ErrUnknownMode = errors.New("unknown normalization mode")
	// ErrUnknownStrategy reports a strategy name outside Strategies().
	ErrUnknownStrategy = errors.New("unknown comparison strategy")
)

// Modes lists the supported normalization modes.
func Modes() []Mode {
	return []Mode{ModeASCII, ModeFold, ModeUnicode}
}

// Strategies lists the supported comparison strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyCount, StrategySort}
}

// ParseMode converts a configuration value to a Mode. An empty value selects
// ModeASCII.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeASCII:
		return ModeASCII, nil
	case ModeFold:
		return ModeFold, nil
	case ModeUnicode:
		return ModeUnicode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

// ParseStrategy converts a configuration value to a Strategy. An empty value
// selects StrategyCount.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case "", StrategyCount:
		return StrategyCount, nil
	case StrategySort:
		return StrategySort, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, value)
	}
}
