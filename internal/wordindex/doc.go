// Package wordindex persists words in SQLite keyed by anagram signature.
//
// The Store imports word lists, answers "which indexed words are anagrams of
// this one" lookups, and lists anagram families. Every row records the
// normalization mode it was computed under; a Store only reads and writes rows
// for the mode it was opened with, so switching modes never mixes signatures.
//
// Imports are serialized across processes with a lock file next to the
// database and tagged with a batch UUID so a whole import can be removed
// later. Schema changes bump schemaVersion; users delete the database (or run
// `anagramkit index clear`) to adopt the new schema.
package wordindex
