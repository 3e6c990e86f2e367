// Package textutil provides text processing helpers shared by the word index
// and the CLI.
//
// The primary use cases are:
//   - Splitting free text into candidate words for indexing
//   - Deriving safe, lowercase labels for import sources
//   - Title-casing words and file names for display
//
// Tokenization lowercases text, splits on runs of characters that are neither
// letters nor digits, and filters tokens shorter than a caller-supplied length.
package textutil
