// Package main hosts the anagramkit CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the structured
// logger, and hands off to the internal packages: anagram for single checks,
// batch for pair files, and wordindex for the persistent SQLite index.
// Commands render either tables or indented JSON.
package main
