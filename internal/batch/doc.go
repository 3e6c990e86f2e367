// Package batch checks many text pairs read from a line-oriented stream.
//
// Each line holds two texts separated by a tab, or by a comma when the line
// has no tab. Blank lines and lines starting with '#' are skipped. A line with
// a single field has an absent right-hand side, which never matches.
// Checks run on a bounded worker pool and results come back in input order.
package batch
