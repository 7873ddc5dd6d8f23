// Package extract holds the stateless token extractors: cities, dates,
// flight codes and transport keywords recognized inside a single cell
// or row of a worksheet grid. All functions are pure and perform no
// I/O; misses are reported as zero values, never as errors.
package extract

import (
	"regexp"
	"strings"
)

// Spreadsheet authors paste text with non-breaking and narrow
// no-break spaces; both must compare equal to ordinary spaces.
var spaceRe = regexp.MustCompile(`[\s\x{00A0}\x{202F}]+`)

// NormSpaces collapses all whitespace runs (including NBSP and narrow
// NBSP) to single spaces and trims the result.
func NormSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// JoinRow joins a row's cells into one searchable lowercase-preserving
// string with normalized spacing.
func JoinRow(row []string) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		c = NormSpaces(c)
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// Fold lowercases and space-normalizes text for keyword matching.
func Fold(s string) string {
	return strings.ToLower(NormSpaces(s))
}
