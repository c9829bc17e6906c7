// Package search finds pattern matches in document files and discovers the
// files to scan.
package search

import (
	"strings"
)

// Match records a single pattern hit in a file's text. Immutable once created.
type Match struct {
	Path       string `json:"path"`        // set by the caller that knows the file
	LineNumber int    `json:"line_number"` // 1-based
	CharOffset int    `json:"char_offset"` // byte offset of the match within the file text
	Pattern    string `json:"pattern"`
	LineText   string `json:"line_text"`
}

// FindMatches scans text line by line and returns a match for every
// (line, pattern) pair where the pattern occurs in the line as a substring.
// A line matching several patterns yields several matches, in line order
// then pattern order. Scanning stops silently once maxMatches is reached.
func FindMatches(text string, patterns []string, caseSensitive bool, maxMatches int) []Match {
	var matches []Match

	offset := 0
	lineNum := 0
	for _, line := range strings.Split(text, "\n") {
		lineNum++
		lineStart := offset
		offset += len(line) + 1 // account for the "\n" delimiter

		trimmed := strings.TrimSuffix(line, "\r")
		haystack := trimmed
		if !caseSensitive {
			haystack = strings.ToLower(trimmed)
		}

		for _, pattern := range patterns {
			needle := pattern
			if !caseSensitive {
				needle = strings.ToLower(pattern)
			}
			idx := strings.Index(haystack, needle)
			if idx < 0 {
				continue
			}
			matches = append(matches, Match{
				LineNumber: lineNum,
				CharOffset: lineStart + idx,
				Pattern:    pattern,
				LineText:   trimmed,
			})
			if len(matches) >= maxMatches {
				return matches
			}
		}
	}

	return matches
}

// DedupeMatches drops matches whose trimmed, lowercased line text has already
// been seen, keeping at most maxMatches of the survivors. Repeated boilerplate
// lines (headers, footers) would otherwise dominate a file's window set.
func DedupeMatches(matches []Match, maxMatches int) []Match {
	seen := make(map[string]bool, len(matches))
	var unique []Match

	for _, m := range matches {
		key := strings.ToLower(strings.TrimSpace(m.LineText))
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, m)
		if len(unique) >= maxMatches {
			break
		}
	}

	return unique
}
