package assemble

import (
	"strings"
	"unicode"
)

// wordCounter is a deterministic Counter for tests: one token per
// whitespace-separated word, prefix-preserving truncation.
type wordCounter struct{}

func (wordCounter) Count(s string) int {
	return len(strings.Fields(s))
}

func (wordCounter) Truncate(s string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	count := 0
	inWord := false
	for i, r := range s {
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			if count > maxTokens {
				return s[:i]
			}
			inWord = true
		}
	}
	return s
}

// words returns n space-separated filler words as a single line.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
