// Package llm generates literal search patterns from a free-form query using
// an LLM provider.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider name constants.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

// Generator turns a query into a list of literal search patterns. The
// assembler calls it once per build when no explicit patterns are given.
type Generator interface {
	Patterns(ctx context.Context, query string, max int) ([]string, error)
}

// New constructs the Generator for the named provider. model may be empty,
// in which case the provider default is used. If apiKey is empty, the
// provider's env var is consulted by the concrete generator.
func New(provider, model, apiKey string, temperature float64) (Generator, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAI(apiKey, model, temperature), nil
	case ProviderClaude:
		return NewClaude(apiKey, model), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q; valid providers: openai, claude", provider)
	}
}

// patternPrompt asks for plain keyword patterns, one per line, so the
// response can be split without any structured-output machinery.
func patternPrompt(query string, max int) string {
	return fmt.Sprintf(
		"Generate up to %d short literal search patterns (keywords or exact phrases) "+
			"for finding passages relevant to the query below in a document collection. "+
			"Output one pattern per line, nothing else.\n\nQuery: %s", max, query)
}

// parsePatterns splits an LLM response into patterns: one per line, trimmed,
// list bullets stripped, empties dropped, capped at max.
func parsePatterns(response string, max int) []string {
	var patterns []string
	for _, line := range strings.Split(response, "\n") {
		p := strings.TrimSpace(line)
		p = strings.TrimPrefix(p, "- ")
		p = strings.TrimPrefix(p, "* ")
		p = strings.Trim(p, "\"")
		if p == "" {
			continue
		}
		patterns = append(patterns, p)
		if len(patterns) >= max {
			break
		}
	}
	return patterns
}
