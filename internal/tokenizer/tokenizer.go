// Package tokenizer wraps tiktoken for token counting and budget truncation.
package tokenizer

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Counter counts tokens in text and truncates text to a token budget.
// The core consumes this interface; Tokenizer is the tiktoken-backed
// implementation.
type Counter interface {
	Count(s string) int
	// Truncate returns a prefix of s whose counted length is at most maxTokens.
	Truncate(s string, maxTokens int) string
}

// Tokenizer implements Counter on top of a tiktoken encoding.
type Tokenizer struct {
	enc *tiktoken.Tiktoken
}

// New creates a Tokenizer for the named encoding. cl100k_base (GPT-4 and
// Claude) is a good approximation for all providers.
func New(encoding string) (*Tokenizer, error) {
	if encoding == "" {
		encoding = "cl100k_base"
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: get encoding %q: %w", encoding, err)
	}
	return &Tokenizer{enc: enc}, nil
}

// Count returns the number of tokens in s.
func (t *Tokenizer) Count(s string) int {
	return len(t.enc.Encode(s, nil, nil))
}

// Truncate truncates s to at most maxTokens tokens, returning the result.
func (t *Tokenizer) Truncate(s string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	tokens := t.enc.Encode(s, nil, nil)
	if len(tokens) <= maxTokens {
		return s
	}
	// Decode the truncated token slice back to a string.
	return t.enc.Decode(tokens[:maxTokens])
}
