package llm

import (
	"context"
	"fmt"
	"os"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// claudeGenerator implements Generator for Anthropic Claude.
type claudeGenerator struct {
	client *anthropic.Client
	model  string
}

// NewClaude creates a Claude generator. If apiKey is empty, ANTHROPIC_API_KEY
// is used.
func NewClaude(apiKey, model string) Generator {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if model == "" {
		model = "claude-sonnet-4-6"
	}
	return &claudeGenerator{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (c *claudeGenerator) Patterns(ctx context.Context, query string, max int) ([]string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role:    anthropic.RoleUser,
				Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(patternPrompt(query, max))},
			},
		},
		MaxTokens: 256,
	})
	if err != nil {
		return nil, fmt.Errorf("claude patterns: %w", err)
	}
	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("claude patterns: empty response")
	}
	return parsePatterns(resp.Content[0].GetText(), max), nil
}
