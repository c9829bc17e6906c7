package llm

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// openaiGenerator implements Generator for OpenAI.
type openaiGenerator struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewOpenAI creates an OpenAI generator. If apiKey is empty, OPENAI_API_KEY
// is used.
func NewOpenAI(apiKey, model string, temperature float64) Generator {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if model == "" {
		model = "gpt-4.1-mini"
	}
	return &openaiGenerator{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}
}

func (o *openaiGenerator) Patterns(ctx context.Context, query string, max int) ([]string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: patternPrompt(query, max),
			},
		},
		Temperature: float32(o.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("openai patterns: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai patterns: empty response")
	}
	return parsePatterns(resp.Choices[0].Message.Content, max), nil
}
