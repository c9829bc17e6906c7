package llm

import (
	"reflect"
	"strings"
	"testing"
)

func TestParsePatterns(t *testing.T) {
	cases := []struct {
		name     string
		response string
		max      int
		want     []string
	}{
		{
			"plain lines",
			"machine learning\nneural networks\ngradient descent",
			5,
			[]string{"machine learning", "neural networks", "gradient descent"},
		},
		{
			"bulleted and quoted",
			"- \"vector database\"\n* embeddings\n",
			5,
			[]string{"vector database", "embeddings"},
		},
		{
			"blank lines dropped",
			"\nalpha\n\n\nbeta\n",
			5,
			[]string{"alpha", "beta"},
		},
		{
			"capped at max",
			"a\nb\nc\nd",
			2,
			[]string{"a", "b"},
		},
		{
			"empty response",
			"  \n\n",
			3,
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parsePatterns(tc.response, tc.max)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPatternPrompt(t *testing.T) {
	prompt := patternPrompt("how does caching work", 3)
	if !strings.Contains(prompt, "how does caching work") {
		t.Error("prompt should contain the query")
	}
	if !strings.Contains(prompt, "3") {
		t.Error("prompt should mention the pattern cap")
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	if _, err := New("gemini", "", "", 0); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNew_KnownProviders(t *testing.T) {
	for _, p := range []string{ProviderOpenAI, ProviderClaude} {
		g, err := New(p, "", "test-key", 0.3)
		if err != nil {
			t.Errorf("New(%q): %v", p, err)
		}
		if g == nil {
			t.Errorf("New(%q): nil generator", p)
		}
	}
}
