package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/adc77/contextF/internal/assemble"
)

func (s *Server) handleBuildContext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	patternsArg := req.GetString("patterns", "")

	var patterns []string
	for _, p := range strings.Split(patternsArg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	if query == "" && len(patterns) == 0 {
		return mcp.NewToolResultError("either query or patterns must be provided"), nil
	}

	cfg := s.cfg
	if maxTokens := req.GetInt("max_tokens", 0); maxTokens > 0 {
		cfg.Tokens.MaxContextTokens = maxTokens
	}
	assembler := assemble.New(cfg, s.tok, s.gen)

	result, err := assembler.BuildContext(ctx, assemble.Request{
		Query:    query,
		Patterns: patterns,
		DocsPath: req.GetString("docs_path", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build context: %v", err)), nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) handleCountTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%d", s.tok.Count(text))), nil
}
