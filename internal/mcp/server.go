// Package mcp exposes context building over the Model Context Protocol so
// MCP-compatible agents (Claude Desktop, Cursor, etc.) can call contextF
// directly. The server communicates over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/adc77/contextF/internal/assemble"
	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/tokenizer"
)

// Server wraps an MCP stdio server around an Assembler.
type Server struct {
	cfg       config.Config
	tok       *tokenizer.Tokenizer
	gen       assemble.PatternGenerator // may be nil
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools. gen may be nil,
// disabling LLM pattern generation.
func NewServer(cfg config.Config, tok *tokenizer.Tokenizer, gen assemble.PatternGenerator, version string) *Server {
	s := &Server{
		cfg:       cfg,
		tok:       tok,
		gen:       gen,
		mcpServer: server.NewMCPServer("contextf", version),
	}
	s.registerTools()
	return s
}

// Serve blocks, handling MCP requests on stdin/stdout until EOF.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("build_context",
		mcp.WithDescription("Search the document corpus for patterns and assemble a token-budgeted context with per-file provenance. Provide either a query (patterns are derived from it) or explicit comma-separated patterns."),
		mcp.WithString("query",
			mcp.Description("Free-form search query; patterns are generated from it when no explicit patterns are given"),
		),
		mcp.WithString("patterns",
			mcp.Description("Comma-separated literal search patterns; bypasses pattern generation"),
		),
		mcp.WithString("docs_path",
			mcp.Description("Directory to search; defaults to the configured docs path"),
		),
		mcp.WithNumber("max_tokens",
			mcp.Description("Global token budget for the assembled context; defaults to the configured budget"),
		),
	), s.handleBuildContext)

	s.mcpServer.AddTool(mcp.NewTool("count_tokens",
		mcp.WithDescription("Count tokens in a text string using the configured tokenizer encoding."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to count tokens for"),
		),
	), s.handleCountTokens)
}
