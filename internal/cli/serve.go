package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/mcp"
	"github.com/adc77/contextF/internal/tokenizer"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server for agent integration",
		Long: `Start the Model Context Protocol server over stdio.

MCP-compatible agents (Claude Desktop, Cursor, and others) can then call the
build_context and count_tokens tools directly.

Example Claude Desktop configuration:
  {
    "mcpServers": {
      "contextf": { "command": "contextf", "args": ["serve"] }
    }
  }`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			tok, err := tokenizer.New(cfg.Tokens.Encoding)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "contextf MCP server listening on stdio (docs: %s)\n", cfg.Search.DocsPath)
			return mcp.NewServer(cfg, tok, newGenerator(cfg), version).Serve()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")

	return cmd
}
