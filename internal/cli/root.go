// Package cli defines the Cobra command tree for the contextf CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adc77/contextF/internal/assemble"
	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/llm"
	"github.com/adc77/contextF/internal/tokenizer"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "contextf",
	Short: "Build bounded, provenance-tracked context from documents for LLM consumption",
	Long: `contextF scans a document corpus for lines matching search patterns,
extracts token-windowed excerpts around each match, and merges them into a
single context string that never exceeds the configured token budget.

Patterns can be given directly or generated from a free-form query by an LLM.

Run 'contextf build "your query"' against a docs directory to get started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newSetupCmd(),
		newBuildCmd(),
		newTokensCmd(),
		newWatchCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("contextf %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// newAssembler wires a tokenizer and optional pattern generator into an
// Assembler from the effective config.
func newAssembler(cfg config.Config) (*assemble.Assembler, *tokenizer.Tokenizer, error) {
	tok, err := tokenizer.New(cfg.Tokens.Encoding)
	if err != nil {
		return nil, nil, err
	}
	return assemble.New(cfg, tok, newGenerator(cfg)), tok, nil
}

// newGenerator returns the configured pattern generator, or nil when LLM
// pattern generation is disabled or no key is available. A nil generator
// makes the assembler fall back to using the query verbatim.
func newGenerator(cfg config.Config) assemble.PatternGenerator {
	if !cfg.LLM.Enabled {
		return nil
	}

	apiKey := cfg.Keys.OpenAI
	if cfg.LLM.Provider == llm.ProviderClaude {
		apiKey = cfg.Keys.Anthropic
	}
	if apiKey == "" {
		return nil
	}

	gen, err := llm.New(cfg.LLM.Provider, cfg.LLM.Model, apiKey, cfg.LLM.Temperature)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using the query as a single pattern\n", err)
		return nil
	}
	return gen
}
