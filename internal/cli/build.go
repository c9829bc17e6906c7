package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adc77/contextF/internal/assemble"
	"github.com/adc77/contextF/internal/config"
)

func newBuildCmd() *cobra.Command {
	var (
		configPath string
		patterns   []string
		docsPath   string
		globs      []string
		maxTokens  int
		asJSON     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "build [query]",
		Short: "Build a token-budgeted context from the document corpus",
		Long: `Search the docs directory for pattern matches and assemble the merged,
budget-respecting context.

With a query, search patterns are generated by the configured LLM (falling
back to the query itself). With --pattern, the given patterns are used
directly and no LLM call is made.

Examples:
  contextf build "how does the auth flow work"
  contextf build --pattern "machine learning" --pattern "neural network"
  contextf build "vector search" --docs ./papers --glob "*.md" --max-tokens 8000
  contextf build "indexing" --json > context.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if query == "" && len(patterns) == 0 {
				return fmt.Errorf("either a query or at least one --pattern must be provided")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if maxTokens > 0 {
				cfg.Tokens.MaxContextTokens = maxTokens
			}

			assembler, _, err := newAssembler(cfg)
			if err != nil {
				return err
			}

			req := assemble.Request{
				Query:        query,
				Patterns:     patterns,
				DocsPath:     docsPath,
				FilePatterns: globs,
			}

			var bar *progressbar.ProgressBar
			if !asJSON && term.IsTerminal(int(os.Stderr.Fd())) {
				bar = progressbar.NewOptions(-1,
					progressbar.OptionSetDescription("  Building context"),
					progressbar.OptionSpinnerType(14),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionClearOnFinish(),
				)
			}

			result, err := assembler.BuildContext(context.Background(), req)
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Print(result.Context)
			if result.Context != "" && !strings.HasSuffix(result.Context, "\n") {
				fmt.Println()
			}

			fmt.Fprintf(os.Stderr, "\nPatterns: %s\n", strings.Join(result.Patterns, ", "))
			fmt.Fprintf(os.Stderr, "Context: %d tokens from %d file(s)\n", result.ContextTokens, len(result.FilesUsed))
			if verbose {
				for _, fu := range result.FilesUsed {
					fmt.Fprintf(os.Stderr, "  %s: %d match(es), %d tokens [%s]\n",
						fu.Path, fu.Matches, fu.Tokens, strings.Join(fu.PatternsFound, ", "))
				}
			}
			for _, sk := range result.Skipped {
				fmt.Fprintf(os.Stderr, "  Warning: skipped %s: %s\n", sk.Path, sk.Err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "Literal search pattern (repeatable; bypasses LLM generation)")
	cmd.Flags().StringVarP(&docsPath, "docs", "d", "", "Documents directory (overrides config)")
	cmd.Flags().StringArrayVarP(&globs, "glob", "g", nil, "File glob to search, e.g. \"*.md\" (repeatable; overrides config)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Global token budget (overrides config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print per-file details to stderr")

	return cmd
}
