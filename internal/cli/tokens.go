package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/tokenizer"
)

func newTokensCmd() *cobra.Command {
	var (
		configPath string
		globs      []string
	)

	cmd := &cobra.Command{
		Use:   "tokens <directory>",
		Short: "Report token counts for files in a directory",
		Long: `Count tokens in every matching file under a directory and print a
per-file breakdown plus summary statistics.

Examples:
  contextf tokens ./docs
  contextf tokens ./papers --glob "*.md"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			tok, err := tokenizer.New(cfg.Tokens.Encoding)
			if err != nil {
				return err
			}

			patterns := globs
			if len(patterns) == 0 {
				patterns = cfg.Search.FilePatterns
			}

			summary, err := tok.CountDir(args[0], patterns)
			if err != nil {
				return err
			}

			fmt.Printf("Token count report for %s\n", args[0])
			fmt.Printf("Total files: %d\n", summary.TotalFiles)
			fmt.Printf("Total tokens: %d\n", summary.TotalTokens)
			if summary.TotalFiles > 0 {
				fmt.Printf("Average tokens per file: %d\n", summary.AvgTokens)
				fmt.Printf("Min tokens: %d\n", summary.MinTokens)
				fmt.Printf("Max tokens: %d\n", summary.MaxTokens)
				fmt.Println()
				for _, fc := range summary.Files {
					fmt.Printf("  %-40s %10d tokens\n", filepath.Base(fc.Path), fc.Tokens)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringArrayVarP(&globs, "glob", "g", nil, "File glob to count (repeatable; defaults to configured file patterns)")

	return cmd
}
