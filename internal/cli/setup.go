package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/llm"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive first-time configuration",
		Long:  "Configure the pattern-generation provider, API keys, and docs path for contextF.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			fmt.Println("Welcome to contextF! Let's set up pattern generation.")
			fmt.Println()

			cfg := config.Default()

			fmt.Println("Which LLM should turn queries into search patterns?")
			fmt.Println("  [1] OpenAI (gpt-4.1-mini)")
			fmt.Println("  [2] Claude (Anthropic)")
			fmt.Println("  [3] None (use the query verbatim)")
			fmt.Print("> ")

			switch strings.TrimSpace(readLineBuf(reader)) {
			case "2":
				cfg.LLM.Provider = llm.ProviderClaude
				fmt.Print("Enter your Anthropic API key (or press Enter to set ANTHROPIC_API_KEY later): ")
				if key := readLineBuf(reader); key != "" {
					cfg.Keys.Anthropic = key
				}
			case "3":
				cfg.LLM.Enabled = false
			default:
				cfg.LLM.Provider = llm.ProviderOpenAI
				fmt.Print("Enter your OpenAI API key (or press Enter to set OPENAI_API_KEY later): ")
				if key := readLineBuf(reader); key != "" {
					cfg.Keys.OpenAI = key
				}
			}

			fmt.Println()

			fmt.Printf("Docs directory to search (press Enter for %s): ", cfg.Search.DocsPath)
			if docs := readLineBuf(reader); docs != "" {
				cfg.Search.DocsPath = docs
			}

			fmt.Println()

			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			path, _ := config.GlobalPath()
			fmt.Printf("Configuration saved to %s\n", path)
			fmt.Println("Run `contextf build \"your query\"` to assemble context.")

			return nil
		},
	}
}

// readLineBuf reads a trimmed line from a bufio.Reader.
func readLineBuf(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
