package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/adc77/contextF/internal/assemble"
	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/search"
)

func newWatchCmd() *cobra.Command {
	var (
		configPath string
		patterns   []string
		docsPath   string
		outPath    string
		debounceMs int
	)

	cmd := &cobra.Command{
		Use:   "watch [query]",
		Short: "Rebuild the context whenever the document corpus changes",
		Long: `Start a long-running watcher that monitors the docs directory for file
changes (create, modify, delete) and rebuilds the context into the output
file on every change.

Changes are debounced so that rapid edits are batched into a single rebuild.

Press Ctrl-C to stop.

Examples:
  contextf watch "caching strategy" --out context.md
  contextf watch --pattern "TODO" --docs ./notes --out todos.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if query == "" && len(patterns) == 0 {
				return fmt.Errorf("either a query or at least one --pattern must be provided")
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			docs := docsPath
			if docs == "" {
				docs = cfg.Search.DocsPath
			}

			assembler, _, err := newAssembler(cfg)
			if err != nil {
				return err
			}

			req := assemble.Request{Query: query, Patterns: patterns, DocsPath: docs}

			rebuild := func(ctx context.Context) {
				result, err := assembler.BuildContext(ctx, req)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Rebuild failed: %v\n", err)
					return
				}
				if err := os.WriteFile(outPath, []byte(result.Context), 0o644); err != nil {
					fmt.Fprintf(os.Stderr, "Write %s: %v\n", outPath, err)
					return
				}
				fmt.Printf("Rebuilt %s: %d tokens from %d file(s)\n", outPath, result.ContextTokens, len(result.FilesUsed))
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			if err := addWatchDirs(watcher, docs); err != nil {
				return fmt.Errorf("add watch directories: %w", err)
			}

			debounce := time.Duration(debounceMs) * time.Millisecond
			fmt.Printf("Watching %s for changes (debounce %s). Press Ctrl-C to stop.\n", docs, debounce)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Handle Ctrl-C gracefully.
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			rebuild(ctx)

			timer := time.NewTimer(debounce)
			timer.Stop() // Don't fire immediately.

			for {
				select {
				case <-sigCh:
					fmt.Println("\nStopping watcher.")
					return nil

				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					// New directories need to be watched too.
					if event.Op.Has(fsnotify.Create) {
						if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
							_ = watcher.Add(event.Name)
						}
					}
					timer.Reset(debounce)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

				case <-timer.C:
					rebuild(ctx)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "Literal search pattern (repeatable; bypasses LLM generation)")
	cmd.Flags().StringVarP(&docsPath, "docs", "d", "", "Documents directory (overrides config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "context.md", "File to write the rebuilt context to")
	cmd.Flags().IntVar(&debounceMs, "debounce", 500, "Debounce interval in milliseconds")

	return cmd
}

// addWatchDirs registers docs and all its non-ignored subdirectories.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	ignore := search.NewIgnoreMatcher(root)
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if rel != "." && ignore.Match(rel) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
