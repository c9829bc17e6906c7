// Package assemble builds a bounded-size context string from a document
// corpus by matching search patterns, extracting token-windowed excerpts
// around each match, and merging them under a global token budget.
package assemble

import (
	"context"
	"fmt"
	"strings"

	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/search"
	"github.com/adc77/contextF/internal/tokenizer"
)

// PatternGenerator turns a free-form query into literal search patterns.
// Implementations live in internal/llm.
type PatternGenerator interface {
	Patterns(ctx context.Context, query string, max int) ([]string, error)
}

// Request names what to search for and where. Zero-value fields fall back to
// the assembler's configuration.
type Request struct {
	Query        string
	Patterns     []string
	DocsPath     string
	FilePatterns []string
}

// FileExcerpt is one file's merged contribution, built fresh on every call.
type FileExcerpt struct {
	Path          string
	Text          string
	Tokens        int
	Matches       []search.Match
	PatternsFound []string // first-seen order
}

// FileUsage summarises an admitted file's contribution.
type FileUsage struct {
	Path          string   `json:"path"`
	Matches       int      `json:"matches"`
	Tokens        int      `json:"tokens"`
	PatternsFound []string `json:"patterns_found"`
}

// FileMatches lists the matches recorded for one admitted file.
type FileMatches struct {
	Path    string         `json:"path"`
	Matches []search.Match `json:"matches"`
}

// SkippedFile records a file that failed to read and was left out.
type SkippedFile struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// Result is the sole output of a build. It is assembled once and never
// mutated afterward. FilesUsed and Matches preserve discovery order,
// restricted to admitted files.
type Result struct {
	Context       string        `json:"context"`
	ContextTokens int           `json:"context_tokens"`
	Patterns      []string      `json:"patterns"`
	FilesUsed     []FileUsage   `json:"files_used"`
	Matches       []FileMatches `json:"matches"`
	Skipped       []SkippedFile `json:"skipped,omitempty"`
}

// Assembler runs the search-and-window pipeline. Each BuildContext call is
// independent; an Assembler is safe for concurrent use as long as its counter
// and generator are.
type Assembler struct {
	cfg     config.Config
	counter tokenizer.Counter
	gen     PatternGenerator // nil disables LLM pattern generation
}

// New creates an Assembler. gen may be nil, in which case queries are used
// verbatim as single patterns.
func New(cfg config.Config, counter tokenizer.Counter, gen PatternGenerator) *Assembler {
	return &Assembler{cfg: cfg, counter: counter, gen: gen}
}

// BuildContext assembles a context for the request. Per-file read failures
// are recorded in Result.Skipped and do not abort the call; empty pattern
// resolution and invalid budgets do.
func (a *Assembler) BuildContext(ctx context.Context, req Request) (*Result, error) {
	patterns, err := a.resolvePatterns(ctx, req)
	if err != nil {
		return nil, err
	}

	docsPath := req.DocsPath
	if docsPath == "" {
		docsPath = a.cfg.Search.DocsPath
	}
	filePatterns := req.FilePatterns
	if len(filePatterns) == 0 {
		filePatterns = a.cfg.Search.FilePatterns
	}

	files, err := search.Discover(docsPath, filePatterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v under %s", ErrNoFiles, filePatterns, docsPath)
	}

	var (
		excerpts []FileExcerpt
		skipped  []SkippedFile
	)
	for _, path := range files {
		text, err := search.ReadFile(docsPath, path)
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: path, Err: err.Error()})
			continue
		}

		matches := search.FindMatches(text, patterns, a.cfg.Search.CaseSensitive, a.cfg.Search.MaxMatchesPerFile)
		matches = search.DedupeMatches(matches, a.cfg.Search.MaxMatchesPerFile)
		if len(matches) == 0 {
			continue // file contributes nothing
		}
		for i := range matches {
			matches[i].Path = path
		}

		windows := make([]Window, 0, len(matches))
		for _, m := range matches {
			windows = append(windows, a.extractWindow(text, m))
		}
		merged := mergeWindows(windows)
		excerpt := renderExcerpt(text, merged)

		excerpts = append(excerpts, FileExcerpt{
			Path:          path,
			Text:          excerpt,
			Tokens:        a.counter.Count(excerpt),
			Matches:       matches,
			PatternsFound: patternsFound(matches),
		})
	}

	joinerTokens := a.counter.Count(blockJoiner)
	overhead := func(path string, first bool) int {
		cost := a.counter.Count(fileHeader(path))
		if !first {
			cost += joinerTokens
		}
		return cost
	}

	admitted, _, err := a.allocate(excerpts, overhead)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Patterns: patterns,
		Skipped:  skipped,
	}

	blocks := make([]string, 0, len(admitted))
	for _, e := range admitted {
		blocks = append(blocks, fileHeader(e.Path)+e.Text)
		result.FilesUsed = append(result.FilesUsed, FileUsage{
			Path:          e.Path,
			Matches:       len(e.Matches),
			Tokens:        e.Tokens,
			PatternsFound: e.PatternsFound,
		})
		result.Matches = append(result.Matches, FileMatches{Path: e.Path, Matches: e.Matches})
	}

	result.Context = strings.Join(blocks, blockJoiner)
	result.ContextTokens = a.counter.Count(result.Context)
	if result.ContextTokens > a.cfg.Tokens.MaxContextTokens {
		// Tokenization across block boundaries can differ slightly from the
		// per-block sum; clamp rather than fail.
		result.Context = a.counter.Truncate(result.Context, a.cfg.Tokens.MaxContextTokens)
		result.ContextTokens = a.counter.Count(result.Context)
	}

	return result, nil
}

// resolvePatterns picks the search patterns: explicit patterns win, then LLM
// generation from the query, then the query itself as a single pattern.
// Everything is capped at max_patterns_per_query, first N kept.
func (a *Assembler) resolvePatterns(ctx context.Context, req Request) ([]string, error) {
	maxPatterns := a.cfg.Search.MaxPatternsPerQuery

	if len(req.Patterns) > 0 {
		patterns := req.Patterns
		if len(patterns) > maxPatterns {
			patterns = patterns[:maxPatterns]
		}
		return patterns, nil
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrNoPatterns
	}

	if a.gen != nil && a.cfg.LLM.Enabled {
		patterns, err := a.gen.Patterns(ctx, query, maxPatterns)
		if err == nil && len(patterns) > 0 {
			if len(patterns) > maxPatterns {
				patterns = patterns[:maxPatterns]
			}
			return patterns, nil
		}
		// Generation failed or came back empty: the query itself is the
		// configured fallback.
	}

	return []string{query}, nil
}

const blockJoiner = "\n\n"

func fileHeader(path string) string {
	return fmt.Sprintf("--- File: %s ---\n", path)
}

func patternsFound(matches []search.Match) []string {
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if seen[m.Pattern] {
			continue
		}
		seen[m.Pattern] = true
		out = append(out, m.Pattern)
	}
	return out
}
