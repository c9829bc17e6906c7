package tokenizer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileCount pairs a file path with its token count.
type FileCount struct {
	Path   string
	Tokens int
}

// DirSummary aggregates token counts across a directory.
type DirSummary struct {
	Files       []FileCount
	TotalFiles  int
	TotalTokens int
	AvgTokens   int
	MinTokens   int
	MaxTokens   int
}

// CountFile counts the tokens in a single file.
func (t *Tokenizer) CountFile(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("tokenizer: read %s: %w", path, err)
	}
	return t.Count(string(content)), nil
}

// CountDir counts tokens in every file under dir whose base name matches one
// of the glob patterns. Unreadable files are skipped. Results are sorted by
// token count, largest first.
func (t *Tokenizer) CountDir(dir string, globs []string) (*DirSummary, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tokenizer: %s is not a directory", dir)
	}
	if len(globs) == 0 {
		globs = []string{"*.md", "*.txt"}
	}

	summary := &DirSummary{}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil // Skip unreadable entries.
		}
		matched := false
		for _, g := range globs {
			if ok, _ := filepath.Match(g, d.Name()); ok {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}
		n, err := t.CountFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return nil
		}
		summary.Files = append(summary.Files, FileCount{Path: path, Tokens: n})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tokenizer: walk %s: %w", dir, err)
	}

	summary.TotalFiles = len(summary.Files)
	if summary.TotalFiles == 0 {
		return summary, nil
	}

	summary.MinTokens = summary.Files[0].Tokens
	for _, fc := range summary.Files {
		summary.TotalTokens += fc.Tokens
		if fc.Tokens < summary.MinTokens {
			summary.MinTokens = fc.Tokens
		}
		if fc.Tokens > summary.MaxTokens {
			summary.MaxTokens = fc.Tokens
		}
	}
	summary.AvgTokens = summary.TotalTokens / summary.TotalFiles

	sort.SliceStable(summary.Files, func(i, j int) bool {
		return summary.Files[i].Tokens > summary.Files[j].Tokens
	})

	return summary, nil
}
