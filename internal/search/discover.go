package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

// FileError records a per-file read or decode failure. These are recoverable:
// the offending file is skipped and the build continues.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// hardIgnored contains directory names that are always skipped regardless of
// .gitignore.
var hardIgnored = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
}

// IgnoreMatcher wraps a gitignore pattern matcher.
type IgnoreMatcher struct {
	gi *gitignore.GitIgnore
}

// NewIgnoreMatcher loads .gitignore from the docs root. If no .gitignore
// file is found, the matcher accepts everything.
func NewIgnoreMatcher(root string) *IgnoreMatcher {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return &IgnoreMatcher{}
	}
	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return &IgnoreMatcher{}
	}
	return &IgnoreMatcher{gi: gi}
}

// Match returns true if the given relative path should be ignored.
func (m *IgnoreMatcher) Match(relPath string) bool {
	if m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(relPath)
}

// Discover walks root and returns the relative paths of files whose base name
// matches one of the glob patterns, in traversal order. The order is stable
// within a call and directly drives the allocator's inclusion order, so it is
// part of the contract, not an incidental detail.
func Discover(root string, globs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("search: docs path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search: docs path %s is not a directory", root)
	}

	ignore := NewIgnoreMatcher(root)

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if hardIgnored[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if ignore.Match(rel) {
			return nil
		}
		for _, g := range globs {
			if ok, _ := filepath.Match(g, d.Name()); ok {
				files = append(files, rel)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search: walk %s: %w", root, err)
	}

	return files, nil
}

// ReadFile reads the file at rel under root as UTF-8 text. Failures are
// wrapped in a *FileError so callers can record and skip them.
func ReadFile(root, rel string) (string, error) {
	content, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return "", &FileError{Path: rel, Err: err}
	}
	return string(content), nil
}
