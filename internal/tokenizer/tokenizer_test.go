package tokenizer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCount(t *testing.T) {
	tok, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if n := tok.Count("Hello, world!"); n <= 0 {
		t.Errorf("expected positive token count, got %d", n)
	}
	if n := tok.Count(""); n != 0 {
		t.Errorf("expected 0 tokens for empty string, got %d", n)
	}
}

func TestNew_BadEncoding(t *testing.T) {
	if _, err := New("no_such_encoding"); err == nil {
		t.Error("expected error for unknown encoding")
	}
}

func TestTruncate(t *testing.T) {
	tok, err := New("cl100k_base")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	long := "This is a fairly long string that should have more than five tokens in total."
	truncated := tok.Truncate(long, 5)

	if len(truncated) >= len(long) {
		t.Error("truncated string should be shorter than original")
	}
	if n := tok.Count(truncated); n > 5 {
		t.Errorf("truncated to 5 tokens but Count says %d", n)
	}

	// A string under budget passes through unchanged.
	if got := tok.Truncate("Hi", 100); got != "Hi" {
		t.Errorf("short string should not be truncated: got %q", got)
	}

	if got := tok.Truncate(long, 0); got != "" {
		t.Errorf("zero budget should yield empty string, got %q", got)
	}
}

func TestCountDir(t *testing.T) {
	tok, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("a.md", "alpha beta gamma delta epsilon")
	write("b.md", "one two")
	write("skip.json", "{}")

	summary, err := tok.CountDir(dir, []string{"*.md"})
	if err != nil {
		t.Fatalf("CountDir: %v", err)
	}

	if summary.TotalFiles != 2 {
		t.Fatalf("total files: got %d, want 2", summary.TotalFiles)
	}
	if summary.TotalTokens <= 0 {
		t.Error("expected positive total token count")
	}
	if summary.MinTokens > summary.MaxTokens {
		t.Errorf("min %d greater than max %d", summary.MinTokens, summary.MaxTokens)
	}
	// Sorted largest first.
	if len(summary.Files) == 2 && summary.Files[0].Tokens < summary.Files[1].Tokens {
		t.Error("files should be sorted by token count, largest first")
	}
}

func TestCountDir_NotADirectory(t *testing.T) {
	tok, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := tok.CountDir(path, nil); err == nil {
		t.Error("expected error for non-directory path")
	}
}
