package search

import (
	"strings"
	"testing"
)

func TestFindMatches_Basic(t *testing.T) {
	text := "machine learning is great\nnothing here\ndeep learning too\n"

	matches := FindMatches(text, []string{"learning"}, false, 10)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	if matches[0].LineNumber != 1 {
		t.Errorf("first match line: got %d, want 1", matches[0].LineNumber)
	}
	if matches[0].LineText != "machine learning is great" {
		t.Errorf("first match text: got %q", matches[0].LineText)
	}
	if matches[1].LineNumber != 3 {
		t.Errorf("second match line: got %d, want 3", matches[1].LineNumber)
	}

	// CharOffset points at the matched substring inside the full text.
	for _, m := range matches {
		got := text[m.CharOffset : m.CharOffset+len("learning")]
		if got != "learning" {
			t.Errorf("offset %d does not point at the pattern: %q", m.CharOffset, got)
		}
	}
}

func TestFindMatches_CaseInsensitive(t *testing.T) {
	matches := FindMatches("we train ml models here\n", []string{"ML"}, false, 10)
	if len(matches) != 1 {
		t.Fatalf("case-insensitive match: got %d matches, want 1", len(matches))
	}
	if matches[0].Pattern != "ML" {
		t.Errorf("match should record the pattern as given: got %q", matches[0].Pattern)
	}
}

func TestFindMatches_CaseSensitive(t *testing.T) {
	matches := FindMatches("we train ml models here\n", []string{"ML"}, true, 10)
	if len(matches) != 0 {
		t.Fatalf("case-sensitive search should not match: got %d", len(matches))
	}
}

func TestFindMatches_MultiplePatternsSameLine(t *testing.T) {
	matches := FindMatches("alpha and beta\n", []string{"alpha", "beta"}, false, 10)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2 (one per pattern)", len(matches))
	}
	// Pattern order as given.
	if matches[0].Pattern != "alpha" || matches[1].Pattern != "beta" {
		t.Errorf("pattern order not preserved: %q, %q", matches[0].Pattern, matches[1].Pattern)
	}
}

func TestFindMatches_Cap(t *testing.T) {
	text := strings.Repeat("target line\n", 20)
	matches := FindMatches(text, []string{"target"}, false, 3)
	if len(matches) != 3 {
		t.Fatalf("cap not applied: got %d matches, want 3", len(matches))
	}
}

func TestFindMatches_CRLF(t *testing.T) {
	matches := FindMatches("first target\r\nsecond target\r\n", []string{"target"}, false, 10)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if strings.HasSuffix(matches[0].LineText, "\r") {
		t.Error("line text should not carry the trailing \\r")
	}
}

func TestDedupeMatches(t *testing.T) {
	matches := []Match{
		{LineNumber: 1, LineText: "Shared Header"},
		{LineNumber: 5, LineText: "shared header"},
		{LineNumber: 9, LineText: "unique line"},
	}

	unique := DedupeMatches(matches, 10)
	if len(unique) != 2 {
		t.Fatalf("got %d unique matches, want 2", len(unique))
	}
	if unique[0].LineNumber != 1 || unique[1].LineNumber != 9 {
		t.Errorf("wrong survivors: lines %d, %d", unique[0].LineNumber, unique[1].LineNumber)
	}

	capped := DedupeMatches(matches, 1)
	if len(capped) != 1 {
		t.Fatalf("cap not applied: got %d", len(capped))
	}
}
