package assemble

import (
	"strings"
	"testing"

	"github.com/adc77/contextF/internal/config"
	"github.com/adc77/contextF/internal/search"
)

func newTestAssembler(windowTokens, maxFile, maxContext int) *Assembler {
	cfg := config.Default()
	cfg.Tokens.ContextWindowTokens = windowTokens
	cfg.Tokens.MaxFileTokens = maxFile
	cfg.Tokens.MaxContextTokens = maxContext
	return New(cfg, wordCounter{}, nil)
}

func TestExtractWindow_MatchLineOnly(t *testing.T) {
	text := "first line here\nsecond line here\nthird line here\n"
	a := newTestAssembler(1, 1000, 1000)

	m := search.Match{LineNumber: 2, CharOffset: strings.Index(text, "second")}
	w := a.extractWindow(text, m)

	got := text[w.Start:w.End]
	if got != "second line here\n" {
		t.Errorf("tight budget should yield just the match line, got %q", got)
	}
}

func TestExtractWindow_GrowsSymmetrically(t *testing.T) {
	text := "one\ntwo\nthree\nfour\nfive\n"
	a := newTestAssembler(3, 1000, 1000)

	m := search.Match{LineNumber: 3, CharOffset: strings.Index(text, "three")}
	w := a.extractWindow(text, m)

	got := text[w.Start:w.End]
	if !strings.Contains(got, "two") || !strings.Contains(got, "four") {
		t.Errorf("window should grow in both directions, got %q", got)
	}
	if !strings.Contains(got, "three") {
		t.Errorf("match line must never be dropped, got %q", got)
	}
}

func TestExtractWindow_BoundedByFile(t *testing.T) {
	text := "alpha\nbeta\n"
	a := newTestAssembler(100, 1000, 1000)

	m := search.Match{LineNumber: 1, CharOffset: 0}
	w := a.extractWindow(text, m)

	if w.Start != 0 || w.End != len(text) {
		t.Errorf("large budget should cover the whole file, got [%d,%d)", w.Start, w.End)
	}
}

func TestExtractWindow_OutOfBoundsOffset(t *testing.T) {
	text := "only line\n"
	a := newTestAssembler(1, 1000, 1000)

	w := a.extractWindow(text, search.Match{CharOffset: len(text) + 50})
	if w.Start < 0 || w.End > len(text) || w.Start > w.End {
		t.Errorf("out-of-bounds offset should clamp, got [%d,%d)", w.Start, w.End)
	}

	w = a.extractWindow(text, search.Match{CharOffset: -7})
	if w.Start != 0 {
		t.Errorf("negative offset should clamp to start, got [%d,%d)", w.Start, w.End)
	}
}

func TestExtractWindow_ContainsMatchOffset(t *testing.T) {
	text := "aaa\nbbb\nccc target ccc\nddd\n"
	a := newTestAssembler(2, 1000, 1000)

	off := strings.Index(text, "target")
	w := a.extractWindow(text, search.Match{CharOffset: off})
	if !w.Contains(off) {
		t.Errorf("window [%d,%d) must contain the match offset %d", w.Start, w.End, off)
	}
}

func TestMergeWindows(t *testing.T) {
	cases := []struct {
		name string
		in   []Window
		want []Window
	}{
		{"empty", nil, nil},
		{"disjoint", []Window{{0, 5}, {10, 15}}, []Window{{0, 5}, {10, 15}}},
		{"overlapping", []Window{{0, 8}, {5, 12}}, []Window{{0, 12}}},
		{"touching", []Window{{0, 5}, {5, 9}}, []Window{{0, 9}}},
		{"contained", []Window{{0, 20}, {5, 10}}, []Window{{0, 20}}},
		{"unsorted transitive", []Window{{10, 15}, {0, 6}, {5, 11}}, []Window{{0, 15}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mergeWindows(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("window %d: got %v, want %v", i, got[i], tc.want[i])
				}
			}
			// Non-overlap invariant: strictly increasing, disjoint.
			for i := 1; i < len(got); i++ {
				if got[i].Start <= got[i-1].End {
					t.Errorf("windows %d and %d overlap after merge: %v", i-1, i, got)
				}
			}
		})
	}
}

func TestRenderExcerpt_ElisionMarker(t *testing.T) {
	text := "aaa\nbbb\nccc\nddd\neee\n"

	// Windows covering lines 1 and 5 only.
	excerpt := renderExcerpt(text, []Window{{0, 4}, {16, 20}})
	want := "aaa" + elisionMarker + "eee"
	if excerpt != want {
		t.Errorf("got %q, want %q", excerpt, want)
	}

	// A single window renders with no marker.
	if got := renderExcerpt(text, []Window{{0, 8}}); strings.Contains(got, "...") {
		t.Errorf("contiguous excerpt should have no elision marker: %q", got)
	}
}
