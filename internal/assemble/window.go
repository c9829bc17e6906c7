package assemble

import (
	"sort"
	"strings"

	"github.com/adc77/contextF/internal/search"
)

// Window is a byte-offset range into a file's text, covering whole lines
// including their terminating newline. Always 0 <= Start <= End <= len(text).
type Window struct {
	Start int
	End   int
}

// Contains reports whether the offset falls inside the window.
func (w Window) Contains(offset int) bool {
	return offset >= w.Start && offset < w.End
}

// extractWindow grows a window symmetrically outward from the match's line,
// one line in each direction per step, until the token budget is met or both
// file boundaries are hit. The match line is always inside the result. An
// out-of-bounds offset clamps to the nearest boundary rather than failing.
func (a *Assembler) extractWindow(text string, m search.Match) Window {
	n := len(text)
	off := m.CharOffset
	if off < 0 {
		off = 0
	}
	if off > n {
		off = n
	}

	start := strings.LastIndexByte(text[:off], '\n') + 1
	end := n
	if idx := strings.IndexByte(text[off:], '\n'); idx >= 0 {
		end = off + idx + 1 // include the newline
	}

	budget := a.cfg.Tokens.ContextWindowTokens
	for a.counter.Count(text[start:end]) < budget {
		grew := false
		if start > 0 {
			start = strings.LastIndexByte(text[:start-1], '\n') + 1
			grew = true
		}
		if end < n {
			if idx := strings.IndexByte(text[end:], '\n'); idx >= 0 {
				end += idx + 1
			} else {
				end = n
			}
			grew = true
		}
		if !grew {
			break
		}
	}

	return Window{Start: start, End: end}
}

// mergeWindows sorts windows by start offset and folds together any pair that
// overlaps or touches at a boundary. The result is pairwise disjoint and
// sorted.
func mergeWindows(windows []Window) []Window {
	if len(windows) == 0 {
		return nil
	}

	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := []Window{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start <= last.End {
			if w.End > last.End {
				last.End = w.End
			}
		} else {
			merged = append(merged, w)
		}
	}

	return merged
}

// elisionMarker separates non-contiguous windows in an excerpt so a reader
// can tell a true gap from continuous text.
const elisionMarker = "\n...\n"

// renderExcerpt concatenates the text slices for each window in start order,
// inserting the elision marker between non-contiguous windows.
func renderExcerpt(text string, windows []Window) string {
	parts := make([]string, len(windows))
	for i, w := range windows {
		parts[i] = strings.TrimSuffix(text[w.Start:w.End], "\n")
	}
	return strings.Join(parts, elisionMarker)
}
