package assemble

import "fmt"

// allocate admits excerpts strictly in input order until the global budget is
// exhausted. Each excerpt is first clamped to max_file_tokens by prefix
// truncation; the first excerpt that no longer fits the remaining budget is
// truncated to exactly that remainder and becomes the last one admitted.
// overhead is the per-file token cost of the boundary marker (plus joiner for
// every file after the first), charged against the budget so the final
// concatenation cannot overflow it.
//
// The policy is greedy and order-preserving: files discovered earlier win.
func (a *Assembler) allocate(excerpts []FileExcerpt, overhead func(path string, first bool) int) ([]FileExcerpt, int, error) {
	maxContext := a.cfg.Tokens.MaxContextTokens
	maxFile := a.cfg.Tokens.MaxFileTokens
	if maxContext <= 0 {
		return nil, 0, fmt.Errorf("%w: max_context_tokens %d", ErrInvalidBudget, maxContext)
	}
	if maxFile <= 0 {
		return nil, 0, fmt.Errorf("%w: max_file_tokens %d", ErrInvalidBudget, maxFile)
	}

	var admitted []FileExcerpt
	total := 0

	for _, e := range excerpts {
		if e.Tokens > maxFile {
			e.Text = a.counter.Truncate(e.Text, maxFile)
			e.Tokens = a.counter.Count(e.Text)
		}

		cost := overhead(e.Path, len(admitted) == 0)
		remaining := maxContext - total - cost
		if remaining <= 0 {
			break
		}

		if e.Tokens <= remaining {
			admitted = append(admitted, e)
			total += cost + e.Tokens
			continue
		}

		// Truncate to exactly the remaining budget; this file is the last
		// one admitted.
		e.Text = a.counter.Truncate(e.Text, remaining)
		e.Tokens = a.counter.Count(e.Text)
		if e.Tokens > 0 {
			admitted = append(admitted, e)
			total += cost + e.Tokens
		}
		break
	}

	return admitted, total, nil
}
