package assemble

import "errors"

var (
	// ErrNoPatterns means the resolved pattern set was empty: no explicit
	// patterns, no query to fall back to.
	ErrNoPatterns = errors.New("assemble: no search patterns resolved")

	// ErrNoFiles means no file under the docs path matched the file patterns.
	ErrNoFiles = errors.New("assemble: no files matched the file patterns")

	// ErrInvalidBudget means a token budget was zero or negative. This is a
	// configuration failure; running out of budget during a build is handled
	// by truncation, never by an error.
	ErrInvalidBudget = errors.New("assemble: token budget must be positive")
)
