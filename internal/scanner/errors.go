package scanner

import "github.com/pkg/errors"

// Error kinds surfaced by the reader. End-of-input is reported as io.EOF.
//
// Callers should compare with errors.Is: positional context is attached by
// wrapping these sentinels, never by replacing them.
var (
	// ErrSyntax reports structurally invalid input, such as a value
	// continuation line with no entry before it.
	ErrSyntax = errors.New("pvl: syntax error")

	// ErrNotComment reports a comment skip attempted when the reader is not
	// positioned at a comment opening. This is caller misuse, not bad input.
	ErrNotComment = errors.New("pvl: not positioned at a comment opening")

	// ErrInternal reports a violated reader invariant, such as a symbol read
	// attempted away from a line start.
	ErrInternal = errors.New("pvl: reader invariant violated")
)
