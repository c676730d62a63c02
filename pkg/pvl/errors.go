package pvl

import (
	"github.com/pkg/errors"

	"github.com/shapestone/shape-pvl/internal/scanner"
)

// Error kinds reported by this package. End-of-input is reported as io.EOF.
// All of them are sentinels: compare with errors.Is, since contextual detail
// (offsets, raw text) is attached by wrapping.
var (
	// ErrSyntax reports structurally invalid label text.
	ErrSyntax = scanner.ErrSyntax

	// ErrNotComment reports a comment skip attempted away from a comment
	// opening.
	ErrNotComment = scanner.ErrNotComment

	// ErrInternal reports a violated scanning invariant.
	ErrInternal = scanner.ErrInternal

	// ErrInvalidType reports a typed accessor called on a value whose
	// classified type does not match the requested type family.
	ErrInvalidType = errors.New("pvl: classified type does not match requested type")

	// ErrValueParse reports a value whose classified type matched but whose
	// raw text could not be converted to the requested representation.
	ErrValueParse = errors.New("pvl: raw text cannot be converted to requested type")
)
