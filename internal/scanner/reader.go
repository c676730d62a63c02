// Package scanner implements the byte-level reading machinery for PVL labels.
//
// A Reader is a cursor over an immutable in-memory label. It works directly
// on bytes: PVL labels are specified as 8-bit clean text, so there is no rune
// decoding and no buffering. All higher-level reads (comments, symbols, value
// lines, continuation stitching) go through the same cursor, and only Advance
// and Jump ever move it.
package scanner

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ContinuationColumns is the number of leading space bytes that marks a line
// as a continuation of the previous entry's value. The format aligns wrapped
// values at a fixed column; a line is a continuation only when this exact run
// of blank columns is present. An off-by-one here silently drops or merges
// label data, so the width lives in one place and is pinned by tests.
const ContinuationColumns = 37

// Reader is a cursor over one PVL label held fully in memory.
//
// The buffer is immutable for the lifetime of the reader and the position is
// owned by exactly one caller; the reader performs no locking. Position is an
// absolute byte offset in [0, len(content)], where len(content) means
// end-of-input.
type Reader struct {
	content string
	pos     int
}

// NewReader creates a reader positioned at the start of content.
func NewReader(content string) *Reader {
	return &Reader{content: content}
}

// Pos returns the current absolute byte offset.
func (r *Reader) Pos() int {
	return r.pos
}

// IsEOF reports whether the cursor is at or past end-of-input.
func (r *Reader) IsEOF() bool {
	return r.pos >= len(r.content)
}

// CharAt returns the byte at absolute offset i, or io.EOF when i is at or
// past end-of-input. io.EOF from a probe is a benign lookahead signal, not
// necessarily a failure.
func (r *Reader) CharAt(i int) (byte, error) {
	if i >= len(r.content) {
		return 0, io.EOF
	}
	return r.content[i], nil
}

// CurrentChar returns the byte under the cursor.
func (r *Reader) CurrentChar() (byte, error) {
	return r.CharAt(r.pos)
}

// PeekChar returns the byte just after the cursor without moving it.
func (r *Reader) PeekChar() (byte, error) {
	return r.CharAt(r.pos + 1)
}

// Advance moves the cursor forward one byte and returns the new current
// byte. It returns io.EOF when the move lands at end-of-input. The position
// never passes end-of-input.
func (r *Reader) Advance() (byte, error) {
	if r.IsEOF() {
		return 0, io.EOF
	}
	r.pos++
	return r.CurrentChar()
}

// Jump moves the cursor forward n bytes, clamped so it never passes
// end-of-input. The clamping lets lookahead code jump near the end of the
// buffer without a hard failure. Jumping while already at end-of-input
// returns io.EOF.
func (r *Reader) Jump(n int) error {
	if r.IsEOF() {
		return io.EOF
	}
	if r.pos+n >= len(r.content) {
		r.pos = len(r.content)
		return nil
	}
	r.pos += n
	return nil
}

// IsAtLineStart reports whether the cursor is at offset 0 or immediately
// after a carriage return or line feed.
func (r *Reader) IsAtLineStart() bool {
	if r.pos == 0 {
		return true
	}
	c, err := r.CharAt(r.pos - 1)
	if err != nil {
		return false
	}
	return c == '\r' || c == '\n'
}

// IsAtCommentStart reports whether the cursor is at a comment opening "/*".
// Near end-of-input, where no two bytes remain, it reports false.
func (r *Reader) IsAtCommentStart() bool {
	if r.pos+1 >= len(r.content) {
		return false
	}
	return r.content[r.pos] == '/' && r.content[r.pos+1] == '*'
}

// IsAtCommentEnd reports whether the cursor is at a comment closing "*/".
func (r *Reader) IsAtCommentEnd() bool {
	if r.pos+1 >= len(r.content) {
		return false
	}
	return r.content[r.pos] == '*' && r.content[r.pos+1] == '/'
}

// SkipComment consumes a "/* ... */" span and returns the interior text with
// the delimiters excluded. The cursor is left exactly past the closing
// delimiter.
//
// Comments do not nest: the first "*/" terminates the span regardless of any
// "/*" inside it. Calling SkipComment when the cursor is not at an opening
// returns ErrNotComment; an unterminated comment returns io.EOF.
func (r *Reader) SkipComment() (string, error) {
	if !r.IsAtCommentStart() {
		return "", errors.Wrapf(ErrNotComment, "offset %d", r.pos)
	}
	interiorStart := r.pos + 2
	for !r.IsAtCommentEnd() {
		if _, err := r.Advance(); err != nil {
			return "", err
		}
	}
	interior := r.content[interiorStart:r.pos]
	_ = r.Jump(2)
	return interior, nil
}

// IsAtContinuation reports whether the cursor is at a value continuation
// line: a line start followed by exactly ContinuationColumns space bytes.
//
// When fewer than ContinuationColumns bytes remain the probe cannot decide
// and returns io.EOF; callers treat that as "no continuation".
func (r *Reader) IsAtContinuation() (bool, error) {
	if !r.IsAtLineStart() {
		return false, nil
	}
	if r.pos+ContinuationColumns >= len(r.content) {
		return false, io.EOF
	}
	for i := 0; i < ContinuationColumns; i++ {
		if r.content[r.pos+i] != ' ' {
			return false, nil
		}
	}
	return true, nil
}

// ReadSymbolText reads the left-hand side of the current line: everything up
// to a line terminator or an equals sign, surrounding whitespace trimmed.
// The terminator or equals sign is not consumed.
//
// The cursor must be at a line start (ErrInternal otherwise) that is not a
// continuation line (ErrSyntax otherwise).
func (r *Reader) ReadSymbolText() (string, error) {
	cont, err := r.IsAtContinuation()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if cont {
		return "", errors.Wrapf(ErrSyntax, "value continuation without a preceding entry at offset %d", r.pos)
	}
	if !r.IsAtLineStart() {
		return "", errors.Wrapf(ErrInternal, "symbol read away from a line start at offset %d", r.pos)
	}

	start := r.pos
	for !r.IsEOF() {
		c, _ := r.CurrentChar()
		if c == '\n' || c == '\r' || c == '=' {
			break
		}
		_, _ = r.Advance()
	}
	return strings.TrimSpace(r.content[start:r.pos]), nil
}

// ReadValueLine reads the remainder of the current line, surrounding
// whitespace trimmed. The line terminator is not consumed.
//
// Any equals sign encountered during the read is skipped together with the
// byte after it, as a stray key/value separator. This matches the label
// grammar exactly and is a known limitation: an "=" inside a quoted value is
// swallowed along with its following byte.
func (r *Reader) ReadValueLine() string {
	var b strings.Builder
	for !r.IsEOF() {
		c, _ := r.CurrentChar()
		if c == '=' {
			if err := r.Jump(2); err != nil {
				break
			}
			var err error
			if c, err = r.CurrentChar(); err != nil {
				break
			}
		}
		if c == '\n' || c == '\r' {
			break
		}
		b.WriteByte(c)
		_, _ = r.Advance()
	}
	return strings.TrimSpace(b.String())
}

// ReadEntry reads one full entry from the current line: the symbol text,
// then the value text with any continuation lines stitched on. Each
// continuation line's remainder is trimmed and appended to the value with no
// separator, in line order. The cursor is left at the start of the line
// following the entry (or at end-of-input).
func (r *Reader) ReadEntry() (symbol, value string, err error) {
	symbol, err = r.ReadSymbolText()
	if err != nil {
		return "", "", err
	}

	value = r.ReadValueLine()
	r.consumeLineBreak()
	for {
		cont, err := r.IsAtContinuation()
		if err != nil || !cont {
			break
		}
		value += r.ReadValueLine()
		r.consumeLineBreak()
	}
	return symbol, value, nil
}

// consumeLineBreak steps past the line terminator under the cursor. A CR/LF
// pair counts as one terminator: stopping between the two bytes would leave
// the cursor on a phantom line start. Does nothing at end-of-input or away
// from a terminator.
func (r *Reader) consumeLineBreak() {
	c, err := r.CurrentChar()
	if err != nil {
		return
	}
	switch c {
	case '\r':
		if n, err := r.Advance(); err == nil && n == '\n' {
			_, _ = r.Advance()
		}
	case '\n':
		_, _ = r.Advance()
	}
}
