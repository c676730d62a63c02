// Package pvl scans PVL/PDS label text into a flat stream of typed
// key-value entries.
//
// PVL is the line-oriented, loosely column-sensitive markup that planetary
// science data products use to describe instrument metadata. This package
// implements the character-level scanning engine and the value
// classification grammar: structural symbols (GROUP, OBJECT, pointers),
// bracketed comments, fixed-column value continuation lines, and the
// ordered rules that assign each raw value a semantic type.
//
// The scanner emits a flat symbol stream. It detects GROUP and OBJECT
// keywords but never assembles nesting; building a document tree from the
// stream, interpreting physical units, and loading files are left to the
// caller.
//
// # Thread Safety
//
// The classification patterns are compiled once and never written after
// setup, so any number of scans may run concurrently over independent
// inputs. A single Scanner owns one mutable cursor and must not be shared
// between goroutines.
//
//	// Safe: concurrent scans of distinct labels
//	go func() { pvl.Parse(label1) }()
//	go func() { pvl.Parse(label2) }()
//
// # Scanning APIs
//
//   - Parse(string) - scans a whole label already in memory
//   - ParseReader(io.Reader) - buffers a reader fully, then scans
//   - Scanner - step-by-step scanning, one entry per Next call
//
// Example:
//
//	pairs, err := pvl.Parse(labelText)
//	if err != nil {
//	    // err joins every line the scanner had to skip
//	}
//	for _, kvp := range pairs {
//	    if name, ok := kvp.Key.Value(); ok && name == "EXPOSURE_DURATION" {
//	        exposure, _ := kvp.Value.Float64()
//	        _ = exposure
//	    }
//	}
package pvl

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/shapestone/shape-pvl/internal/scanner"
)

// KeyValuePair is one scanned entry: the classified left-hand symbol and
// the classified value text of the line, continuation lines included.
type KeyValuePair struct {
	Key   Symbol
	Value Value
}

// Scanner produces key-value entries from one label, one entry per Next
// call. A Scanner owns its cursor exclusively and must not be shared
// between goroutines.
type Scanner struct {
	r        *scanner.Reader
	comments []string
}

// NewScanner creates a scanner over the given label text.
func NewScanner(content string) *Scanner {
	return &Scanner{r: scanner.NewReader(content)}
}

// Next returns the next entry in the label, or io.EOF once the input is
// exhausted.
//
// Comments are consumed silently and recorded (see Comments). Blank lines
// are returned as entries with a BlankLine symbol and empty value.
//
// A failed entry read is recoverable: Next returns the error with the
// cursor moved past the offending line, and the caller may keep calling
// Next for the remaining entries.
func (s *Scanner) Next() (KeyValuePair, error) {
	for !s.r.IsEOF() {
		if s.r.IsAtCommentStart() {
			text, err := s.r.SkipComment()
			if err != nil {
				return KeyValuePair{}, err
			}
			s.comments = append(s.comments, text)
			continue
		}
		if s.r.IsAtLineStart() {
			symText, valText, err := s.r.ReadEntry()
			if err != nil {
				s.skipLine()
				return KeyValuePair{}, err
			}
			return KeyValuePair{Key: newSymbol(symText), Value: NewValue(valText)}, nil
		}
		if _, err := s.r.Advance(); err != nil {
			break
		}
	}
	return KeyValuePair{}, io.EOF
}

// Comments returns the interior text of every comment consumed so far, in
// label order.
func (s *Scanner) Comments() []string {
	return s.comments
}

// skipLine moves the cursor to the start of the next line so scanning can
// resume after a failed entry read.
func (s *Scanner) skipLine() {
	for !s.r.IsEOF() {
		c, err := s.r.CurrentChar()
		if err != nil {
			return
		}
		_, _ = s.r.Advance()
		if c == '\n' {
			return
		}
		if c == '\r' {
			if n, err := s.r.CurrentChar(); err == nil && n == '\n' {
				_, _ = s.r.Advance()
			}
			return
		}
	}
}

// Parse scans a whole label from a string.
//
// Entries that fail to read are skipped and the failures are accumulated;
// the returned error joins all of them and is nil when every line scanned
// cleanly. The successfully read pairs are returned either way.
func Parse(input string) ([]KeyValuePair, error) {
	s := NewScanner(input)
	var pairs []KeyValuePair
	var errs *multierror.Error
	for {
		pair, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs, errs.ErrorOrNil()
}

// ParseReader scans a whole label from an io.Reader.
//
// The reader is buffered fully before scanning: the cursor needs random
// access to the label, and labels are small. The reader can be any
// io.Reader implementation, such as an os.File or strings.Reader.
func ParseReader(r io.Reader) ([]KeyValuePair, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading label")
	}
	return Parse(string(data))
}
