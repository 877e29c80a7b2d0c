package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed input. All of them are strict-mode only; in
// lazy mode the same situations are tolerated per the transition table.
var (
	// ErrBareQuote indicates a quote byte in the middle of an unquoted field.
	ErrBareQuote = errors.New("bare quote in non-quoted field")

	// ErrQuote indicates an unexpected byte immediately after a closing quote.
	ErrQuote = errors.New("unexpected character after closing quote")

	// ErrUnterminatedQuote indicates the stream ended inside a quoted field.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
)

// ParseError carries the error kind and the byte offset of the failure,
// counted from the start of the logical stream across all Write calls.
type ParseError struct {
	Offset int64 // offset of the first byte that could not be consumed
	Err    error // one of the sentinel errors above
}

// Error returns a formatted message with the stream offset.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel for use with [errors.Is].
func (e *ParseError) Unwrap() error {
	return e.Err
}
