package csv

import "github.com/fieldstream/stream-csv/internal/tokenizer"

// ParseError carries the error kind and the byte offset of the first byte
// that could not be consumed, counted from the start of the logical stream.
type ParseError = tokenizer.ParseError

// Sentinel errors found inside a *ParseError via [errors.Is]. All of them
// are strict-mode only; a tolerant parser never fails on malformed quoting.
var (
	// ErrBareQuote indicates a quote byte in the middle of an unquoted field.
	ErrBareQuote = tokenizer.ErrBareQuote

	// ErrQuote indicates an unexpected byte immediately after a closing quote.
	ErrQuote = tokenizer.ErrQuote

	// ErrUnterminatedQuote indicates the stream ended inside a quoted field.
	// It is reported by Finish, never mid-stream: a quoted field may always
	// continue in the next chunk.
	ErrUnterminatedQuote = tokenizer.ErrUnterminatedQuote
)
