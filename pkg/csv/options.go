package csv

// Options configures a parse or write. It is immutable for the life of one
// logical stream: a Parser captures it at construction time.
type Options struct {
	// Delimiter is the field separator. Default: ','
	Delimiter byte

	// Quote is the quoting byte. Default: '"'
	Quote byte

	// Strict promotes malformed quoting (a bare quote in an unquoted field,
	// a stray byte after a closing quote, an unterminated quoted field) to
	// hard errors instead of best-effort tolerance.
	// Default: false
	Strict bool

	// EmptyIsNull reports zero-length unquoted fields with the null flag
	// set in the field callback, distinguishing them from explicit empty
	// strings ("").
	// Default: false
	EmptyIsNull bool
}

// DefaultOptions returns the default configuration: comma-delimited,
// double-quoted, tolerant.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Quote:     '"',
	}
}

// withDefaults fills zero bytes with the standard dialect so that a
// zero-value Options (or one that only sets flags) is usable.
func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	return o
}

// validDialectByte reports whether b can serve as a delimiter or quote.
func validDialectByte(b byte) bool {
	return b != '\r' && b != '\n'
}

// Validate checks the option combination. Configuration errors are reported
// here, before any bytes are parsed, never during parsing.
func (o Options) Validate() error {
	o = o.withDefaults()
	if !validDialectByte(o.Delimiter) {
		return &OptionsError{Field: "Delimiter", Message: "must not be a newline byte"}
	}
	if !validDialectByte(o.Quote) {
		return &OptionsError{Field: "Quote", Message: "must not be a newline byte"}
	}
	if o.Delimiter == o.Quote {
		return &OptionsError{Field: "Quote", Message: "quote and delimiter are the same byte"}
	}
	return nil
}

// OptionsError represents an invalid option combination.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
