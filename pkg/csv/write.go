package csv

import (
	"bufio"
	"bytes"
	"io"
)

// AppendField appends the escaped form of field to dst and returns the
// extended slice.
//
// Quoting is applied only when required: when the field contains the
// delimiter, the quote byte, CR, or LF, or when alwaysQuote is set. Inside
// a quoted field every embedded quote byte is doubled; all other bytes pass
// through unchanged, since CSV has no general escape character.
//
// Parsing the output with the same Options yields back exactly the input
// field.
func AppendField(dst, field []byte, opts Options, alwaysQuote bool) []byte {
	o := opts.withDefaults()

	if !alwaysQuote && !fieldNeedsQuoting(field, o.Delimiter, o.Quote) {
		return append(dst, field...)
	}

	dst = append(dst, o.Quote)
	for _, b := range field {
		if b == o.Quote {
			dst = append(dst, o.Quote, o.Quote)
			continue
		}
		dst = append(dst, b)
	}
	return append(dst, o.Quote)
}

// WriteField returns the escaped form of field as a freshly allocated slice.
func WriteField(field []byte, opts Options, alwaysQuote bool) []byte {
	return AppendField(make([]byte, 0, len(field)+2), field, opts, alwaysQuote)
}

// fieldNeedsQuoting reports whether the field can be emitted verbatim.
func fieldNeedsQuoting(field []byte, delim, quote byte) bool {
	return bytes.IndexByte(field, delim) >= 0 ||
		bytes.IndexByte(field, quote) >= 0 ||
		bytes.IndexByte(field, '\r') >= 0 ||
		bytes.IndexByte(field, '\n') >= 0
}

// Writer writes records as CSV to an underlying io.Writer, escaping fields
// with AppendField. Output is buffered; call Flush when done.
type Writer struct {
	// UseCRLF selects \r\n as the row terminator instead of \n.
	UseCRLF bool

	// AlwaysQuote forces quoting of every field.
	AlwaysQuote bool

	opts    Options
	w       *bufio.Writer
	scratch []byte
}

// NewWriter validates opts and returns a writer emitting that dialect.
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Writer{
		opts: opts.withDefaults(),
		w:    bufio.NewWriter(w),
	}, nil
}

// Write emits one record followed by a row terminator.
func (w *Writer) Write(record []string) error {
	w.scratch = w.scratch[:0]
	for i, field := range record {
		if i > 0 {
			w.scratch = append(w.scratch, w.opts.Delimiter)
		}
		w.scratch = AppendField(w.scratch, []byte(field), w.opts, w.AlwaysQuote)
	}
	if w.UseCRLF {
		w.scratch = append(w.scratch, '\r', '\n')
	} else {
		w.scratch = append(w.scratch, '\n')
	}
	_, err := w.w.Write(w.scratch)
	return err
}

// WriteAll emits every record and flushes.
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
