// Package csv provides an incremental, callback-driven CSV tokenizer and a
// complementary field escaper.
//
// The core type is [Parser]: it consumes arbitrary byte chunks and reports
// field and row boundaries through a [Sink], holding all quoting state
// across calls. Feeding a stream in any chunking produces the same callback
// sequence as feeding it whole, so the parser works the same over files,
// sockets, or in-memory buffers.
//
//	var row []string
//	p, _ := csv.NewParser(csv.DefaultOptions(), csv.SinkFuncs{
//	    OnField: func(b []byte, null bool) { row = append(row, string(b)) },
//	    OnRow:   func() { fmt.Println(row); row = nil },
//	})
//	p.Parse(chunk1)
//	p.Parse(chunk2)
//	p.Finish()
//
// [Scanner] wraps a Parser around an io.Reader for record-at-a-time
// consumption, [Writer] and [WriteField] produce correctly escaped output,
// and [Sniffer] guesses the delimiter of unknown input.
package csv

// Parse tokenizes data in one call and returns all records. It is a
// convenience over [Parser] for inputs that are already in memory; the
// null-field distinction is not reported (see [Parser] and [Scanner] for
// that).
func Parse(data []byte, opts Options) ([][]string, error) {
	records := [][]string{}
	var row []string

	p, err := NewParser(opts, SinkFuncs{
		OnField: func(b []byte, null bool) {
			row = append(row, string(b))
		},
		OnRow: func() {
			records = append(records, row)
			row = nil
		},
	})
	if err != nil {
		return nil, err
	}
	defer p.Reset()

	if _, err := p.Parse(data); err != nil {
		return nil, err
	}
	if err := p.Finish(); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate reports whether data is well-formed CSV under the given dialect.
// Malformed quoting is always an error here, regardless of opts.Strict.
func Validate(data []byte, opts Options) error {
	opts.Strict = true
	_, err := Parse(data, opts)
	return err
}
