package csv

import "github.com/fieldstream/stream-csv/internal/tokenizer"

// Sink receives field and row boundary events in strict left-to-right input
// order. Field views are only valid for the duration of the callback; a
// sink that retains content must copy it. A sink must not call back into
// the Parser that is invoking it.
type Sink = tokenizer.Sink

// SinkFuncs adapts plain functions (typically closures over caller state)
// to the Sink interface.
type SinkFuncs = tokenizer.SinkFuncs

// Parser is the incremental tokenizer for one logical CSV stream.
//
// A Parser is a sequential state container: it is not safe for concurrent
// use, and exactly one Parse or Finish call may be in flight at a time. Use
// one Parser per stream rather than sharing.
type Parser struct {
	m *tokenizer.Machine
}

// NewParser validates opts and builds a parser that reports to sink.
func NewParser(opts Options, sink Sink) (*Parser, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	o := opts.withDefaults()
	return &Parser{
		m: tokenizer.NewMachine(tokenizer.Config{
			Delimiter:   o.Delimiter,
			Quote:       o.Quote,
			Strict:      o.Strict,
			EmptyIsNull: o.EmptyIsNull,
		}, sink),
	}, nil
}

// Parse consumes the next chunk of the stream, invoking the sink for every
// completed field and row. It returns the number of bytes consumed from p;
// on a strict-mode violation the count stops at the offending byte and the
// error is a *ParseError carrying the stream offset. After an error the
// parser is terminal: further calls re-report the same error until Reset.
func (p *Parser) Parse(b []byte) (int, error) {
	return p.m.Write(b)
}

// Finish signals end of stream, flushing any trailing field and row.
func (p *Parser) Finish() error {
	return p.m.Finish()
}

// Reset clears all state, including a terminal error, making the parser
// ready for a new logical stream with Consumed() == 0.
func (p *Parser) Reset() {
	p.m.Reset()
}

// Consumed returns the total number of bytes processed across all Parse
// calls. After an error it equals the offset of the first bad byte.
func (p *Parser) Consumed() int64 {
	return p.m.Consumed()
}
