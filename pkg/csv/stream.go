package csv

import (
	"io"

	"github.com/pkg/errors"
)

// defaultChunkSize is the read size for Scanner. 8KB balances syscall count
// against the latency of the first record.
const defaultChunkSize = 8 * 1024

// Field is one decoded value of a record. Null is only ever set when the
// EmptyIsNull option is enabled, for zero-length unquoted fields.
type Field struct {
	Value string
	Null  bool
}

// Record is one row of decoded fields.
type Record []Field

// Strings returns the field values, dropping the null distinction.
func (r Record) Strings() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.Value
	}
	return out
}

// Scanner provides record-at-a-time reading of a CSV stream from an
// io.Reader. It reads fixed-size chunks and feeds them through a Parser, so
// memory use is bounded by the chunk size plus the largest in-progress row.
//
//	scanner, err := csv.NewScanner(file, csv.DefaultOptions())
//	for scanner.Scan() {
//	    fmt.Println(scanner.Record().Strings())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	r io.Reader
	p *Parser

	buf   []byte
	queue []Record // completed rows not yet handed out
	cur   Record   // fields of the row being assembled
	rec   Record   // most recently returned row

	err      error
	finished bool
}

// NewScanner validates opts and returns a scanner over r.
func NewScanner(r io.Reader, opts Options) (*Scanner, error) {
	s := &Scanner{
		r:   r,
		buf: make([]byte, defaultChunkSize),
	}
	p, err := NewParser(opts, SinkFuncs{
		OnField: func(b []byte, null bool) {
			s.cur = append(s.cur, Field{Value: string(b), Null: null})
		},
		OnRow: func() {
			s.queue = append(s.queue, s.cur)
			s.cur = nil
		},
	})
	if err != nil {
		return nil, err
	}
	s.p = p
	return s, nil
}

// Scan advances to the next record. It returns false at end of stream or on
// error; Err tells the two apart. Records completed before a failure are
// still delivered in order before Scan starts returning false.
func (s *Scanner) Scan() bool {
	for len(s.queue) == 0 && s.err == nil && !s.finished {
		s.fill()
	}
	if len(s.queue) == 0 {
		return false
	}
	s.rec = s.queue[0]
	s.queue = s.queue[1:]
	return true
}

// fill reads one chunk and feeds it to the parser.
func (s *Scanner) fill() {
	n, err := s.r.Read(s.buf)
	if n > 0 {
		if _, perr := s.p.Parse(s.buf[:n]); perr != nil {
			s.err = perr
			return
		}
	}
	if err == io.EOF {
		s.finished = true
		if ferr := s.p.Finish(); ferr != nil {
			s.err = ferr
		}
		return
	}
	if err != nil {
		s.err = errors.Wrap(err, "csv: read")
	}
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first error encountered, nil at a clean end of stream.
func (s *Scanner) Err() error {
	return s.err
}

// Consumed returns the number of input bytes tokenized so far. After a
// parse error it is the stream offset of the first bad byte.
func (s *Scanner) Consumed() int64 {
	return s.p.Consumed()
}
