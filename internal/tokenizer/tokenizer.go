package tokenizer

import (
	"encoding/binary"
	"math/bits"
)

// Config fixes the dialect and behavior of a Machine for one logical stream.
// Validation of the configuration (delimiter distinct from quote, neither a
// newline byte) is the caller's responsibility and happens before a Machine
// is built.
type Config struct {
	Delimiter   byte // field separator
	Quote       byte // quoting byte
	Strict      bool // promote malformed quoting to hard errors
	EmptyIsNull bool // flag zero-length unquoted fields as null
}

// Machine is the incremental CSV tokenizer. It is a sequential state
// container: exactly one Write or Finish call may be in flight at a time,
// and the idiomatic use is one Machine per logical stream.
type Machine struct {
	delim       byte
	quote       byte
	strict      bool
	emptyIsNull bool

	classes [256]byteClass
	trans   *[numStates][numClasses]transition

	// Broadcast constants for the SWAR fast paths.
	delimBroadcast uint64
	quoteBroadcast uint64

	sink Sink

	state     state
	field     []byte // bytes of the field not yet emitted
	quoted    bool   // current field began with an opening quote
	rowOpen   bool   // bytes or fields seen since the last row boundary
	pendingCR bool   // a CR terminator may still swallow a following LF
	consumed  int64  // total input bytes processed across all Write calls
	err       error  // terminal error, sticky until Reset
}

// NewMachine builds a machine for the given configuration and sink.
func NewMachine(cfg Config, sink Sink) *Machine {
	m := &Machine{
		delim:          cfg.Delimiter,
		quote:          cfg.Quote,
		strict:         cfg.Strict,
		emptyIsNull:    cfg.EmptyIsNull,
		delimBroadcast: broadcast(cfg.Delimiter),
		quoteBroadcast: broadcast(cfg.Quote),
		sink:           sink,
	}

	if cfg.Strict {
		m.trans = &strictTransitions
	} else {
		m.trans = &lazyTransitions
	}

	for i := range m.classes {
		m.classes[i] = classOther
	}
	m.classes['\r'] = classCR
	m.classes['\n'] = classLF
	m.classes[cfg.Delimiter] = classDelim
	m.classes[cfg.Quote] = classQuote

	return m
}

// Write consumes one chunk of the input stream, firing sink callbacks for
// every completed field and row. It returns the number of bytes consumed
// from p. On a strict-mode violation the count stops at the offending byte,
// the machine becomes terminal, and the returned *ParseError carries the
// stream offset of the failure. Chunk boundaries carry no meaning: any
// partition of the stream into Write calls produces the same callbacks.
func (m *Machine) Write(p []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	i, n := 0, len(p)
	for i < n {
		b := p[i]

		if m.pendingCR {
			m.pendingCR = false
			if b == '\n' {
				// Second half of a CRLF terminator; the row boundary was
				// already emitted for the CR.
				i++
				m.consumed++
				continue
			}
		}

		// Bulk-copy runs of plain data bytes before dispatching on the table.
		switch m.state {
		case stateInField:
			if j := m.scanField(p, i, n); j > i {
				m.appendBytes(p[i:j])
				m.consumed += int64(j - i)
				i = j
				continue
			}
		case stateInQuoted:
			if j := m.scanQuoted(p, i, n); j > i {
				m.appendBytes(p[i:j])
				m.consumed += int64(j - i)
				i = j
				continue
			}
		}

		t := m.trans[m.state][m.classes[b]]
		switch t.act {
		case actionAppend:
			m.appendByte(b)
			m.rowOpen = true
		case actionOpenQuote:
			m.quoted = true
			m.rowOpen = true
		case actionAppendQuote:
			m.appendByte(m.quote)
		case actionEmitField:
			m.emitField()
			m.rowOpen = true
		case actionEmitRow:
			m.emitField()
			m.sink.EndRow()
			m.rowOpen = false
			if b == '\r' {
				m.pendingCR = true
			}
		case actionError:
			m.err = &ParseError{Offset: m.consumed, Err: m.errKind()}
			return i, m.err
		}
		m.state = t.next
		m.consumed++
		i++
	}
	return n, nil
}

// Finish signals end of stream and flushes any trailing field and row. A
// stream that ended inside a quoted field is an error under strict mode;
// under lazy mode the field is flushed as-is. Finish after a terminal error
// re-reports that error.
func (m *Machine) Finish() error {
	if m.err != nil {
		return m.err
	}
	m.pendingCR = false

	switch m.state {
	case stateInQuoted:
		if m.strict {
			m.err = &ParseError{Offset: m.consumed, Err: ErrUnterminatedQuote}
			return m.err
		}
		m.emitField()
		m.sink.EndRow()
	case stateInField, stateQuoteInQuoted:
		// A quote-then-EOF is a properly closed field, not an error.
		m.emitField()
		m.sink.EndRow()
	case stateFieldStart:
		if m.rowOpen {
			// Input ended right after a delimiter: one trailing empty field.
			m.emitField()
			m.sink.EndRow()
		}
	}

	m.state = stateFieldStart
	m.rowOpen = false
	return nil
}

// Reset clears all state, including a terminal error, and returns the
// machine to the start of a fresh logical stream with Consumed() == 0.
func (m *Machine) Reset() {
	putFieldBuf(m.field)
	m.field = nil
	m.state = stateFieldStart
	m.quoted = false
	m.rowOpen = false
	m.pendingCR = false
	m.consumed = 0
	m.err = nil
}

// Consumed returns the total number of input bytes processed so far. After
// an error it equals the stream offset of the first bad byte.
func (m *Machine) Consumed() int64 {
	return m.consumed
}

func (m *Machine) appendByte(b byte) {
	if m.field == nil {
		m.field = getFieldBuf()
	}
	m.field = append(m.field, b)
}

func (m *Machine) appendBytes(p []byte) {
	if m.field == nil {
		m.field = getFieldBuf()
	}
	m.field = append(m.field, p...)
}

func (m *Machine) emitField() {
	null := m.emptyIsNull && len(m.field) == 0 && !m.quoted
	m.sink.Field(m.field, null)
	if m.field != nil {
		m.field = m.field[:0]
	}
	m.quoted = false
}

// errKind picks the sentinel for the single error cell reachable from the
// current state: a quote mid unquoted field, or a stray byte after a
// closing quote.
func (m *Machine) errKind() error {
	if m.state == stateInField {
		return ErrBareQuote
	}
	return ErrQuote
}

// SWAR constants for the null-byte detection trick: the expression
// ((x - lo) & ^x & hi) has a high bit set in every byte of x that is zero.
const (
	swarLo = 0x0101010101010101
	swarHi = 0x8080808080808080
)

// broadcast replicates b into all eight bytes of a word.
func broadcast(b byte) uint64 {
	return uint64(b) * swarLo
}

// scanField returns the end of the run of plain field bytes starting at i:
// the index of the next delimiter, quote, CR, or LF in p[i:n], or n. The
// hot loop checks eight bytes per iteration.
func (m *Machine) scanField(p []byte, i, n int) int {
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(p[i : i+8])

		d := chunk ^ m.delimBroadcast
		q := chunk ^ m.quoteBroadcast
		cr := chunk ^ broadcast('\r')
		lf := chunk ^ broadcast('\n')

		combined := ((d - swarLo) & ^d & swarHi) |
			((q - swarLo) & ^q & swarHi) |
			((cr - swarLo) & ^cr & swarHi) |
			((lf - swarLo) & ^lf & swarHi)

		if combined != 0 {
			return i + bits.TrailingZeros64(combined)/8
		}
		i += 8
	}
	for i < n {
		b := p[i]
		if b == m.delim || b == m.quote || b == '\r' || b == '\n' {
			break
		}
		i++
	}
	return i
}

// scanQuoted returns the end of the run of quoted data bytes starting at i:
// the index of the next quote byte in p[i:n], or n.
func (m *Machine) scanQuoted(p []byte, i, n int) int {
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(p[i : i+8])
		q := chunk ^ m.quoteBroadcast
		if match := (q - swarLo) & ^q & swarHi; match != 0 {
			return i + bits.TrailingZeros64(match)/8
		}
		i += 8
	}
	for i < n && p[i] != m.quote {
		i++
	}
	return i
}
