// Package tokenizer implements an incremental, callback-driven CSV state
// machine.
//
// The machine consumes arbitrary byte chunks and emits field and row
// boundaries through a Sink. All quoting state survives across chunk
// boundaries, so splitting an input stream at any point yields the same
// callback sequence as feeding it whole.
//
// The implementation is table-driven: a 256-entry byte classification table
// (built per machine, since delimiter and quote are configurable) feeds a
// state transition table that fits in L1 cache. Row terminator collapsing
// (CRLF as one boundary) is handled outside the table with a pending-CR flag
// so it works when the CR and LF arrive in different chunks.
package tokenizer

// byteClass partitions the byte alphabet for the transition table.
type byteClass uint8

const (
	classDelim byteClass = iota // configured field delimiter
	classQuote                  // configured quote byte
	classCR                     // \r
	classLF                     // \n
	classOther                  // everything else
	numClasses
)

// state enumerates the tokenizer states.
type state uint8

const (
	stateFieldStart    state = iota // at the start of a field
	stateInField                    // inside an unquoted field
	stateInQuoted                   // inside a quoted field
	stateQuoteInQuoted              // quote seen inside a quoted field
	numStates
)

// action is what a transition does with the current byte.
type action uint8

const (
	actionNone        action = iota // consume byte, no output (tentative close)
	actionAppend                    // append byte to the field buffer
	actionOpenQuote                 // discard opening quote, mark field quoted
	actionAppendQuote               // doubled quote, append one literal quote
	actionEmitField                 // flush the field buffer as one field
	actionEmitRow                   // flush field, then emit a row boundary
	actionError                     // malformed input under strict mode
)

// transition pairs the next state with the action to perform.
type transition struct {
	next state
	act  action
}

// lazyTransitions tolerates malformed quoting; strictTransitions promotes it
// to a terminal error. The two tables differ in exactly two cells.
var (
	lazyTransitions   [numStates][numClasses]transition
	strictTransitions [numStates][numClasses]transition
)

func init() {
	t := &lazyTransitions

	t[stateFieldStart][classQuote] = transition{stateInQuoted, actionOpenQuote}
	t[stateFieldStart][classDelim] = transition{stateFieldStart, actionEmitField}
	t[stateFieldStart][classCR] = transition{stateFieldStart, actionEmitRow}
	t[stateFieldStart][classLF] = transition{stateFieldStart, actionEmitRow}
	t[stateFieldStart][classOther] = transition{stateInField, actionAppend}

	t[stateInField][classQuote] = transition{stateInField, actionAppend}
	t[stateInField][classDelim] = transition{stateFieldStart, actionEmitField}
	t[stateInField][classCR] = transition{stateFieldStart, actionEmitRow}
	t[stateInField][classLF] = transition{stateFieldStart, actionEmitRow}
	t[stateInField][classOther] = transition{stateInField, actionAppend}

	// Inside quotes everything except the quote byte is data, including the
	// delimiter and newlines.
	t[stateInQuoted][classQuote] = transition{stateQuoteInQuoted, actionNone}
	t[stateInQuoted][classDelim] = transition{stateInQuoted, actionAppend}
	t[stateInQuoted][classCR] = transition{stateInQuoted, actionAppend}
	t[stateInQuoted][classLF] = transition{stateInQuoted, actionAppend}
	t[stateInQuoted][classOther] = transition{stateInQuoted, actionAppend}

	t[stateQuoteInQuoted][classQuote] = transition{stateInQuoted, actionAppendQuote}
	t[stateQuoteInQuoted][classDelim] = transition{stateFieldStart, actionEmitField}
	t[stateQuoteInQuoted][classCR] = transition{stateFieldStart, actionEmitRow}
	t[stateQuoteInQuoted][classLF] = transition{stateFieldStart, actionEmitRow}
	t[stateQuoteInQuoted][classOther] = transition{stateInField, actionAppend}

	strictTransitions = lazyTransitions
	strictTransitions[stateInField][classQuote] = transition{stateInField, actionError}
	strictTransitions[stateQuoteInQuoted][classOther] = transition{stateQuoteInQuoted, actionError}
}
