package tokenizer

// Sink receives field and row boundary events from a Machine.
//
// Field receives a read-only view of the field bytes. The view is only valid
// for the duration of the call; the machine reuses the buffer afterwards, so
// a sink that retains content must copy it. With the empty-is-null option
// enabled, null is true for a zero-length field that was not quoted.
//
// Events arrive in strict left-to-right input order. A sink must not call
// back into the machine that is invoking it.
type Sink interface {
	Field(p []byte, null bool)
	EndRow()
}

// SinkFuncs adapts plain functions to the Sink interface. Either function
// may be nil, in which case the corresponding event is dropped.
type SinkFuncs struct {
	OnField func(p []byte, null bool)
	OnRow   func()
}

func (s SinkFuncs) Field(p []byte, null bool) {
	if s.OnField != nil {
		s.OnField(p, null)
	}
}

func (s SinkFuncs) EndRow() {
	if s.OnRow != nil {
		s.OnRow()
	}
}
