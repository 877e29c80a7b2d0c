package tokenizer

import "sync"

// fieldBufPool recycles field accumulation buffers across machines. A machine
// takes a buffer lazily on first use and returns it on Reset, so short-lived
// machines (one per batch parse) do not allocate per parse.
var fieldBufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 64)
		return &b
	},
}

func getFieldBuf() []byte {
	p := fieldBufPool.Get().(*[]byte)
	return (*p)[:0]
}

func putFieldBuf(buf []byte) {
	// Don't keep oversized buffers alive in the pool.
	const maxCapacity = 4096
	if buf == nil || cap(buf) > maxCapacity {
		return
	}
	buf = buf[:0]
	fieldBufPool.Put(&buf)
}
