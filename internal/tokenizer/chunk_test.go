package tokenizer

import (
	"math/rand"
	"reflect"
	"testing"
)

// tricky inputs whose interesting byte pairs must not care where a chunk
// boundary falls: inside quoted fields, inside doubled-quote pairs, and
// exactly at delimiters and CRLF terminators.
var chunkInputs = []string{
	"a,b,c",
	"a,b\r\nc,d\r\n",
	"a,b\nc,d",
	"\"quoted\"",
	"\"with,comma\",plain",
	"\"with\"\"quote\"",
	"\"multi\r\nline\",x",
	",,",
	"a,\n\nb",
	"\"\"\"\"",
	"a,\"b\"\"c\"\"d\",e\r\n1,2,3\r\n",
	"trailing,comma,\n",
	"\r\n\r\n",
	"longfieldlongfieldlongfield,\"longquotedlongquotedlongquoted\"\n",
}

// runChunked feeds the input split at the given cut points and returns the
// callback sequence.
func runChunked(t *testing.T, cfg Config, input string, cuts []int) []string {
	t.Helper()
	rec := &recorder{}
	m := NewMachine(cfg, rec)

	prev := 0
	for _, cut := range cuts {
		if _, err := m.Write([]byte(input[prev:cut])); err != nil {
			t.Fatalf("Write(%q) failed: %v", input[prev:cut], err)
		}
		prev = cut
	}
	if _, err := m.Write([]byte(input[prev:])); err != nil {
		t.Fatalf("Write(%q) failed: %v", input[prev:], err)
	}
	if err := m.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	return rec.events
}

func TestMachine_ChunkInvariance_AllSplits(t *testing.T) {
	for _, cfg := range []Config{
		{Delimiter: ',', Quote: '"'},
		{Delimiter: ',', Quote: '"', EmptyIsNull: true},
	} {
		for _, input := range chunkInputs {
			whole := runChunked(t, cfg, input, nil)

			// Every two-chunk split.
			for cut := 1; cut < len(input); cut++ {
				got := runChunked(t, cfg, input, []int{cut})
				if !reflect.DeepEqual(got, whole) {
					t.Errorf("input %q split at %d: events = %v, want %v",
						input, cut, got, whole)
				}
			}

			// Byte-at-a-time.
			cuts := make([]int, 0, len(input))
			for i := 1; i < len(input); i++ {
				cuts = append(cuts, i)
			}
			if got := runChunked(t, cfg, input, cuts); !reflect.DeepEqual(got, whole) {
				t.Errorf("input %q byte-at-a-time: events = %v, want %v", input, got, whole)
			}
		}
	}
}

func TestMachine_ChunkInvariance_RandomPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := defaultConfig()

	for _, input := range chunkInputs {
		whole := runChunked(t, cfg, input, nil)
		for trial := 0; trial < 50; trial++ {
			var cuts []int
			for pos := 1; pos < len(input); pos++ {
				if rng.Intn(3) == 0 {
					cuts = append(cuts, pos)
				}
			}
			if got := runChunked(t, cfg, input, cuts); !reflect.DeepEqual(got, whole) {
				t.Fatalf("input %q cuts %v: events = %v, want %v", input, cuts, got, whole)
			}
		}
	}
}

// Strict-mode errors must also be split-invariant: same kind, same offset,
// regardless of which call hits the bad byte.
func TestMachine_ChunkInvariance_StrictErrorOffsets(t *testing.T) {
	inputs := []string{"a\"b", "ab,cd\"e", "\"a\"x,y"}
	cfg := Config{Delimiter: ',', Quote: '"', Strict: true}

	for _, input := range inputs {
		wholeErr := func() error {
			m := NewMachine(cfg, &recorder{})
			if _, err := m.Write([]byte(input)); err != nil {
				return err
			}
			return m.Finish()
		}()
		if wholeErr == nil {
			t.Fatalf("input %q: expected an error", input)
		}

		for cut := 1; cut < len(input); cut++ {
			m := NewMachine(cfg, &recorder{})
			_, err := m.Write([]byte(input[:cut]))
			if err == nil {
				_, err = m.Write([]byte(input[cut:]))
			}
			if err == nil {
				err = m.Finish()
			}
			if err == nil || err.Error() != wholeErr.Error() {
				t.Errorf("input %q split at %d: err = %v, want %v", input, cut, err, wholeErr)
			}
		}
	}
}
