// Package csv provides CSV dialect detection.
package csv

import "bytes"

// candidateDelimiters are tried in order; earlier candidates win ties.
var candidateDelimiters = []byte{',', '\t', ';', '|'}

// Sniffer guesses the field delimiter from a sample of the input. For
// useful results provide at least two complete lines.
type Sniffer struct {
	sample []byte
}

// NewSniffer creates a Sniffer over a sample of CSV data.
func NewSniffer(sample []byte) *Sniffer {
	return &Sniffer{sample: sample}
}

// Detect returns ready-to-use Options with the detected delimiter. When no
// candidate matches, the default comma dialect is returned.
func (s *Sniffer) Detect() Options {
	opts := DefaultOptions()
	opts.Delimiter = s.DetectDelimiter()
	return opts
}

// DetectDelimiter scores each candidate delimiter by tokenizing the sample
// with it and checking how consistent the per-row field counts are. Running
// the real tokenizer (rather than counting bytes per line) keeps delimiters
// and newlines inside quoted fields from skewing the counts.
func (s *Sniffer) DetectDelimiter() byte {
	best := byte(',')
	bestScore := 0

	for _, delim := range candidateDelimiters {
		records, err := Parse(s.sample, Options{Delimiter: delim, Quote: '"'})
		if err != nil || len(records) == 0 {
			continue
		}

		// The sample may be cut mid-row; an incomplete trailing row would
		// spoil the consistency check.
		if len(records) > 1 && !endsWithNewline(s.sample) {
			records = records[:len(records)-1]
		}

		// Fewer than two fields per row means the delimiter never appeared.
		fields := len(records[0])
		if fields < 2 {
			continue
		}

		score := fields - 1
		consistent := true
		for _, rec := range records[1:] {
			if len(rec) != fields {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}

		if score > bestScore {
			best = delim
			bestScore = score
		}
	}

	return best
}

func endsWithNewline(p []byte) bool {
	return len(p) > 0 && (bytes.HasSuffix(p, []byte("\n")) || bytes.HasSuffix(p, []byte("\r")))
}
