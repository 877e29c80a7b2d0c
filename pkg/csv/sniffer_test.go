package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSniffer_DetectDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   byte
	}{
		{
			name:   "comma",
			sample: "name,age,city\nalice,30,berlin\nbob,25,oslo\n",
			want:   ',',
		},
		{
			name:   "tab",
			sample: "name\tage\tcity\nalice\t30\tberlin\n",
			want:   '\t',
		},
		{
			name:   "semicolon",
			sample: "name;age;city\nalice;30;berlin\n",
			want:   ';',
		},
		{
			name:   "pipe",
			sample: "name|age|city\nalice|30|berlin\n",
			want:   '|',
		},
		{
			name:   "commas inside quotes do not win",
			sample: "\"last, first\";age\n\"doe, jane\";30\n\"roe, rich\";40\n",
			want:   ';',
		},
		{
			name:   "empty sample falls back to comma",
			sample: "",
			want:   ',',
		},
		{
			name:   "no delimiter at all falls back to comma",
			sample: "justoneword\nanother\n",
			want:   ',',
		},
		{
			name:   "truncated trailing row is ignored",
			sample: "a;b;c\nd;e;f\ng;h",
			want:   ';',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSniffer([]byte(tt.sample)).DetectDelimiter()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSniffer_Detect(t *testing.T) {
	opts := NewSniffer([]byte("a|b|c\n1|2|3\n")).Detect()
	assert.Equal(t, byte('|'), opts.Delimiter)
	assert.Equal(t, byte('"'), opts.Quote)
}
