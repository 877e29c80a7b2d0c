package csv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteField(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		opts        Options
		alwaysQuote bool
		want        string
	}{
		{
			name:  "plain field passes through",
			field: "hello",
			opts:  DefaultOptions(),
			want:  "hello",
		},
		{
			name:  "empty field",
			field: "",
			opts:  DefaultOptions(),
			want:  "",
		},
		{
			name:  "delimiter forces quoting",
			field: "a,b",
			opts:  DefaultOptions(),
			want:  `"a,b"`,
		},
		{
			name:  "embedded quote doubled",
			field: `say "hi"`,
			opts:  DefaultOptions(),
			want:  `"say ""hi"""`,
		},
		{
			name:  "newline forces quoting",
			field: "a\nb",
			opts:  DefaultOptions(),
			want:  "\"a\nb\"",
		},
		{
			name:  "carriage return forces quoting",
			field: "a\rb",
			opts:  DefaultOptions(),
			want:  "\"a\rb\"",
		},
		{
			name:        "always quote",
			field:       "plain",
			opts:        DefaultOptions(),
			alwaysQuote: true,
			want:        `"plain"`,
		},
		{
			name:  "custom delimiter triggers quoting",
			field: "a;b",
			opts:  Options{Delimiter: ';', Quote: '"'},
			want:  `"a;b"`,
		},
		{
			name:  "comma not special under custom delimiter",
			field: "a,b",
			opts:  Options{Delimiter: ';', Quote: '"'},
			want:  "a,b",
		},
		{
			name:  "custom quote doubled",
			field: "it's",
			opts:  Options{Delimiter: ',', Quote: '\''},
			want:  "'it''s'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WriteField([]byte(tt.field), tt.opts, tt.alwaysQuote)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

// parse(write(field)) == field for any field content and any consistent
// dialect.
func TestWriteField_RoundTrip(t *testing.T) {
	fields := []string{
		"plain",
		"",
		"a,b",
		`say "hi"`,
		`""`,
		"line1\nline2",
		"crlf\r\nhere",
		"trailing\r",
		",",
		`"`,
		"mixed,\"all\"\nof\rit",
	}

	for _, opts := range []Options{
		DefaultOptions(),
		{Delimiter: ';', Quote: '\''},
		{Delimiter: '\t', Quote: '"'},
	} {
		for _, field := range fields {
			// Two fields per row so the delimiter path is exercised too.
			var data []byte
			data = AppendField(data, []byte(field), opts, false)
			data = append(data, opts.withDefaults().Delimiter)
			data = AppendField(data, []byte(field), opts, true)
			data = append(data, '\n')

			records, err := Parse(data, opts)
			require.NoError(t, err, "field %q opts %+v", field, opts)
			require.Len(t, records, 1)
			assert.Equal(t, []string{field, field}, records[0],
				"field %q opts %+v", field, opts)
		}
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, w.Write([]string{"a", "b,c", `d"e`}))
	require.NoError(t, w.Write([]string{"", "f"}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "a,\"b,c\",\"d\"\"e\"\n,f\n", buf.String())
}

func TestWriter_CRLF(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)
	w.UseCRLF = true

	require.NoError(t, w.WriteAll([][]string{{"a", "b"}, {"c", "d"}}))
	assert.Equal(t, "a,b\r\nc,d\r\n", buf.String())
}

func TestWriter_AlwaysQuote(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)
	w.AlwaysQuote = true

	require.NoError(t, w.WriteAll([][]string{{"a", ""}}))
	assert.Equal(t, "\"a\",\"\"\n", buf.String())
}

func TestWriter_RoundTripThroughParser(t *testing.T) {
	records := [][]string{
		{"name", "notes"},
		{"alice", "likes \"quotes\""},
		{"bob", "multi\nline,with,commas"},
		{"", ""},
	}

	var buf bytes.Buffer
	w, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, w.WriteAll(records))

	got, err := Parse(buf.Bytes(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriter_InvalidOptions(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Options{Delimiter: ';', Quote: ';'})
	require.Error(t, err)
}
