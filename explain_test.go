package printf_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bjaus/printf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseLayout(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    printf.Layout
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":    {input: "yaml", want: printf.LayoutYAML, wantErr: require.NoError},
		"json":    {input: "json", want: printf.LayoutJSON, wantErr: require.NoError},
		"table":   {input: "table", want: printf.LayoutTable, wantErr: require.NoError},
		"ascii":   {input: "ascii", want: printf.LayoutASCII, wantErr: require.NoError},
		"unknown": {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := printf.ParseLayout(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayouts(t *testing.T) {
	t.Parallel()
	got := printf.Layouts()
	assert.Equal(t, []printf.Layout{
		printf.LayoutYAML, printf.LayoutJSON, printf.LayoutTable, printf.LayoutASCII,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, printf.LayoutYAML, printf.Layouts()[0])
	assert.Equal(t, "table", printf.LayoutTable.String())
}

type explained struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Verb   string `json:"verb" yaml:"verb"`
	Offset int    `json:"offset" yaml:"offset"`
}

func TestExplainYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, printf.Explain(&buf, printf.LayoutYAML, "n=%d%"))
	var got []explained
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []explained{
		{Kind: "literal", Text: "n=", Offset: 0},
		{Kind: "directive", Text: "%d", Verb: "d", Offset: 2},
		{Kind: "malformed", Text: "%", Offset: 4},
	}, got)
}

func TestExplainJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, printf.Explain(&buf, printf.LayoutJSON, "%s<%%>"))
	var got []explained
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []explained{
		{Kind: "directive", Text: "%s", Verb: "s", Offset: 0},
		{Kind: "literal", Text: "<", Offset: 2},
		{Kind: "directive", Text: "%%", Verb: "%", Offset: 3},
		{Kind: "literal", Text: ">", Offset: 5},
	}, got)
	assert.Contains(t, buf.String(), `"text": "<"`)
}

func TestExplainEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, printf.Explain(&buf, printf.LayoutJSON, ""))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, printf.Explain(&buf, printf.LayoutYAML, ""))
	assert.Equal(t, "[]\n", buf.String())
}

func TestExplainTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, printf.Explain(&buf, printf.LayoutASCII, "a%d\n"))
	want := strings.Join([]string{
		"+--------+-----------+------+------+",
		"| Offset | Kind      | Verb | Text |",
		"+--------+-----------+------+------+",
		"|      0 | literal   |      | \"a\"  |",
		"|      1 | directive | d    | \"%d\" |",
		"|      3 | literal   |      | \"\\n\" |",
		"+--------+-----------+------+------+",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestExplainTableRounded(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, printf.Explain(&buf, printf.LayoutTable, "%s"))
	want := strings.Join([]string{
		"╭────────┬───────────┬──────┬──────╮",
		"│ Offset │ Kind      │ Verb │ Text │",
		"├────────┼───────────┼──────┼──────┤",
		"│      0 │ directive │ s    │ \"%s\" │",
		"╰────────┴───────────┴──────┴──────╯",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestExplainUnsupportedLayout(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := printf.Explain(&buf, printf.Layout("xml"), "%d")
	require.ErrorIs(t, err, printf.ErrUnsupportedLayout)
}

func TestExplainWriteErrors(t *testing.T) {
	t.Parallel()
	for _, l := range printf.Layouts() {
		t.Run(l.String(), func(t *testing.T) {
			t.Parallel()
			err := printf.Explain(&errWriter{}, l, "a%d")
			require.Error(t, err)
		})
	}
}
