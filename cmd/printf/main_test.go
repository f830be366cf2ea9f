package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args     []string
		want     string
		wantCode int
	}{
		"round trip": {
			args: []string{"Function %s converts %d to hex: %x or %X\\n", "ft_printf", "255", "255", "255"},
			want: "Function ft_printf converts 255 to hex: ff or FF\\n",
		},
		"chars":        {args: []string{"%c%c%c", "abc", "b", "c"}, want: "abc"},
		"empty format": {args: []string{""}, want: ""},
		"prefixed ints": {
			args: []string{"%d %u %x", "-0x10", "0b101", "0o17"},
			want: "-16 5 f",
		},
		"backslash kept": {args: []string{"a\\tb\\n"}, want: "a\\tb\\n"},
		"pointer":       {args: []string{"%p", "0x1000"}, want: "0x1000"},
		"null pointer":  {args: []string{"%p", "0"}, want: "0x0"},
		"percent":       {args: []string{"%d%%", "5"}, want: "5%"},
		"surplus":       {args: []string{"%s", "a", "b"}, want: "a"},
		"malformed":     {args: []string{"%q%d", "1"}, want: "%q1"},
		"skip":          {args: []string{"-malformed=skip", "%q%d", "1"}, want: "1"},
		"strict":        {args: []string{"-malformed=error", "%q"}, wantCode: 1},
		"bad int":       {args: []string{"%d", "ten"}, wantCode: 1},
		"negative u":    {args: []string{"%u", "-1"}, wantCode: 1},
		"empty char":    {args: []string{"%c", ""}, wantCode: 1},
		"missing arg":   {args: []string{"%d"}, wantCode: 1},
		"no format":     {args: nil, wantCode: 2},
		"bad policy":    {args: []string{"-malformed=loud", "x"}, wantCode: 2},
		"bad layout":    {args: []string{"-explain=xml", "x"}, wantCode: 2},
		"unknown flag":  {args: []string{"-width=3", "x"}, wantCode: 2},
		"min int":       {args: []string{"%i", "-9223372036854775808"}, want: "-9223372036854775808"},
		"unicode char":  {args: []string{"[%c]", "日本"}, want: "[日]"},
		"string verbatim": {args: []string{"%s", "%d"}, want: "%d"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			require.Equal(t, tt.wantCode, code, stderr.String())
			if tt.wantCode == 0 {
				assert.Equal(t, tt.want, stdout.String())
			} else {
				assert.NotEmpty(t, stderr.String())
			}
		})
	}
}

func TestRunExplain(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-explain=yaml", "%d items"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "kind: directive")
	assert.Contains(t, stdout.String(), "kind: literal")
}

func TestConvertArgsSkipsPercent(t *testing.T) {
	t.Parallel()
	got, err := convertArgs("%%%d%%%s", []string{"7", "x"})
	require.NoError(t, err)
	require.Len(t, got, 2)
}
