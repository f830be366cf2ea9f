package printf

import (
	"fmt"
	"io"
)

// Layout selects how [Explain] renders a format string.
type Layout string

const (
	LayoutYAML  Layout = "yaml"
	LayoutJSON  Layout = "json"
	LayoutTable Layout = "table"
	LayoutASCII Layout = "ascii"
)

var layouts = []Layout{LayoutYAML, LayoutJSON, LayoutTable, LayoutASCII}

// String returns the layout name.
func (l Layout) String() string { return string(l) }

// Layouts returns all supported layout names.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

// ParseLayout parses a layout name.
func ParseLayout(s string) (Layout, error) {
	for _, l := range layouts {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLayout, s)
}

// Explain writes the tokens of format to w in layout l. It never consumes
// arguments, so it shows how a format string will be read without needing
// values for it.
func Explain(w io.Writer, l Layout, format string) error {
	tokens := Tokens(format)
	switch l {
	case LayoutYAML:
		return writeYAML(w, tokens)
	case LayoutJSON:
		return writeJSON(w, tokens)
	case LayoutTable, LayoutASCII:
		return writeTable(w, l, tokens)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedLayout, l)
	}
}
