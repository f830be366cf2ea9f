package printf

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// frame holds the strokes of a grid. Each joints row lists the left, inner
// and right corner for the top rule, the rule under the header and the
// bottom rule.
type frame struct {
	rule, wall string
	joints     [3][3]string
}

const (
	ruleTop = iota
	ruleHeader
	ruleBottom
)

var frames = map[Layout]frame{
	LayoutTable: {rule: "─", wall: "│", joints: [3][3]string{
		{"╭", "┬", "╮"},
		{"├", "┼", "┤"},
		{"╰", "┴", "╯"},
	}},
	LayoutASCII: {rule: "-", wall: "|", joints: [3][3]string{
		{"+", "+", "+"},
		{"+", "+", "+"},
		{"+", "+", "+"},
	}},
}

// tokenColumn is one column of the explain grid.
type tokenColumn struct {
	title string
	right bool
	cell  func(Token) string
}

var tokenColumns = []tokenColumn{
	{title: "Offset", right: true, cell: func(t Token) string { return strconv.Itoa(t.Offset) }},
	{title: "Kind", cell: func(t Token) string { return t.Kind.String() }},
	{title: "Verb", cell: func(t Token) string { return t.Verb.String() }},
	{title: "Text", cell: func(t Token) string { return strconv.Quote(t.Text) }},
}

// writeTable renders tokens as a grid and writes it in one call.
func writeTable(w io.Writer, l Layout, tokens []Token) error {
	f := frames[l]
	cells := make([][]string, len(tokens)+1)
	widths := make([]int, len(tokenColumns))
	for c, col := range tokenColumns {
		for r := range cells {
			var s string
			if r == 0 {
				s = col.title
			} else {
				s = col.cell(tokens[r-1])
			}
			cells[r] = append(cells[r], s)
			widths[c] = max(widths[c], runewidth.StringWidth(s))
		}
	}

	var sb strings.Builder
	f.writeRule(&sb, widths, ruleTop)
	for r, row := range cells {
		f.writeCells(&sb, widths, row)
		if r == 0 {
			f.writeRule(&sb, widths, ruleHeader)
		}
	}
	f.writeRule(&sb, widths, ruleBottom)
	_, err := io.WriteString(w, sb.String())
	return err
}

func (f frame) writeRule(sb *strings.Builder, widths []int, which int) {
	j := f.joints[which]
	for c, width := range widths {
		if c == 0 {
			sb.WriteString(j[0])
		} else {
			sb.WriteString(j[1])
		}
		sb.WriteString(strings.Repeat(f.rule, width+2))
	}
	sb.WriteString(j[2])
	sb.WriteByte('\n')
}

func (f frame) writeCells(sb *strings.Builder, widths []int, row []string) {
	for c, s := range row {
		gap := strings.Repeat(" ", widths[c]-runewidth.StringWidth(s))
		sb.WriteString(f.wall)
		sb.WriteByte(' ')
		if tokenColumns[c].right {
			sb.WriteString(gap + s)
		} else {
			sb.WriteString(s + gap)
		}
		sb.WriteByte(' ')
	}
	sb.WriteString(f.wall)
	sb.WriteByte('\n')
}
