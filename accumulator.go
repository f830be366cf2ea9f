package printf

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// FlushMode selects when an [Accumulator] writes to its sink.
type FlushMode int

const (
	// FlushBatch buffers all output and writes it once in Finalize.
	FlushBatch FlushMode = iota
	// FlushEach writes every fragment as soon as it is appended.
	FlushEach
)

// Accumulator concatenates output fragments, writes them to a sink and counts
// the bytes accepted. After the first failure every call returns that error.
type Accumulator struct {
	w    io.Writer
	mode FlushMode
	buf  []byte
	n    int
	cols int
	err  error
}

// NewAccumulator returns an accumulator writing to w.
func NewAccumulator(w io.Writer, mode FlushMode) *Accumulator {
	return &Accumulator{w: w, mode: mode}
}

// Append adds frag to the output and returns the updated count.
func (a *Accumulator) Append(frag []byte) (int, error) { return appendFragment(a, frag) }

// AppendString is Append for text.
func (a *Accumulator) AppendString(s string) (int, error) { return appendFragment(a, s) }

func appendFragment[T string | []byte](a *Accumulator, frag T) (int, error) {
	if a.err != nil {
		return a.n, a.err
	}
	if len(frag) == 0 {
		return a.n, nil
	}
	if a.mode == FlushEach {
		if err := a.write([]byte(frag)); err != nil {
			return a.n, err
		}
	} else {
		a.buf = append(a.buf, frag...)
	}
	a.n += len(frag)
	a.cols += runewidth.StringWidth(string(frag))
	return a.n, nil
}

// Finalize flushes any buffered output and returns the total count.
func (a *Accumulator) Finalize() (int, error) {
	if a.err != nil {
		return a.n, a.err
	}
	if len(a.buf) > 0 {
		err := a.write(a.buf)
		a.buf = a.buf[:0]
		if err != nil {
			return a.n, err
		}
	}
	return a.n, nil
}

// Count returns the number of bytes appended so far.
func (a *Accumulator) Count() int { return a.n }

// Columns returns the display width of the bytes appended so far.
func (a *Accumulator) Columns() int { return a.cols }

func (a *Accumulator) write(p []byte) error {
	n, err := a.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		a.err = fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return a.err
}
