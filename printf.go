package printf

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrWrite             = errors.New("write failed")
	ErrArgType           = errors.New("argument type mismatch")
	ErrMissingArg        = errors.New("missing argument")
	ErrMalformed         = errors.New("malformed directive")
	ErrUnsupportedPolicy = errors.New("unsupported malformed policy")
	ErrUnsupportedLayout = errors.New("unsupported layout")
)

// Failed is the count returned with every error.
const Failed = -1

// Printer formats with a fixed configuration. It holds no per-call state and
// is safe for concurrent use.
type Printer struct {
	malformed MalformedPolicy
	flush     FlushMode
}

// New returns a Printer. Without options it passes malformed directives
// through literally and writes once per call.
func New(opts ...Option) *Printer {
	p := &Printer{malformed: MalformedLiteral, flush: FlushBatch}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var std = New()

// Printf formats to standard output with the default Printer.
func Printf(format string, args ...any) (int, error) { return std.Printf(format, args...) }

// Fprintf formats to w with the default Printer.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return std.Fprintf(w, format, args...)
}

// Sprintf formats to a string with the default Printer.
func Sprintf(format string, args ...any) (string, error) { return std.Sprintf(format, args...) }

// FprintSeq formats to w, pulling arguments from seq with the default Printer.
func FprintSeq(w io.Writer, format string, seq iter.Seq[any]) (int, error) {
	return std.FprintSeq(w, format, seq)
}

// FprintChan formats to w, receiving arguments from ch with the default
// Printer. A closed channel counts as running out of arguments.
func FprintChan(w io.Writer, format string, ch <-chan any) (int, error) {
	return std.FprintChan(w, format, ch)
}

// Columns returns the display width of the formatted output with the default
// Printer.
func Columns(format string, args ...any) (int, error) { return std.Columns(format, args...) }

// Printf formats to standard output.
func (p *Printer) Printf(format string, args ...any) (int, error) {
	return p.Fprintf(os.Stdout, format, args...)
}

// Fprintf formats according to format and writes to w. It returns the number
// of bytes written, or [Failed] and an error.
func (p *Printer) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return p.FprintSeq(w, format, slices.Values(args))
}

// Sprintf formats to a string.
func (p *Printer) Sprintf(format string, args ...any) (string, error) {
	var sb strings.Builder
	if _, err := p.Fprintf(&sb, format, args...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FprintChan formats to w, receiving arguments from ch.
func (p *Printer) FprintChan(w io.Writer, format string, ch <-chan any) (int, error) {
	return p.FprintSeq(w, format, chanToIter(ch))
}

// Columns returns the display width of the formatted output.
func (p *Printer) Columns(format string, args ...any) (int, error) {
	acc := NewAccumulator(io.Discard, FlushBatch)
	if err := p.run(acc, format, slices.Values(args)); err != nil {
		return Failed, err
	}
	return acc.Columns(), nil
}

// FprintSeq formats to w, pulling one argument from seq per consuming
// directive. Arguments left in seq are ignored.
func (p *Printer) FprintSeq(w io.Writer, format string, seq iter.Seq[any]) (int, error) {
	acc := NewAccumulator(w, p.flush)
	if err := p.run(acc, format, seq); err != nil {
		return Failed, err
	}
	n, err := acc.Finalize()
	if err != nil {
		return Failed, err
	}
	return n, nil
}

func (p *Printer) run(acc *Accumulator, format string, seq iter.Seq[any]) error {
	args := newCursor(seq)
	defer args.close()

	var scratch []byte
	for tok := range Scan(format) {
		switch tok.Kind {
		case TokenLiteral:
			if _, err := acc.AppendString(tok.Text); err != nil {
				return err
			}
		case TokenMalformed:
			switch p.malformed {
			case MalformedSkip:
			case MalformedError:
				return fmt.Errorf("%w: %q at offset %d", ErrMalformed, tok.Text, tok.Offset)
			case MalformedLiteral:
				if _, err := acc.AppendString(tok.Text); err != nil {
					return err
				}
			}
		case TokenDirective:
			if tok.Verb.consumes() {
				a, pos, ok := args.fetch()
				if !ok {
					return fmt.Errorf("%w: %s at offset %d wants argument %d", ErrMissingArg, tok.Text, tok.Offset, pos)
				}
				var err error
				if scratch, err = appendConversion(scratch[:0], tok.Verb, a); err != nil {
					return fmt.Errorf("argument %d: %w", pos, err)
				}
			} else {
				scratch = append(scratch[:0], '%')
			}
			if _, err := acc.Append(scratch); err != nil {
				return err
			}
		}
	}
	return nil
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
