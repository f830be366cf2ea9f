// Command printf formats its arguments with the conversions %c %s %d %i %u
// %x %X %p and %%. FORMAT is used as given: backslash escapes such as \n are
// not interpreted, so pass real newlines through the shell instead.
//
// Usage:
//
//	printf [-malformed=literal|skip|error] [-explain=yaml|json|table|ascii] FORMAT [ARG...]
//
// Arguments are strings converted according to the directive that consumes
// them: %c takes the first character, %s the whole text, %d and %i a signed
// integer, %u %x %X and %p an unsigned one. Integers accept 0x, 0o and 0b
// prefixes. With -explain the format is described instead of printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/bjaus/printf"
)

var errBadArg = errors.New("invalid argument")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fs := flag.NewFlagSet("printf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	malformed := fs.String("malformed", string(printf.MalformedLiteral), "malformed directive policy: literal, skip or error")
	explain := fs.String("explain", "", "describe FORMAT instead of printing it: yaml, json, table or ascii")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: printf [flags] FORMAT [ARG...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}
	format, rest := fs.Arg(0), fs.Args()[1:]

	if *explain != "" {
		layout, err := printf.ParseLayout(*explain)
		if err != nil {
			logger.Error("bad flag", "flag", "explain", "err", err)
			return 2
		}
		if err := printf.Explain(stdout, layout, format); err != nil {
			logger.Error("explain failed", "err", err)
			return 1
		}
		return 0
	}

	policy, err := printf.ParseMalformed(*malformed)
	if err != nil {
		logger.Error("bad flag", "flag", "malformed", "err", err)
		return 2
	}

	values, err := convertArgs(format, rest)
	if err != nil {
		logger.Error("cannot convert arguments", "err", err)
		return 1
	}
	p := printf.New(printf.WithMalformed(policy))
	if _, err := p.Fprintf(stdout, format, values...); err != nil {
		logger.Error("printf failed", "format", format, "err", err)
		return 1
	}
	return 0
}

// convertArgs turns command-line strings into typed arguments, using the
// directive that will consume each one. Arguments beyond the last directive
// are passed through as text and ignored by the formatter.
func convertArgs(format string, args []string) ([]any, error) {
	out := make([]any, 0, len(args))
	i := 0
	for tok := range printf.Scan(format) {
		if tok.Kind != printf.TokenDirective || tok.Verb == '%' {
			continue
		}
		if i >= len(args) {
			break
		}
		a, err := convertArg(tok.Verb, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d for %s: %w", i+1, tok.Text, err)
		}
		out = append(out, a)
		i++
	}
	for ; i < len(args); i++ {
		out = append(out, args[i])
	}
	return out, nil
}

func convertArg(v printf.Verb, s string) (printf.Arg, error) {
	switch v {
	case 'c':
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return printf.Arg{}, fmt.Errorf("%w: empty character", errBadArg)
		}
		return printf.Char(r), nil
	case 'd', 'i':
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return printf.Arg{}, fmt.Errorf("%w: %w", errBadArg, err)
		}
		return printf.Int(n), nil
	case 'u', 'x', 'X':
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return printf.Arg{}, fmt.Errorf("%w: %w", errBadArg, err)
		}
		return printf.Uint(n), nil
	case 'p':
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return printf.Arg{}, fmt.Errorf("%w: %w", errBadArg, err)
		}
		return printf.Ptr(uintptr(n)), nil
	default:
		return printf.Str(s), nil
	}
}
