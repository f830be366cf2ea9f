package printf

import (
	"iter"
	"unicode/utf8"
)

// Verb is a conversion specifier: the character after '%'.
type Verb byte

// String returns the verb as a one-character string, or "" for the zero Verb.
func (v Verb) String() string {
	if v == 0 {
		return ""
	}
	return string(rune(v))
}

// MarshalYAML renders the verb as text rather than a number.
func (v Verb) MarshalYAML() (any, error) { return v.String(), nil }

// MarshalText renders the verb as text rather than a number.
func (v Verb) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// consumes reports whether the verb takes an argument.
func (v Verb) consumes() bool { return v != '%' }

func isVerb(c byte) bool {
	switch c {
	case 'c', 's', 'd', 'i', 'u', 'x', 'X', 'p', '%':
		return true
	}
	return false
}

// TokenKind classifies a [Token].
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenDirective
	TokenMalformed
)

var tokenKindNames = [...]string{"literal", "directive", "malformed"}

// String returns the kind name.
func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// MarshalYAML renders the kind by name.
func (k TokenKind) MarshalYAML() (any, error) { return k.String(), nil }

// MarshalText renders the kind by name.
func (k TokenKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Token is one unit of a format string.
//
// Text is the exact source text: the literal run, the two-character directive
// such as "%d", or the malformed sequence ("%" plus the offending character,
// or a lone "%" at the end of the format). Verb is set only for directives.
type Token struct {
	Kind   TokenKind `json:"kind" yaml:"kind"`
	Text   string    `json:"text" yaml:"text"`
	Verb   Verb      `json:"verb,omitempty" yaml:"verb,omitempty"`
	Offset int       `json:"offset" yaml:"offset"`
}

type scanState int

const (
	stateLiteral scanState = iota
	statePercent
)

// Scan splits format into literal runs and directives in a single pass.
// The sequence is lazy; stopping early stops the scan.
func Scan(format string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		state := stateLiteral
		start := 0 // start of the pending literal run or of the directive
		for i := 0; i < len(format); i++ {
			c := format[i]
			switch state {
			case stateLiteral:
				if c != '%' {
					continue
				}
				if i > start {
					if !yield(Token{Kind: TokenLiteral, Text: format[start:i], Offset: start}) {
						return
					}
				}
				start = i
				state = statePercent
			case statePercent:
				if isVerb(c) {
					if !yield(Token{Kind: TokenDirective, Text: format[start : i+1], Verb: Verb(c), Offset: start}) {
						return
					}
				} else {
					// Keep multibyte characters whole.
					_, size := utf8.DecodeRuneInString(format[i:])
					i += size - 1
					if !yield(Token{Kind: TokenMalformed, Text: format[start : i+1], Offset: start}) {
						return
					}
				}
				start = i + 1
				state = stateLiteral
			}
		}
		switch {
		case state == statePercent:
			yield(Token{Kind: TokenMalformed, Text: format[start:], Offset: start})
		case start < len(format):
			yield(Token{Kind: TokenLiteral, Text: format[start:], Offset: start})
		}
	}
}

// Tokens collects the whole scan of format.
func Tokens(format string) []Token {
	var out []Token
	for tok := range Scan(format) {
		out = append(out, tok)
	}
	return out
}
