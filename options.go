package printf

import (
	"fmt"
	"slices"
)

// MalformedPolicy decides what a malformed directive produces: a '%' followed
// by an unsupported character, or a '%' that ends the format.
type MalformedPolicy string

const (
	// MalformedLiteral emits the directive text verbatim. This is the default.
	MalformedLiteral MalformedPolicy = "literal"
	// MalformedSkip emits nothing for the directive.
	MalformedSkip MalformedPolicy = "skip"
	// MalformedError aborts the call with [ErrMalformed].
	MalformedError MalformedPolicy = "error"
)

var policies = []MalformedPolicy{MalformedLiteral, MalformedSkip, MalformedError}

// String returns the policy name.
func (p MalformedPolicy) String() string { return string(p) }

// ParseMalformed parses a policy name.
func ParseMalformed(s string) (MalformedPolicy, error) {
	for _, p := range policies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPolicy, s)
}

// Option configures a [Printer].
type Option func(*Printer)

// WithMalformed sets the malformed-directive policy. Values other than the
// declared policies are ignored and the previous policy stays in effect.
func WithMalformed(p MalformedPolicy) Option {
	return func(pr *Printer) {
		if slices.Contains(policies, p) {
			pr.malformed = p
		}
	}
}

// WithFlush sets when output reaches the writer.
func WithFlush(m FlushMode) Option {
	return func(pr *Printer) { pr.flush = m }
}
