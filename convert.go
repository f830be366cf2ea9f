package printf

import (
	"fmt"
	"unicode/utf8"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
	nullString  = "(null)"
	nullPointer = "0x0"
)

// appendConversion appends the text of one directive to dst.
func appendConversion(dst []byte, v Verb, a Arg) ([]byte, error) {
	switch v {
	case '%':
		return append(dst, '%'), nil
	case 'c':
		if !a.integer() {
			return dst, mismatch(v, a)
		}
		r := rune(a.signed())
		if a.kind == KindUint {
			r = rune(a.u)
		}
		return utf8.AppendRune(dst, r), nil
	case 's':
		switch {
		case a.kind == KindNil, a.kind == KindString && a.null:
			return append(dst, nullString...), nil
		case a.kind == KindString:
			return append(dst, a.s...), nil
		}
		return dst, mismatch(v, a)
	case 'd', 'i':
		if !a.integer() {
			return dst, mismatch(v, a)
		}
		return appendInt(dst, a.signed()), nil
	case 'u':
		if !a.integer() {
			return dst, mismatch(v, a)
		}
		return appendUint(dst, a.unsigned(), 10, lowerDigits), nil
	case 'x':
		if !a.integer() {
			return dst, mismatch(v, a)
		}
		return appendUint(dst, a.unsigned(), 16, lowerDigits), nil
	case 'X':
		if !a.integer() {
			return dst, mismatch(v, a)
		}
		return appendUint(dst, a.unsigned(), 16, upperDigits), nil
	case 'p':
		switch a.kind {
		case KindNil:
			return append(dst, nullPointer...), nil
		case KindPointer, KindUint:
			dst = append(dst, "0x"...)
			return appendUint(dst, a.u, 16, lowerDigits), nil
		}
		return dst, mismatch(v, a)
	}
	return dst, fmt.Errorf("%w: %%%s", ErrMalformed, v)
}

func (a Arg) integer() bool {
	return a.kind == KindChar || a.kind == KindInt || a.kind == KindUint
}

func mismatch(v Verb, a Arg) error {
	return fmt.Errorf("%w: %%%s cannot format %s", ErrArgType, v, a.describe())
}

// appendInt appends the decimal form of n. The magnitude is taken in uint64,
// where negating the most negative int64 is well defined.
func appendInt(dst []byte, n int64) []byte {
	u := uint64(n)
	if n < 0 {
		dst = append(dst, '-')
		u = -u
	}
	return appendUint(dst, u, 10, lowerDigits)
}

// appendUint appends u in the given base using digits. Zero renders as "0".
func appendUint(dst []byte, u uint64, base uint64, digits string) []byte {
	var buf [64]byte
	i := len(buf)
	for {
		i--
		buf[i] = digits[u%base]
		u /= base
		if u == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}
