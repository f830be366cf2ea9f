package printf

import (
	"iter"
	"math/bits"
	"reflect"
	"unsafe"
)

// Kind tags the value held by an [Arg].
type Kind int

const (
	KindInvalid Kind = iota
	KindChar
	KindInt
	KindUint
	KindString
	KindPointer
	KindNil
)

var kindNames = [...]string{"invalid", "char", "int", "uint", "string", "pointer", "nil"}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Arg is one formatting argument. The zero value is invalid.
//
// Integer kinds remember their bit size. Integers narrower than 32 bits are
// promoted to 32 bits the way C promotes char and short: %u and %x read a
// negative value as the two's complement of the promoted width, and %d never
// prints a narrow unsigned value as negative.
type Arg struct {
	kind Kind
	bits uint8
	i    int64
	u    uint64
	s    string
	null bool
	from string // Go type name, for error messages
}

// Char returns a character argument.
func Char(r rune) Arg { return Arg{kind: KindChar, bits: 32, i: int64(r)} }

// Int returns a 64-bit signed integer argument.
func Int(v int64) Arg { return Arg{kind: KindInt, bits: 64, i: v} }

// Int32 returns a 32-bit signed integer argument.
func Int32(v int32) Arg { return Arg{kind: KindInt, bits: 32, i: int64(v)} }

// Uint returns a 64-bit unsigned integer argument.
func Uint(v uint64) Arg { return Arg{kind: KindUint, bits: 64, u: v} }

// Uint32 returns a 32-bit unsigned integer argument.
func Uint32(v uint32) Arg { return Arg{kind: KindUint, bits: 32, u: uint64(v)} }

// Str returns a text argument.
func Str(s string) Arg { return Arg{kind: KindString, s: s} }

// StrPtr returns a text argument that may be null. A nil p renders as "(null)".
func StrPtr(p *string) Arg {
	if p == nil {
		return Arg{kind: KindString, null: true}
	}
	return Str(*p)
}

// Ptr returns an address argument.
func Ptr(addr uintptr) Arg { return Arg{kind: KindPointer, bits: bits.UintSize, u: uint64(addr)} }

// Nil returns the untyped null argument. It is accepted by %s and %p.
func Nil() Arg { return Arg{kind: KindNil} }

// Kind reports the kind of a.
func (a Arg) Kind() Kind { return a.kind }

var runesType = reflect.TypeFor[[]rune]()

// Of converts a Go value into an Arg. Arg values pass through unchanged.
//
// Signed integers become [KindInt], unsigned integers [KindUint], strings,
// byte slices and rune slices [KindString], uintptr and pointer-like values
// [KindPointer].
// A nil *string is a null string, any other nil pointer a null address. Values
// of other types yield [KindInvalid], which every verb rejects with
// [ErrArgType].
func Of(v any) Arg {
	switch x := v.(type) {
	case Arg:
		return x
	case nil:
		return Nil()
	case string:
		return Str(x)
	case *string:
		return StrPtr(x)
	case []byte:
		return Str(string(x))
	case unsafe.Pointer:
		return Ptr(uintptr(x))
	}

	rv := reflect.ValueOf(v)
	t := rv.Type()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Arg{kind: KindInt, bits: uint8(t.Bits()), i: rv.Int()}
	case reflect.Uintptr:
		return Ptr(uintptr(rv.Uint()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Arg{kind: KindUint, bits: uint8(t.Bits()), u: rv.Uint()}
	case reflect.String:
		return Str(rv.String())
	case reflect.Slice:
		switch t.Elem().Kind() {
		case reflect.Uint8:
			return Str(string(rv.Bytes()))
		case reflect.Int32:
			if t.ConvertibleTo(runesType) {
				return Str(string(rv.Convert(runesType).Interface().([]rune)))
			}
		}
		return Ptr(rv.Pointer())
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return Ptr(rv.Pointer())
	default:
		return Arg{kind: KindInvalid, from: t.String()}
	}
}

func (a Arg) describe() string {
	if a.kind == KindInvalid && a.from != "" {
		return a.from
	}
	return a.kind.String()
}

// promotedBits is the width an integer is read at: values narrower than 32
// bits are promoted to 32 first, as C promotes char and short to int.
func (a Arg) promotedBits() uint8 {
	if a.bits < 32 {
		return 32
	}
	return a.bits
}

// unsigned returns the integer value as an unsigned number of its promoted
// width, so int8(-1) reads as 0xffffffff.
func (a Arg) unsigned() uint64 {
	switch a.kind {
	case KindUint, KindPointer:
		return a.u
	default:
		u := uint64(a.i)
		if w := a.promotedBits(); w < 64 {
			u &= 1<<w - 1
		}
		return u
	}
}

// signed returns the integer value as a signed number. Unsigned values
// narrower than 32 bits are zero-extended and never negative; wider ones are
// sign-extended from their own width.
func (a Arg) signed() int64 {
	if a.kind != KindUint {
		return a.i
	}
	if a.bits < 32 || a.bits >= 64 {
		return int64(a.u)
	}
	shift := 64 - a.bits
	return int64(a.u<<shift) >> shift
}

// cursor hands out arguments one at a time, in order.
type cursor struct {
	next func() (any, bool)
	stop func()
	pos  int
}

func newCursor(seq iter.Seq[any]) *cursor {
	next, stop := iter.Pull(seq)
	return &cursor{next: next, stop: stop}
}

// fetch advances the cursor. The returned position is 1-based.
func (c *cursor) fetch() (Arg, int, bool) {
	v, ok := c.next()
	if !ok {
		return Arg{}, c.pos + 1, false
	}
	c.pos++
	return Of(v), c.pos, true
}

func (c *cursor) close() { c.stop() }
