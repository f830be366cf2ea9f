// Package printf implements a small formatted-output engine with the classic
// eight conversions.
//
// The entry points are [Printf], [Fprintf] and [Sprintf]. They return the
// number of bytes written, or [Failed] together with an error:
//
//	n, err := printf.Fprintf(os.Stdout, "Function %s converts %d to hex: %x or %X\n",
//		"ft_printf", 255, 255, 255)
//
// # Conversions
//
//   - %c — a character, written as UTF-8
//   - %s — text; a null string prints "(null)"
//   - %d, %i — signed decimal
//   - %u — unsigned decimal
//   - %x, %X — hexadecimal in lower or upper case, no prefix
//   - %p — an address as 0x followed by lowercase hex; null prints "0x0"
//   - %% — a literal percent sign, consuming no argument
//
// There are no flags, widths, precisions or length modifiers. Output is always
// the shortest representation.
//
// # Arguments
//
// Each consuming directive takes the next argument, left to right. Plain Go
// values are converted with [Of]; use the [Arg] constructors ([Char], [Int],
// [Uint], [Str], [StrPtr], [Ptr], [Nil]) to be explicit. A value a verb cannot
// format fails with [ErrArgType]; too few arguments fail with [ErrMissingArg].
// Extra arguments are ignored.
//
// The integer verbs accept any integer kind. Values narrower than 32 bits are
// promoted to 32 bits, so uint8(200) prints as 200 under %d. %u and %x read a
// negative value as the two's complement of its promoted width, so int8(-1)
// and int32(-1) print as ffffffff while int64(-1) prints as ffffffffffffffff.
// Byte and rune slices format as text under %s.
//
// # Malformed directives
//
// A '%' followed by an unsupported character, or a '%' at the very end of the
// format, is malformed. [New] with [WithMalformed] picks what happens:
//
//   - [MalformedLiteral] — write the text as is (default)
//   - [MalformedSkip] — write nothing
//   - [MalformedError] — fail with [ErrMalformed]
//
// # Inspecting formats
//
// [Scan] yields the tokens of a format string lazily. [Explain] renders them
// as YAML, JSON or a table:
//
//	printf.Explain(os.Stdout, printf.LayoutTable, "%s is %d\n")
//
// # Errors
//
//   - [ErrWrite] — the writer failed; bytes already written stay written
//   - [ErrArgType] — argument kind does not fit the verb
//   - [ErrMissingArg] — ran out of arguments
//   - [ErrMalformed] — malformed directive under [MalformedError]
//   - [ErrUnsupportedPolicy], [ErrUnsupportedLayout] — unknown names passed to
//     [ParseMalformed] or [ParseLayout]
package printf
