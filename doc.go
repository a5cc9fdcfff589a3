// Package bfmt renders brace-placeholder templates into buffers and streams.
//
// It is a printf-style engine built for embedded and performance-sensitive
// callers: the hot path allocates nothing, truncation into a fixed buffer is
// deterministic, and the full result length is always reported so a caller
// can detect truncation and retry, exactly like a snprintf size query. The
// central entry points are [Format], [Write], [Print], [Marshal], and
// [Snprint].
//
// # Template language
//
// A template is literal text mixed with placeholders:
//
//	{{ and }}          literal '{' and '}'
//	{ [index][:spec] } a placeholder
//
// index is an explicit decimal argument index. When absent it resolves to
// one past the previously resolved index, starting at 0, so explicit and
// implicit indexes mix freely: "{} {2} {}" uses arguments 0, 2, and 3.
//
// spec controls rendering:
//
//	[[fill]align][sign]['#'][0][width]['.'precision][type]
//
//   - fill/align: any fill character before '<' (left), '>' (right),
//     '^' (center), or '=' (pad between sign and digits).
//   - sign: '+' always, ' ' blank for non-negative, '-' only when negative.
//   - '#': alternate form, 0b/0o/0x radix prefixes.
//   - width: minimum field width; a leading '0' is shorthand for fill '0'
//     with '=' alignment.
//   - precision: maximum string length, digits after the decimal point, or
//     significant digits, depending on the type.
//   - type: b/o/d/x/X integer radices, e/E/f/F/g/G float modes, '%'
//     percentage, 's' string, 'c' character or codepoint.
//
// A spec may itself contain placeholders, resolved against the same
// argument list before the spec is applied:
//
//	bfmt.Print("{1:.{0}}", 3, "ooga") // "oog"
//
// # Arguments
//
// Strings, []byte, booleans, every integer width, uintptr, and both float
// sizes render natively. Rune literals are untyped integers in Go, so
// character arguments are passed as [Char]. Custom types implement
// [Formatter]; types implementing [fmt.Stringer] render as strings.
//
// # Errors
//
// A placeholder whose spec fails to parse or whose index has no argument is
// passed through as literal text; only destination I/O failures fail the
// whole call. Stream errors are sticky on the [Sink]: the first failure
// stops all further output and is reported once, at the end:
//
//	n, err := bfmt.Write(w, "Hello, {}!\n", "World")
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrWrite] — destination write failed mid-render
//   - [ErrBadSpec] — spec text violates the grammar (from [ParseFlags])
//
// # Concurrency
//
// There is no shared state: package-level functions are safe for concurrent
// use as long as each call has its own destination. A [Sink] must not be
// shared across concurrent calls.
package bfmt
