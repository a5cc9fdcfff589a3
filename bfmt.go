package bfmt

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrWrite   = errors.New("write failed")
	ErrBadSpec = errors.New("malformed format spec")
)

// Formatter is the escape hatch for custom argument types. FormatValue
// renders the value into dst using the fully expanded spec text and reports
// success; returning false leaves the placeholder as literal template text.
// Implementations that want the standard flag handling can call [ParseFlags]
// on spec themselves.
type Formatter interface {
	FormatValue(dst *Sink, spec string) bool
}

// Char is a rune argument with character semantics. Rune literals are
// untyped integers in Go and format as numbers; wrap them in Char to render
// the character itself.
type Char rune

// Format renders tmpl with args into dst. It returns the number of
// characters attributable to this call, which for a buffer-backed sink may
// exceed the remaining capacity, and the sink's sticky error, if any.
func Format(dst *Sink, tmpl string, args ...any) (int, error) {
	before := dst.Len()
	sc := scanner{args: args, prev: -1}
	sc.run(dst, tmpl)
	n, err := dst.Result()
	return n - before, err
}

// Write renders tmpl with args to w.
func Write(w io.Writer, tmpl string, args ...any) (int, error) {
	return Format(NewSink(w), tmpl, args...)
}

// Print renders tmpl with args to standard output.
func Print(tmpl string, args ...any) (int, error) {
	return Write(os.Stdout, tmpl, args...)
}

// Marshal renders tmpl with args and returns the bytes.
func Marshal(tmpl string, args ...any) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Write(&buf, tmpl, args...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Snprint renders tmpl with args into buf, reserving one byte for a
// terminating NUL. The returned count is the length of the full result even
// when buf was too small to hold it, so callers can detect truncation and
// retry with a buffer of count+1 bytes. Buffer-backed rendering cannot fail.
func Snprint(buf []byte, tmpl string, args ...any) int {
	n, _ := Format(NewBufferSink(buf), tmpl, args...)
	return n
}
