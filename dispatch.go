package bfmt

import (
	"fmt"
	"unsafe"
)

// renderIndex renders args[idx] into dst with the given literal spec text.
// An out-of-range index fails the placeholder.
func renderIndex(dst *Sink, spec string, idx int, args []any) bool {
	if idx < 0 || idx >= len(args) {
		return false
	}
	return renderValue(dst, spec, args[idx])
}

// renderValue maps one argument to its renderer. The supported set is
// closed; custom types plug in through [Formatter], with [fmt.Stringer] as a
// final fallback. Anything else fails the placeholder.
func renderValue(dst *Sink, spec string, arg any) bool {
	switch v := arg.(type) {
	case nil:
		return renderPointer(dst, spec, 0)
	case string:
		return renderString(dst, spec, v)
	case []byte:
		return renderString(dst, spec, string(v))
	case bool:
		return renderBool(dst, spec, v)
	case Char:
		return renderChar(dst, spec, rune(v))
	case int:
		return renderSigned(dst, spec, int64(v))
	case int8:
		return renderSigned(dst, spec, int64(v))
	case int16:
		return renderSigned(dst, spec, int64(v))
	case int32:
		return renderSigned(dst, spec, int64(v))
	case int64:
		return renderSigned(dst, spec, v)
	case uint:
		return renderUnsigned(dst, spec, uint64(v))
	case uint8:
		return renderUnsigned(dst, spec, uint64(v))
	case uint16:
		return renderUnsigned(dst, spec, uint64(v))
	case uint32:
		return renderUnsigned(dst, spec, uint64(v))
	case uint64:
		return renderUnsigned(dst, spec, v)
	case uintptr:
		return renderPointer(dst, spec, uint64(v))
	case unsafe.Pointer:
		return renderPointer(dst, spec, uint64(uintptr(v)))
	case float32:
		return renderFloat(dst, spec, float64(v), 32)
	case float64:
		return renderFloat(dst, spec, v, 64)
	}
	if f, ok := arg.(Formatter); ok {
		return f.FormatValue(dst, spec)
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return renderString(dst, spec, s.String())
	}
	return false
}

func renderSigned(dst *Sink, spec string, v int64) bool {
	f, err := ParseFlags(spec)
	if err != nil {
		return false
	}
	neg := v < 0
	mag := uint64(v)
	if neg {
		// Two's complement negation is correct for MinInt64 too.
		mag = -mag
	}
	return writeInt(dst, f, neg, mag)
}

func renderUnsigned(dst *Sink, spec string, v uint64) bool {
	f, err := ParseFlags(spec)
	if err != nil {
		return false
	}
	return writeInt(dst, f, false, v)
}

// renderPointer renders an address, defaulting the type to lowercase hex.
func renderPointer(dst *Sink, spec string, v uint64) bool {
	f, err := ParseFlags(spec)
	if err != nil {
		return false
	}
	if f.Type == 0 {
		f.Type = 'x'
	}
	return writeInt(dst, f, false, v)
}

func renderString(dst *Sink, spec, str string) bool {
	f, err := ParseFlags(spec)
	if err != nil {
		return false
	}
	return writeText(dst, f, str)
}

func renderBool(dst *Sink, spec string, v bool) bool {
	f, err := ParseFlags(spec)
	if err != nil {
		return false
	}
	switch f.Type {
	case 'b', 'd', 'o', 'x', 'X':
		var mag uint64
		if v {
			mag = 1
		}
		return writeInt(dst, f, false, mag)
	}
	if v {
		return writeText(dst, f, "true")
	}
	return writeText(dst, f, "false")
}

func renderChar(dst *Sink, spec string, r rune) bool {
	f, err := ParseFlags(spec)
	if err != nil {
		return false
	}
	switch f.Type {
	case 'b', 'c', 'd', 'o', 'x', 'X':
		neg := r < 0
		mag := uint64(int64(r))
		if neg {
			mag = -mag
		}
		return writeInt(dst, f, neg, mag)
	}
	return writeText(dst, f, string(r))
}

func renderFloat(dst *Sink, spec string, v float64, bits int) bool {
	f, err := ParseFlags(spec)
	if err != nil {
		return false
	}
	return writeFloat(dst, f, v, bits)
}
