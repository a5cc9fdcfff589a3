package bfmt

import "strconv"

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// writeInt renders a 64-bit magnitude with radix, sign, alternate prefix,
// and alignment. The 'c' type switches to the codepoint form. Precision has
// no meaning for integers and fails the placeholder so it passes through
// literally.
func writeInt(dst *Sink, f Flags, neg bool, mag uint64) bool {
	if f.Type == 'c' {
		return writeCodepoint(dst, f, neg, mag)
	}
	if f.Precision >= 0 {
		return false
	}

	base := uint64(10)
	switch f.Type {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x', 'X':
		base = 16
	}

	digitchars := lowerDigits
	if f.Type == 'X' {
		digitchars = upperDigits
	}

	// Digits come out least-significant-first; w walks backward so the
	// buffer ends up in order. 64 bytes covers 64-bit binary.
	var buf [64]byte
	w := len(buf)
	for {
		w--
		buf[w] = digitchars[mag%base]
		mag /= base
		if mag == 0 {
			break
		}
	}

	prefix := ""
	if f.Alternate {
		switch base {
		case 2:
			prefix = "0b"
		case 8:
			prefix = "0o"
		case 16:
			prefix = "0x"
			if f.Type == 'X' {
				prefix = "0X"
			}
		}
	}

	return writeNumber(dst, f, neg, prefix, buf[w:])
}

// writeNumber lays out an already rendered digit sequence: sign, radix
// prefix, padding, alignment. Shared by the integer and float renderers.
// With '=' alignment the sign and prefix land before the leading pad; every
// other mode keeps them adjacent to the digits. Numbers align right by
// default.
func writeNumber(dst *Sink, f Flags, neg bool, prefix string, digits []byte) bool {
	var sign byte
	switch {
	case neg:
		sign = '-'
	case f.Sign == '+' || f.Sign == ' ':
		sign = f.Sign
	}

	content := len(prefix) + len(digits)
	if sign != 0 {
		content++
	}
	width := max(f.Width, content)

	align := f.Align
	if align == 0 {
		align = '>'
	}
	lead, tail := padSplit(width-content, align)

	fill := f.Fill
	if fill == 0 {
		fill = ' '
	}
	if align == '=' {
		if sign != 0 {
			dst.writeByte(sign)
		}
		dst.writeString(prefix)
		dst.pad(fill, lead)
	} else {
		dst.pad(fill, lead)
		if sign != 0 {
			dst.writeByte(sign)
		}
		dst.writeString(prefix)
	}
	dst.write(digits)
	dst.pad(fill, tail)
	return true
}

// writeCodepoint renders the 'c' type: non-negative 7-bit values print as
// the character itself, everything else as a parenthesized hex form, e.g.
// (100) for 256 or (-0x41) for -65 with '#'. The result pads like a string.
func writeCodepoint(dst *Sink, f Flags, neg bool, mag uint64) bool {
	if f.Precision >= 0 {
		return false
	}
	if !neg && mag <= 0x7f {
		one := [1]byte{byte(mag)}
		return writeText(dst, f, string(one[:]))
	}
	var scratch [24]byte
	b := append(scratch[:0], '(')
	switch {
	case neg:
		b = append(b, '-')
	case f.Sign == '+' || f.Sign == ' ':
		b = append(b, f.Sign)
	}
	if f.Alternate {
		b = append(b, '0', 'x')
	}
	b = strconv.AppendUint(b, mag, 16)
	b = append(b, ')')
	return writeText(dst, f, string(b))
}
