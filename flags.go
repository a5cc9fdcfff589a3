package bfmt

import "fmt"

// Flags is the parsed form of a format spec. Every field is optional in the
// spec; a zero byte or a -1 count means "unset" and leaves the choice to the
// renderer.
type Flags struct {
	Fill      byte // pad character, renderers default to ' '
	Align     byte // '<', '>', '^' or '=' (sign-aware)
	Sign      byte // '+', '-' or ' '
	Alternate bool // '#': radix prefixes and verbose codepoint form
	Width     int  // minimum field width, -1 when unset
	Precision int  // meaning depends on the renderer, -1 when unset
	Type      byte // renderer selector, e.g. 'd', 'x', 'f', 's', 'c'
}

// maxNumber caps parsed widths, precisions, and argument indexes so a
// hostile spec cannot overflow the accumulators.
const maxNumber = 1 << 20

// ParseFlags parses a format spec:
//
//	[[fill]align][sign]['#'][0][width]['.'precision][type]
//
// Fields are attempted once each, in order. A fill character is only
// recognized when followed by an alignment marker. A width with a leading
// '0' implies Fill '0' and Align '=' for whichever of the two was not set
// explicitly.
// A '.' with no digits means precision 0. Input left over after the type
// field is an error wrapping [ErrBadSpec].
func ParseFlags(spec string) (Flags, error) {
	f := Flags{Width: -1, Precision: -1}
	i := 0
	switch {
	case len(spec) >= 2 && isAlign(spec[1]):
		f.Fill, f.Align = spec[0], spec[1]
		i = 2
	case len(spec) >= 1 && isAlign(spec[0]):
		f.Align = spec[0]
		i = 1
	}
	if i < len(spec) && (spec[i] == '+' || spec[i] == '-' || spec[i] == ' ') {
		f.Sign = spec[i]
		i++
	}
	if i < len(spec) && spec[i] == '#' {
		f.Alternate = true
		i++
	}
	for i < len(spec) && isDigit(spec[i]) {
		if f.Width < 0 {
			if spec[i] == '0' {
				// Zero-padding is sugar for fill '0' with sign-aware
				// alignment; explicit choices win.
				if f.Fill == 0 {
					f.Fill = '0'
				}
				if f.Align == 0 {
					f.Align = '='
				}
			}
			f.Width = 0
		}
		f.Width = f.Width*10 + int(spec[i]-'0')
		if f.Width > maxNumber {
			return Flags{}, fmt.Errorf("%w: width in %q too large", ErrBadSpec, spec)
		}
		i++
	}
	if i < len(spec) && spec[i] == '.' {
		f.Precision = 0
		i++
		for i < len(spec) && isDigit(spec[i]) {
			f.Precision = f.Precision*10 + int(spec[i]-'0')
			if f.Precision > maxNumber {
				return Flags{}, fmt.Errorf("%w: precision in %q too large", ErrBadSpec, spec)
			}
			i++
		}
	}
	if i < len(spec) && isType(spec[i]) {
		f.Type = spec[i]
		i++
	}
	if i != len(spec) {
		return Flags{}, fmt.Errorf("%w: %q", ErrBadSpec, spec)
	}
	return f, nil
}

func isAlign(ch byte) bool {
	return ch == '<' || ch == '>' || ch == '^' || ch == '='
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isType(ch byte) bool {
	switch ch {
	case 'b', 'c', 'd', 'e', 'E', 'f', 'F', 'g', 'G', 'o', 's', 'x', 'X', '%':
		return true
	}
	return false
}
