package bfmt

import (
	"math"
	"strconv"
)

// Natural decimal digit counts, used when a general-mode spec leaves the
// precision unset.
const (
	digits10Float32 = 6
	digits10Float64 = 15
)

// writeFloat renders v in the mode selected by the spec type: fixed ('f',
// 'F'), scientific ('e', 'E'), percent ('%'), or general ('g', 'G', and the
// default). Digit generation is delegated to strconv's correctly-rounded
// conversion; sign, width, and alignment reuse the integer renderer's
// layout. bits is 32 or 64 and selects the rounding domain.
func writeFloat(dst *Sink, f Flags, v float64, bits int) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return writeSpecial(dst, f, v)
	}

	prec := f.Precision
	verb := byte('g')
	percent := false
	switch f.Type {
	case 'f', 'F':
		verb = 'f'
		if prec < 0 {
			prec = 6
		}
	case 'e', 'E':
		verb = f.Type
		if prec < 0 {
			prec = 6
		}
	case 'g', 'G':
		verb = f.Type
		switch {
		case prec < 0:
			prec = 6
		case prec == 0:
			prec = 1
		}
	case '%':
		verb = 'f'
		percent = true
		// Scale in the argument's own domain; a float32 rounds its
		// product before the digits are generated.
		if bits == 32 {
			v = float64(float32(v) * 100)
		} else {
			v *= 100
		}
		if prec < 0 {
			prec = 6
		}
	default:
		switch {
		case prec < 0:
			prec = digits10Float64
			if bits == 32 {
				prec = digits10Float32
			}
		case prec == 0:
			prec = 1
		}
	}

	// The scaled percent value is no longer a float32 quantity, so its
	// digits are generated in the 64-bit domain.
	bitSize := bits
	if percent {
		bitSize = 64
	}

	var scratch [32]byte
	digits := strconv.AppendFloat(scratch[:0], math.Abs(v), verb, prec, bitSize)
	if percent {
		digits = append(digits, '%')
	}
	return writeNumber(dst, f, math.Signbit(v), "", digits)
}

// writeSpecial renders NaN and the infinities: lowercase by default,
// uppercase for the 'F', 'E', and 'G' modes, laid out like any other number.
func writeSpecial(dst *Sink, f Flags, v float64) bool {
	upper := f.Type == 'F' || f.Type == 'E' || f.Type == 'G'
	text := "nan"
	neg := false
	if math.IsInf(v, 0) {
		text = "inf"
		neg = math.Signbit(v)
	}
	if upper {
		if text == "nan" {
			text = "NAN"
		} else {
			text = "INF"
		}
	}
	var scratch [3]byte
	return writeNumber(dst, f, neg, "", append(scratch[:0], text...))
}
