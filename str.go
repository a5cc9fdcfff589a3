package bfmt

import "github.com/mattn/go-runewidth"

// writeText renders a string with precision truncation and width padding.
// Precision truncates, it never pads. Content is measured in display cells
// so wide characters pad correctly. Strings align left by default, and '='
// behaves like left; there is no sign concept.
func writeText(dst *Sink, f Flags, str string) bool {
	if f.Precision >= 0 {
		str = runewidth.Truncate(str, f.Precision, "")
	}
	content := runewidth.StringWidth(str)
	width := max(f.Width, content)

	align := f.Align
	if align != '>' && align != '^' {
		align = '<'
	}
	lead, tail := padSplit(width-content, align)

	fill := f.Fill
	if fill == 0 {
		fill = ' '
	}
	dst.pad(fill, lead)
	dst.writeString(str)
	dst.pad(fill, tail)
	return true
}

// padSplit splits pad cells between the leading and trailing side.
// Centering gives the extra odd cell to the trailing side, so
// lead+tail == pad and |lead-tail| <= 1 always hold.
func padSplit(pad int, align byte) (lead, tail int) {
	if pad <= 0 {
		return 0, 0
	}
	switch align {
	case '<':
		return 0, pad
	case '^':
		lead = pad / 2
		return lead, pad - lead
	default: // '>' and '='
		return pad, 0
	}
}
