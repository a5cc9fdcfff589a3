package bfmt

import "strings"

const (
	// maxExpandDepth bounds recursive nested-spec expansion so an
	// adversarial template cannot grow the stack without limit.
	maxExpandDepth = 8
	// expandBufSize bounds the expanded form of one spec text.
	expandBufSize = 128
)

// scanner walks one template in a single forward pass. prev is the index
// cursor: an implicit placeholder index resolves to prev+1, and every
// resolved index (explicit or implicit) becomes the new prev. The cursor is
// shared with nested expansions so auto-incrementing indexes stay globally
// consistent within one top-level scan.
type scanner struct {
	args  []any
	prev  int
	depth int
}

func (sc *scanner) run(dst *Sink, tmpl string) {
	lit := 0 // start of the pending literal run
	i := 0
	for i < len(tmpl) {
		switch tmpl[i] {
		case '}':
			// '}}' escapes to '}'; a lone '}' is kept as-is.
			dst.writeString(tmpl[lit : i+1])
			i++
			if i < len(tmpl) && tmpl[i] == '}' {
				i++
			}
			lit = i
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				dst.writeString(tmpl[lit : i+1])
				i += 2
				lit = i
				continue
			}
			dst.writeString(tmpl[lit:i])
			end := matchClose(tmpl, i+1)
			if end < 0 {
				// Unterminated placeholder: the rest is literal.
				dst.writeString(tmpl[i:])
				return
			}
			if !sc.placeholder(dst, tmpl[i+1:end]) {
				dst.writeString(tmpl[i : end+1])
			}
			i = end + 1
			lit = i
		default:
			i++
		}
	}
	dst.writeString(tmpl[lit:])
}

// matchClose returns the position of the '}' closing the placeholder whose
// body starts at from. Nested '{...}' inside the spec text is skipped by
// depth counting; escaped braces come in balanced pairs, so they count
// through cleanly. Returns -1 if the template ends first.
func matchClose(tmpl string, from int) int {
	depth := 1
	for i := from; i < len(tmpl); i++ {
		switch tmpl[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// placeholder resolves and renders one placeholder body, the text between
// the braces. It reports whether rendering succeeded; on failure the caller
// passes the raw source through instead. The index cursor advances whether
// or not rendering succeeds.
func (sc *scanner) placeholder(dst *Sink, body string) bool {
	k := 0
	for k < len(body) && isDigit(body[k]) {
		k++
	}
	idx := -1
	bad := false
	if k > 0 {
		idx = 0
		for j := 0; j < k && !bad; j++ {
			idx = idx*10 + int(body[j]-'0')
			bad = idx > maxNumber
		}
	}
	if idx < 0 {
		idx = sc.prev + 1
	}
	sc.prev = idx
	if bad {
		return false
	}

	var spec string
	switch {
	case k == len(body):
		// No spec.
	case body[k] == ':':
		var ok bool
		if spec, ok = sc.expand(body[k+1:]); !ok {
			return false
		}
	default:
		// Anything but ':' after the index ('{0!s}', '{name}') is not
		// part of the mini-language and stays literal.
		return false
	}
	return renderIndex(dst, spec, idx, sc.args)
}

// expand resolves nested placeholders inside spec text by running the same
// scan, against the same argument list and index cursor, into a bounded
// stack-local buffer. Specs without braces are returned as-is without
// copying. Exceeding the depth or size bound fails the placeholder.
func (sc *scanner) expand(spec string) (string, bool) {
	if !strings.ContainsAny(spec, "{}") {
		return spec, true
	}
	if sc.depth >= maxExpandDepth {
		return "", false
	}
	var scratch [expandBufSize]byte
	sub := NewBufferSink(scratch[:])
	sc.depth++
	sc.run(sub, spec)
	sc.depth--
	n, err := sub.Result()
	if err != nil || n > len(scratch)-1 {
		return "", false
	}
	return string(scratch[:n]), true
}
