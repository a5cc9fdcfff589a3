package bfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadSplit(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		pad   int
		align byte
		lead  int
		tail  int
	}{
		"left":           {pad: 4, align: '<', lead: 0, tail: 4},
		"right":          {pad: 4, align: '>', lead: 4, tail: 0},
		"sign aware":     {pad: 4, align: '=', lead: 4, tail: 0},
		"center even":    {pad: 4, align: '^', lead: 2, tail: 2},
		"center odd":     {pad: 5, align: '^', lead: 2, tail: 3},
		"center one":     {pad: 1, align: '^', lead: 0, tail: 1},
		"nothing to pad": {pad: 0, align: '^', lead: 0, tail: 0},
		"negative":       {pad: -3, align: '>', lead: 0, tail: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			lead, tail := padSplit(tt.pad, tt.align)
			assert.Equal(t, tt.lead, lead)
			assert.Equal(t, tt.tail, tail)
		})
	}
}

func TestMatchClose(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tmpl string
		from int
		want int
	}{
		"simple":       {tmpl: "{}", from: 1, want: 1},
		"with body":    {tmpl: "{0:x}", from: 1, want: 4},
		"nested":       {tmpl: "{0:{1}}", from: 1, want: 6},
		"double":       {tmpl: "{:{{}}}", from: 1, want: 6},
		"unterminated": {tmpl: "{0:x", from: 1, want: -1},
		"nested open":  {tmpl: "{0:{1}", from: 1, want: -1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matchClose(tt.tmpl, tt.from))
		})
	}
}

// pad writes in fixed-size chunks; a run longer than one chunk must come out
// contiguous.
func TestSinkPadChunking(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := NewSink(&buf)
	s.pad('x', 200)
	n, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, 200, n)
	assert.Equal(t, strings.Repeat("x", 200), buf.String())
}

// A spec without braces must come back without copying or cursor movement.
func TestExpandFastPath(t *testing.T) {
	t.Parallel()
	sc := scanner{prev: -1}
	spec, ok := sc.expand("=+10.2f")
	assert.True(t, ok)
	assert.Equal(t, "=+10.2f", spec)
	assert.Equal(t, -1, sc.prev)
	assert.Equal(t, 0, sc.depth)
}

// Nested expansion shares the outer cursor, so implicit indexes inside a
// spec consume argument slots in template order.
func TestExpandSharesCursor(t *testing.T) {
	t.Parallel()
	sc := scanner{args: []any{10, 4}, prev: 0}
	spec, ok := sc.expand("{}")
	assert.True(t, ok)
	assert.Equal(t, "4", spec)
	assert.Equal(t, 1, sc.prev)
}
