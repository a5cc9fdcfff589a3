package bfmt

import (
	"fmt"
	"io"
)

// Sink is the destination for rendered text. It is backed by either an
// io.Writer stream or a caller-owned fixed-capacity buffer, and tracks the
// logical length of everything written. For a buffer-backed sink the logical
// length keeps growing past the buffer's capacity, mirroring the snprintf
// size-query convention, so callers can detect truncation and pre-size a
// retry buffer.
//
// Errors are sticky: once an underlying stream write fails, every later
// write is a no-op and [Sink.Result] keeps returning the first error.
//
// A Sink belongs to one in-flight [Format] call; do not share one across
// concurrent calls.
type Sink struct {
	w   io.Writer
	buf []byte
	off int
	n   int
	err error
}

// NewSink returns a Sink that streams to w.
func NewSink(w io.Writer) *Sink { return &Sink{w: w} }

// NewBufferSink returns a Sink that fills buf. One byte of buf is reserved
// for a terminating NUL, which is rewritten after every write, so at most
// len(buf)-1 bytes of content are stored. Writes past capacity advance only
// the logical length. Bytes of buf beyond the terminator are left untouched.
func NewBufferSink(buf []byte) *Sink { return &Sink{buf: buf} }

// Write appends p to the destination. It implements io.Writer. The returned
// count is the logical count, len(p), even when a buffer-backed sink
// truncates; the returned error is the sink's sticky error.
func (s *Sink) Write(p []byte) (int, error) {
	s.write(p)
	if s.err != nil {
		return 0, s.err
	}
	return len(p), nil
}

// WriteString appends str to the destination. It implements io.StringWriter
// with the same count and error conventions as [Sink.Write].
func (s *Sink) WriteString(str string) (int, error) {
	s.writeString(str)
	if s.err != nil {
		return 0, s.err
	}
	return len(str), nil
}

// Len returns the logical length written so far. It never decreases.
func (s *Sink) Len() int { return s.n }

// Result returns the logical length and the sticky error, if any.
func (s *Sink) Result() (int, error) { return s.n, s.err }

func (s *Sink) write(p []byte) {
	if s.err != nil {
		return
	}
	if s.w != nil {
		n, err := s.w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			s.err = fmt.Errorf("%w: %v", ErrWrite, err)
			return
		}
		s.n += n
		return
	}
	s.n += len(p)
	if rem := len(s.buf) - s.off; rem > 0 {
		c := copy(s.buf[s.off:], p[:min(rem-1, len(p))])
		s.off += c
		s.buf[s.off] = 0
	}
}

func (s *Sink) writeString(str string) {
	if s.err != nil {
		return
	}
	if s.w != nil {
		n, err := io.WriteString(s.w, str)
		if err == nil && n < len(str) {
			err = io.ErrShortWrite
		}
		if err != nil {
			s.err = fmt.Errorf("%w: %v", ErrWrite, err)
			return
		}
		s.n += n
		return
	}
	s.n += len(str)
	if rem := len(s.buf) - s.off; rem > 0 {
		c := copy(s.buf[s.off:], str[:min(rem-1, len(str))])
		s.off += c
		s.buf[s.off] = 0
	}
}

func (s *Sink) writeByte(b byte) {
	one := [1]byte{b}
	s.write(one[:])
}

// pad writes n copies of b.
func (s *Sink) pad(b byte, n int) {
	if n <= 0 {
		return
	}
	var chunk [64]byte
	for i := range chunk {
		chunk[i] = b
	}
	for n > 0 {
		c := min(n, len(chunk))
		s.write(chunk[:c])
		n -= c
	}
}
