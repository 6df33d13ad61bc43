// Package fmtbuf is a fixed-capacity rendering sink used by the formatting
// tests. It keeps counting bytes past capacity so a caller can tell a
// truncated rendering apart from one that exactly fit.
package fmtbuf

import (
	"fmt"
	"io"
)

// Buffer writes into a caller-provided byte slice and never grows it.
type Buffer struct {
	buf  []byte
	used int // total bytes requested, may exceed len(buf)
}

// New returns a Buffer writing into buf.
func New(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// Write copies as much of p as fits and reports io.ErrShortWrite if any
// byte was dropped. used keeps growing either way.
func (b *Buffer) Write(p []byte) (int, error) {
	off := b.used
	if off > len(b.buf) {
		off = len(b.buf)
	}
	n := copy(b.buf[off:], p)
	b.used += len(p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// String returns the rendered text, or false if the buffer overflowed.
func (b *Buffer) String() (string, bool) {
	if b.used > len(b.buf) {
		return "", false
	}
	return string(b.buf[:b.used]), true
}

// Sprintf renders format into buf and returns the result, or
// io.ErrShortWrite if buf was too small to hold it.
func Sprintf(buf []byte, format string, args ...any) (string, error) {
	w := New(buf)
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return "", err
	}
	s, ok := w.String()
	if !ok {
		return "", io.ErrShortWrite
	}
	return s, nil
}
