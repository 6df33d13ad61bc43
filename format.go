package nearcell

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Format forwards every formatting verb to the wrapped value, so a Cell
// renders exactly as its contents would: %v, %d, %o, %x, %X, %b, %e, %E,
// %q and friends all pass through with flags, width and precision intact.
// Two verbs are special: %#v renders the labeled debug form Cell(<inner>),
// and %p renders the address of the wrapped value rather than forwarding.
func (c *Cell[T]) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('#'):
		fmt.Fprintf(s, "Cell(%#v)", c.val)
	case verb == 'p':
		fmt.Fprintf(s, rebuildVerb(s, verb), c.Ptr())
	default:
		fmt.Fprintf(s, rebuildVerb(s, verb), c.val)
	}
}

// String renders the wrapped value with its default formatting.
func (c *Cell[T]) String() string {
	return fmt.Sprint(c.val)
}

// GoString renders the labeled debug form, e.g. Cell(42).
func (c *Cell[T]) GoString() string {
	return fmt.Sprintf("Cell(%#v)", c.val)
}

// rebuildVerb reassembles the %-directive described by a fmt.State so it
// can be replayed against the inner value.
func rebuildVerb(s fmt.State, verb rune) string {
	buf := make([]byte, 0, 16)
	buf = append(buf, '%')
	for _, f := range []byte("+-# 0") {
		if s.Flag(int(f)) {
			buf = append(buf, f)
		}
	}
	if w, ok := s.Width(); ok {
		buf = strconv.AppendInt(buf, int64(w), 10)
	}
	if p, ok := s.Precision(); ok {
		buf = append(buf, '.')
		buf = strconv.AppendInt(buf, int64(p), 10)
	}
	return string(utf8.AppendRune(buf, verb))
}
