// Package nearcell provides Cell, a wrapper around a single mutable value
// that hands out aliased views without any runtime bookkeeping. It is meant
// for code that can prove by construction (single-writer protocols,
// self-referential graphs, FFI boundaries) that no conflicting access
// happens, and wants that proof to live at clearly-marked call sites
// instead of behind locks.
//
// The checked accessors (View, Update) enforce the usual discipline — any
// number of concurrent readers, or exactly one writer — at runtime, but
// only in builds with the `celldebug` tag. Release builds pay nothing.
// The unchecked accessors (Get, UnsafeMut, UnsafeRange, UnsafeAt, Ptr)
// are never checked anywhere; their preconditions are the caller's
// obligation and violating them corrupts state in unspecified ways.
package nearcell

import (
	"cmp"
	"unsafe"
)

// noCopy makes `go vet` flag copies of a Cell. A copied Cell would have
// its own value slot and guard, silently detaching every outstanding view.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Cell owns exactly one value of type T for its entire lifetime.
// All accessors return views into that same slot; none of them copy.
// The zero Cell is ready to use and holds T's zero value.
type Cell[T any] struct {
	_     noCopy
	guard guard
	val   T
}

// New returns a Cell wrapping val.
func New[T any](val T) *Cell[T] {
	return &Cell[T]{val: val}
}

// NewDefault returns a Cell wrapping the zero value of T.
func NewDefault[T any]() *Cell[T] {
	return &Cell[T]{}
}

// Unwrap consumes the Cell and returns the wrapped value. The Cell must
// not be used afterward; celldebug builds panic on any later access.
func (c *Cell[T]) Unwrap() T {
	c.guard.consume()
	return c.val
}

// Get returns a pointer to the wrapped value for reading. The caller must
// not write through it and must not hold it across an Update or UnsafeMut
// of the same region.
func (c *Cell[T]) Get() *T {
	return &c.val
}

// View calls fn with read access to the wrapped value. fn must not let the
// pointer escape the call. Concurrent Views may overlap freely; celldebug
// builds panic if a View overlaps an Update.
func (c *Cell[T]) View(fn func(*T)) {
	c.guard.acquireShared()
	defer c.guard.releaseShared()
	fn(&c.val)
}

// Update calls fn with exclusive read-write access to the wrapped value.
// fn must not let the pointer escape the call. celldebug builds panic if
// an Update overlaps any other View or Update.
func (c *Cell[T]) Update(fn func(*T)) {
	c.guard.acquireMut()
	defer c.guard.releaseMut()
	fn(&c.val)
}

// Ptr returns the address of the wrapped value. It creates no view and
// asserts nothing about aliasing; dereferencing is entirely on the caller.
func (c *Cell[T]) Ptr() unsafe.Pointer {
	return unsafe.Pointer(&c.val)
}

// UnsafeMut returns a writable pointer to the wrapped value, bypassing the
// guard entirely.
//
// Caller contract: no other view of the wrapped value (from Get, View,
// Update, UnsafeRange, UnsafeAt, or another UnsafeMut) may be live when
// UnsafeMut is called, nor be created for as long as the returned pointer
// is in use — unless the surrounding system synchronizes them externally.
// The contract is documented only; no build mode checks it.
func (c *Cell[T]) UnsafeMut() *T {
	return &c.val
}

// Equal reports whether two Cells wrap equal values.
func Equal[T comparable](a, b *Cell[T]) bool {
	return a.val == b.val
}

// Compare orders two Cells by their wrapped values.
func Compare[T cmp.Ordered](a, b *Cell[T]) int {
	return cmp.Compare(a.val, b.val)
}
