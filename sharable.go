package nearcell

// Sharable marks a type whose values tolerate concurrent access from
// multiple goroutines through the checked accessors. It is a declaration,
// not a mechanism: implementing it promises that View/Update discipline is
// sufficient for T, it does not add any synchronization.
type Sharable interface {
	Sharable()
}

// NewShared is New restricted to Sharable element types. A Cell obtained
// from NewShared may be handed to multiple goroutines that use only the
// checked accessors; the unchecked accessors remain the caller's problem
// exactly as for any other Cell.
func NewShared[T Sharable](val T) *Cell[T] {
	return &Cell[T]{val: val}
}
