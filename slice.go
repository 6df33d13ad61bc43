package nearcell

// UnsafeRange returns a writable view of elements [i:j) of a slice-wrapping
// Cell. The view's capacity is clipped to j, so growing it can never spill
// into neighboring elements.
//
// Caller contract: same as UnsafeMut, but scoped to the selected range —
// two holders of UnsafeRange views over disjoint ranges of the same Cell
// may each mutate their own range concurrently, provided each range has no
// other live view. Overlap between ranges is not detected.
func UnsafeRange[E any](c *Cell[[]E], i, j int) []E {
	return c.val[i:j:j]
}

// UnsafeAt narrows an unchecked writable view to the single element at
// index i. Caller contract as in UnsafeRange, for a one-element range.
func UnsafeAt[E any](c *Cell[[]E], i int) *E {
	return &c.val[i]
}
