package common

// SlotFreeList is a LIFO pool of reusable dense-array indices, the same
// free-list-over-a-slice idiom the renderer uses for skeletal instance slots
// (see engine/renderer/animator's RemoveInstance/Grow pair). Callers own the
// backing slice; SlotFreeList only tracks which indices are available for
// reuse versus which require the slice to grow.
type SlotFreeList struct {
	free []int
	next int
}

// Acquire returns a free slot index, popping from the recycled pool first
// (LIFO) and only growing the counter when the pool is empty.
//
// Returns:
//   - int: the slot index to use
//   - bool: true if this index is new and the caller must grow its backing slice
func (f *SlotFreeList) Acquire() (int, bool) {
	if n := len(f.free); n > 0 {
		idx := f.free[n-1]
		f.free = f.free[:n-1]
		return idx, false
	}
	idx := f.next
	f.next++
	return idx, true
}

// Release pushes a slot back onto the free list for reuse.
//
// Parameters:
//   - idx: the slot index to recycle
func (f *SlotFreeList) Release(idx int) {
	f.free = append(f.free, idx)
}

// Len returns the number of slots ever acquired, including recycled ones.
func (f *SlotFreeList) Len() int {
	return f.next
}
