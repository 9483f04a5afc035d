package anim

import "sort"

// CurveFrameEvent is a sorted frame-index -> payload lookup, queried by the
// [amountLast, amount) interval a group traversed this tick. Insertion is by
// frame order; equal frames keep insertion order (no dedup). Grounded on
// original_source/src/curve_frame_event.rs.
type CurveFrameEvent[D any] struct {
	totalFrame float64
	frames     []int
	datas      []D
}

// NewCurveFrameEvent returns an empty event track scaled to totalFrame.
func NewCurveFrameEvent[D any](totalFrame float64) *CurveFrameEvent[D] {
	return &CurveFrameEvent[D]{totalFrame: totalFrame}
}

// Add inserts data at frame, keeping frames sorted. Equal frames are
// inserted after any existing equal entries, preserving insertion order.
func (e *CurveFrameEvent[D]) Add(frame int, data D) {
	index := sort.Search(len(e.frames), func(i int) bool { return e.frames[i] > frame })
	e.frames = append(e.frames, 0)
	copy(e.frames[index+1:], e.frames[index:])
	e.frames[index] = frame

	var zero D
	e.datas = append(e.datas, zero)
	copy(e.datas[index+1:], e.datas[index:])
	e.datas[index] = data
}

// Query returns every payload whose frame falls in [amountLast, amount)'s
// scaled frame range, or (nil, false) if amountLast equals amount or nothing
// was traversed.
func (e *CurveFrameEvent[D]) Query(amountLast, amount float64) ([]D, bool) {
	if amountLast == amount {
		return nil, false
	}

	last := int(amountLast * e.totalFrame)
	curr := int(amount * e.totalFrame)
	lastIndex := sort.SearchInts(e.frames, last)
	currIndex := sort.SearchInts(e.frames, curr)

	if currIndex <= lastIndex {
		return nil, false
	}

	result := make([]D, 0, currIndex-lastIndex)
	for i := lastIndex; i < currIndex && i < len(e.datas); i++ {
		result = append(result, e.datas[i])
	}
	if len(result) == 0 {
		return nil, false
	}
	return result, true
}
