package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurveFrameEventQueryReturnsPayloadsInRange(t *testing.T) {
	// spec.md §8 scenario 6.
	event := NewCurveFrameEvent[string](60)
	event.Add(10, "A")
	event.Add(50, "B")

	datas, ok := event.Query(0.1, 0.9)
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, datas)
}

func TestCurveFrameEventQueryEqualAmountsReturnsNothing(t *testing.T) {
	event := NewCurveFrameEvent[string](60)
	event.Add(10, "A")

	_, ok := event.Query(0.5, 0.5)
	assert.False(t, ok)
}

func TestCurveFrameEventStableOrderingUnderEqualFrames(t *testing.T) {
	event := NewCurveFrameEvent[string](60)
	event.Add(10, "first")
	event.Add(10, "second")
	event.Add(10, "third")

	datas, ok := event.Query(0.0, 0.5)
	assert.True(t, ok)
	assert.Equal(t, []string{"first", "second", "third"}, datas)
}

func TestCurveFrameEventQueryOutsideRangeReturnsNothing(t *testing.T) {
	event := NewCurveFrameEvent[string](60)
	event.Add(55, "late")

	_, ok := event.Query(0.0, 0.1)
	assert.False(t, ok)
}
