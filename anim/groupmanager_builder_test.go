package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCapacityPreallocatesWithoutChangingBehavior(t *testing.T) {
	mgr := NewGroupManager[string](WithCapacity[string](4))
	id := mgr.Create()

	group, ok := mgr.Get(id)
	assert.True(t, ok)
	assert.Equal(t, id, group.ID())
}
