package anim

// AttrId names an animatable attribute on a host target type, meaningful
// only to the host's AnimatableTargetModifier. 0..255, matching the
// original's u8-sized IDAnimatableAttr.
type AttrId uint8

// TypeId is allocated by a grow-only TypeIdAllocator (TypeIds are never
// freed) each time NewTypeAnimationContext is called with it. The caller
// owns the allocator and passes it in; the package holds no process-wide
// allocator, and nothing stops two contexts for the same V from receiving
// different TypeIds. It indexes the first dimension of a RuntimeInfoMap.
type TypeId int

// CurveSlot is a dense, per-TypeAnimationContext integer slot, reused via a
// LIFO free-list as curves are created and removed.
type CurveSlot int

// TypeIdAllocator hands out TypeIds. It only grows, mirroring
// frame_curve_manager.rs's add_type (TypeFrameCurveInfoManager is never
// shrunk either). The zero value is ready to use.
type TypeIdAllocator struct {
	next TypeId
}

// Allocate returns the next unused TypeId.
func (a *TypeIdAllocator) Allocate() TypeId {
	id := a.next
	a.next++
	return id
}

// Len returns the number of TypeIds allocated so far.
func (a *TypeIdAllocator) Len() int {
	return int(a.next)
}
