package anim

// AnimationInfo is a portable, cheaply-copyable descriptor linking a curve
// slot in its TypeAnimationContext to a target attribute. Grounded on
// original_source/src/animation.rs.
type AnimationInfo struct {
	Attr      AttrId
	Type      TypeId
	CurveInfo CurveInfo
	CurveSlot CurveSlot
}

// GetMaxFrameForRunningSpeed rescales the animation's authored max frame to
// a running frame rate.
func (a AnimationInfo) GetMaxFrameForRunningSpeed(runningFPS int) float64 {
	return a.CurveInfo.GetMaxFrameForRunningSpeed(runningFPS)
}

// TargetAnimation pairs a host-opaque target key with the AnimationInfo
// driving one of its attributes.
type TargetAnimation[T comparable] struct {
	Target    T
	Animation AnimationInfo
}
