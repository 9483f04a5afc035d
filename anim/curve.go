package anim

// Value is the contract every animated value type V must satisfy: additive,
// scalar-scalable, and linearly interpolable. It mirrors the original
// crate's FrameDataValue/FrameValueScale traits.
type Value[V any] interface {
	// Add combines two values component-wise.
	Add(other V) V
	// Scale multiplies a value by a scalar.
	Scale(scalar float64) V
	// Interpolate blends toward other by amount in [0,1].
	Interpolate(other V, amount float64) V
}

// CurveAdapter is the host-supplied, read-only handle wrapping an immutable
// keyframe curve. It must be inexpensively clonable (the host typically
// backs it with a reference-counted pointer) and behave as an immutable
// snapshot once constructed.
type CurveAdapter[V Value[V]] interface {
	// Interpolate samples the curve at amount (seconds, against the 60fps
	// design clock) after applying the between-frame shaper.
	Interpolate(amountInSeconds float64, betweenFrame AnimationAmountCalc) V
	// MinFrame returns the curve's minimum authored frame index.
	MinFrame() int
	// MaxFrame returns the curve's maximum authored frame index.
	MaxFrame() int
	// DesignFramePerSecond returns the frame rate the curve's keyframes were
	// authored against.
	DesignFramePerSecond() int
}

// CurveInfo is the plain metadata snapshot of a CurveAdapter, captured once
// at create_animation time so AnimationInfo stays a cheap value type rather
// than holding the curve handle itself. Grounded on frame_curve_manager.rs's
// FrameCurveInfo.
type CurveInfo struct {
	MinFrame             int
	MaxFrame             int
	DesignFramePerSecond int
}

// CurveInfoFrom snapshots a CurveAdapter's metadata.
func CurveInfoFrom[V Value[V]](curve CurveAdapter[V]) CurveInfo {
	return CurveInfo{
		MinFrame:             curve.MinFrame(),
		MaxFrame:             curve.MaxFrame(),
		DesignFramePerSecond: curve.DesignFramePerSecond(),
	}
}

// GetMaxFrameForRunningSpeed rescales MaxFrame from the curve's design fps to
// a running frame rate.
func (c CurveInfo) GetMaxFrameForRunningSpeed(runningFPS int) float64 {
	return float64(c.MaxFrame) / float64(c.DesignFramePerSecond) * float64(runningFPS)
}
