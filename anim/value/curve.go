package value

import "github.com/Carmen-Shannon/animcurve/anim"

// Keyframe is one sample point on a Linear curve, in frames at
// DesignFramePerSecond.
type Keyframe[V anim.Value[V]] struct {
	Frame int
	Value V
}

// Linear is a minimal reference CurveAdapter[V]: a sorted list of keyframes,
// linearly interpolated between neighbors. Real hosts typically plug in a
// richer keyframe library; Linear exists to exercise and test the engine
// without one.
type Linear[V anim.Value[V]] struct {
	frames    []Keyframe[V]
	designFPS int
}

// NewLinear returns a Linear curve over frames (must be sorted ascending by
// Frame and non-empty) sampled at designFPS.
func NewLinear[V anim.Value[V]](designFPS int, frames ...Keyframe[V]) *Linear[V] {
	return &Linear[V]{frames: frames, designFPS: designFPS}
}

// MinFrame returns the first keyframe's frame index.
func (c *Linear[V]) MinFrame() int { return c.frames[0].Frame }

// MaxFrame returns the last keyframe's frame index.
func (c *Linear[V]) MaxFrame() int { return c.frames[len(c.frames)-1].Frame }

// DesignFramePerSecond returns the frame rate frames were authored at.
func (c *Linear[V]) DesignFramePerSecond() int { return c.designFPS }

// Interpolate samples the curve at amountInSeconds, applying betweenFrame's
// shaper to the local segment fraction before blending.
func (c *Linear[V]) Interpolate(amountInSeconds float64, betweenFrame anim.AnimationAmountCalc) V {
	frame := amountInSeconds * float64(c.designFPS)

	if frame <= float64(c.frames[0].Frame) {
		return c.frames[0].Value
	}
	last := len(c.frames) - 1
	if frame >= float64(c.frames[last].Frame) {
		return c.frames[last].Value
	}

	for i := 0; i < last; i++ {
		a, b := c.frames[i], c.frames[i+1]
		if frame >= float64(a.Frame) && frame <= float64(b.Frame) {
			span := float64(b.Frame - a.Frame)
			if span <= 0 {
				return b.Value
			}
			t := (frame - float64(a.Frame)) / span
			t = betweenFrame.Calc(t)
			return a.Value.Interpolate(b.Value, t)
		}
	}
	return c.frames[last].Value
}
