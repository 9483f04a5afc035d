package value

import (
	"testing"

	"github.com/Carmen-Shannon/animcurve/anim"
	"github.com/stretchr/testify/assert"
)

func TestLinearClampsOutsideFrameRange(t *testing.T) {
	curve := NewLinear[Float1](60,
		Keyframe[Float1]{Frame: 0, Value: Float1{X: 0}},
		Keyframe[Float1]{Frame: 60, Value: Float1{X: 100}},
	)

	assert.Equal(t, Float1{X: 0}, curve.Interpolate(-1, anim.DefaultAmountCalc()))
	assert.Equal(t, Float1{X: 100}, curve.Interpolate(10, anim.DefaultAmountCalc()))
}

func TestLinearInterpolatesMidSegment(t *testing.T) {
	curve := NewLinear[Float1](60,
		Keyframe[Float1]{Frame: 0, Value: Float1{X: 0}},
		Keyframe[Float1]{Frame: 60, Value: Float1{X: 60}},
	)

	got := curve.Interpolate(0.5, anim.DefaultAmountCalc())
	assert.InDelta(t, 30.0, float64(got.X), 1e-6)
}

func TestLinearAppliesBetweenFrameShaper(t *testing.T) {
	curve := NewLinear[Float1](60,
		Keyframe[Float1]{Frame: 0, Value: Float1{X: 0}},
		Keyframe[Float1]{Frame: 60, Value: Float1{X: 100}},
	)

	linear := curve.Interpolate(0.5, anim.DefaultAmountCalc())
	eased := curve.Interpolate(0.5, anim.FromEase(anim.EaseQuad, anim.EaseIn))
	assert.Less(t, eased.X, linear.X, "EaseIn should lag behind linear progress at the midpoint")
}

func TestLinearMinMaxAndFPS(t *testing.T) {
	curve := NewLinear[Float1](30,
		Keyframe[Float1]{Frame: 5, Value: Float1{X: 1}},
		Keyframe[Float1]{Frame: 45, Value: Float1{X: 2}},
	)

	assert.Equal(t, 5, curve.MinFrame())
	assert.Equal(t, 45, curve.MaxFrame())
	assert.Equal(t, 30, curve.DesignFramePerSecond())
}
