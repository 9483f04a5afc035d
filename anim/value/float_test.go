package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat1InterpolateBlendsLinearly(t *testing.T) {
	a := Float1{X: 0}
	b := Float1{X: 10}
	assert.Equal(t, Float1{X: 5}, a.Interpolate(b, 0.5))
	assert.Equal(t, a, a.Interpolate(b, 0))
	assert.Equal(t, b, a.Interpolate(b, 1))
}

func TestFloat1AddAndScale(t *testing.T) {
	a := Float1{X: 2}
	b := Float1{X: 3}
	assert.Equal(t, Float1{X: 5}, a.Add(b))
	assert.Equal(t, Float1{X: 4}, a.Scale(2))
}

func TestFloat3InterpolatesPerComponent(t *testing.T) {
	a := Float3{X: 0, Y: 10, Z: -4}
	b := Float3{X: 10, Y: 0, Z: 4}
	got := a.Interpolate(b, 0.25)
	assert.InDelta(t, 2.5, got.X, 1e-6)
	assert.InDelta(t, 7.5, got.Y, 1e-6)
	assert.InDelta(t, -2.0, got.Z, 1e-6)
}

func TestFloat4AddIsComponentWise(t *testing.T) {
	a := Float4{X: 1, Y: 2, Z: 3, W: 4}
	b := Float4{X: 4, Y: 3, Z: 2, W: 1}
	assert.Equal(t, Float4{X: 5, Y: 5, Z: 5, W: 5}, a.Add(b))
}
