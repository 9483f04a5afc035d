// Package value supplies the built-in animatable value types: Float1
// through Float4, each implementing anim.Value[V]. Grounded on
// original_source/src/lib.rs's AnimatableFloat1..4.
package value

// Float1 is a single animatable float32.
type Float1 struct{ X float32 }

// Add returns the component-wise sum of f and other.
func (f Float1) Add(other Float1) Float1 { return Float1{X: f.X + other.X} }

// Scale returns f scaled by scalar.
func (f Float1) Scale(scalar float64) Float1 { return Float1{X: f.X * float32(scalar)} }

// Interpolate linearly blends f toward other by amount in [0,1].
func (f Float1) Interpolate(other Float1, amount float64) Float1 {
	a := float32(amount)
	return Float1{X: f.X*(1-a) + other.X*a}
}

// Float2 is a pair of animatable float32 components.
type Float2 struct{ X, Y float32 }

func (f Float2) Add(other Float2) Float2 {
	return Float2{X: f.X + other.X, Y: f.Y + other.Y}
}

func (f Float2) Scale(scalar float64) Float2 {
	s := float32(scalar)
	return Float2{X: f.X * s, Y: f.Y * s}
}

func (f Float2) Interpolate(other Float2, amount float64) Float2 {
	a := float32(amount)
	return Float2{
		X: f.X*(1-a) + other.X*a,
		Y: f.Y*(1-a) + other.Y*a,
	}
}

// Float3 is a triple of animatable float32 components.
type Float3 struct{ X, Y, Z float32 }

func (f Float3) Add(other Float3) Float3 {
	return Float3{X: f.X + other.X, Y: f.Y + other.Y, Z: f.Z + other.Z}
}

func (f Float3) Scale(scalar float64) Float3 {
	s := float32(scalar)
	return Float3{X: f.X * s, Y: f.Y * s, Z: f.Z * s}
}

func (f Float3) Interpolate(other Float3, amount float64) Float3 {
	a := float32(amount)
	return Float3{
		X: f.X*(1-a) + other.X*a,
		Y: f.Y*(1-a) + other.Y*a,
		Z: f.Z*(1-a) + other.Z*a,
	}
}

// Float4 is a quadruple of animatable float32 components.
type Float4 struct{ X, Y, Z, W float32 }

func (f Float4) Add(other Float4) Float4 {
	return Float4{X: f.X + other.X, Y: f.Y + other.Y, Z: f.Z + other.Z, W: f.W + other.W}
}

func (f Float4) Scale(scalar float64) Float4 {
	s := float32(scalar)
	return Float4{X: f.X * s, Y: f.Y * s, Z: f.Z * s, W: f.W * s}
}

func (f Float4) Interpolate(other Float4, amount float64) Float4 {
	a := float32(amount)
	return Float4{
		X: f.X*(1-a) + other.X*a,
		Y: f.Y*(1-a) + other.Y*a,
		Z: f.Z*(1-a) + other.Z*a,
		W: f.W*(1-a) + other.W*a,
	}
}
