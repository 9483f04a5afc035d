package anim

import "math"

// Shaper reshapes a normalized progress value in [0,1] to another value in
// [0,1]. It is the building block for both the group-level amount shaper and
// the between-frame shaper handed to the curve interpolator.
type Shaper func(t float64) float64

// EaseFamily names the easing curve family used by NewEaseShaper.
type EaseFamily int

const (
	EaseSine EaseFamily = iota
	EaseQuad
	EaseCubic
	EaseQuart
	EaseExpo
)

// EaseDirection selects which half of an ease family (or both) a shaper
// applies.
type EaseDirection int

const (
	EaseIn EaseDirection = iota
	EaseOut
	EaseInOut
)

// JumpMode names a step shaper's boundary-inclusion behavior, mirroring the
// five conventional CSS-style step jump terms.
type JumpMode int

const (
	// JumpEnd holds the previous step's value until the step boundary, then
	// jumps; the final step lands exactly on 1 at t=1.
	JumpEnd JumpMode = iota
	// JumpStart jumps immediately at the start of each step.
	JumpStart
	// JumpNone omits both the t=0 and t=1 boundary steps, producing
	// steps-1 effective jumps.
	JumpNone
	// JumpBoth includes an extra step at both boundaries.
	JumpBoth
	// JumpNearest rounds to the nearest step boundary.
	JumpNearest
)

// Identity is the default shaper: no reshaping.
func Identity(t float64) float64 { return t }

// NewEaseShaper builds a Shaper from an ease family and direction. Families
// follow the standard named curves; InOut blends In over [0,0.5] and Out
// over [0.5,1].
func NewEaseShaper(family EaseFamily, direction EaseDirection) Shaper {
	in := easeInFn(family)
	switch direction {
	case EaseOut:
		return func(t float64) float64 { return 1 - in(1-t) }
	case EaseInOut:
		return func(t float64) float64 {
			if t < 0.5 {
				return in(2*t) / 2
			}
			return 1 - in(2*(1-t))/2
		}
	default:
		return in
	}
}

func easeInFn(family EaseFamily) func(float64) float64 {
	switch family {
	case EaseQuad:
		return func(t float64) float64 { return t * t }
	case EaseCubic:
		return func(t float64) float64 { return t * t * t }
	case EaseQuart:
		return func(t float64) float64 { return t * t * t * t }
	case EaseExpo:
		return func(t float64) float64 {
			if t <= 0 {
				return 0
			}
			return math.Pow(2, 10*(t-1))
		}
	default: // EaseSine
		return func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }
	}
}

// NewStepShaper builds a Shaper that quantizes progress into the given
// number of discrete steps, with boundary behavior selected by mode.
func NewStepShaper(steps int, mode JumpMode) Shaper {
	if steps < 1 {
		steps = 1
	}
	return func(t float64) float64 {
		switch mode {
		case JumpStart:
			return math.Min(float64(steps), math.Floor(t*float64(steps))+1) / float64(steps)
		case JumpNone:
			if steps <= 1 {
				return t
			}
			n := float64(steps - 1)
			return math.Min(n, math.Max(0, math.Floor(t*float64(steps)))) / n
		case JumpBoth:
			n := float64(steps + 1)
			return math.Min(n, math.Floor(t*float64(steps))+1) / n
		case JumpNearest:
			return math.Round(t*float64(steps)) / float64(steps)
		default: // JumpEnd
			if t >= 1 {
				return 1
			}
			return math.Floor(t*float64(steps)) / float64(steps)
		}
	}
}

// AnimationAmountCalc is an opaque, cheaply-cloneable wrapper around a
// Shaper, matching the original crate's AnimationAmountCalc: the host
// constructs one from an ease family, a step configuration, or a custom
// function, and attaches it either to a group's whole-run amount or to the
// between-frame interpolation step.
type AnimationAmountCalc struct {
	shaper Shaper
}

// NewAmountCalc wraps an arbitrary Shaper.
func NewAmountCalc(shaper Shaper) AnimationAmountCalc {
	if shaper == nil {
		shaper = Identity
	}
	return AnimationAmountCalc{shaper: shaper}
}

// DefaultAmountCalc is the identity shaper, the zero value's effective
// behavior.
func DefaultAmountCalc() AnimationAmountCalc {
	return AnimationAmountCalc{shaper: Identity}
}

// FromEase builds an AnimationAmountCalc from an ease family/direction pair.
func FromEase(family EaseFamily, direction EaseDirection) AnimationAmountCalc {
	return AnimationAmountCalc{shaper: NewEaseShaper(family, direction)}
}

// FromSteps builds an AnimationAmountCalc from a step count and jump mode.
func FromSteps(steps int, mode JumpMode) AnimationAmountCalc {
	return AnimationAmountCalc{shaper: NewStepShaper(steps, mode)}
}

// Calc applies the wrapped shaper, defaulting to identity for the zero
// value.
func (a AnimationAmountCalc) Calc(t float64) float64 {
	if a.shaper == nil {
		return t
	}
	return a.shaper(t)
}
