package anim

import "github.com/Carmen-Shannon/animcurve/common"

// ContextOption is a functional option for configuring a Context, following
// the teacher's With* builder convention (engine/engine_builder.go).
type ContextOption[T comparable] func(*Context[T])

// WithTimeScale sets the context's initial TimeScale. A zero scale is
// treated as "unset" and falls back to 1.0, so WithTimeScale(0) behaves the
// same as omitting the option.
func WithTimeScale[T comparable](scale float32) ContextOption[T] {
	return func(c *Context[T]) {
		c.TimeScale = common.Coalesce(scale, 1.0)
	}
}

// WithDebug enables the frame-gate bypass on every group the context
// creates from then on.
func WithDebug[T comparable](flag bool) ContextOption[T] {
	return func(c *Context[T]) {
		c.debug = flag
	}
}

// WithGroupCapacity preallocates slot storage for n groups.
func WithGroupCapacity[T comparable](n int) ContextOption[T] {
	return func(c *Context[T]) {
		c.groups = NewGroupManager[T](WithCapacity[T](n))
	}
}
