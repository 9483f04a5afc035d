package anim

import "github.com/Carmen-Shannon/animcurve/common"

// TypeAnimationContext is the per-value-type owner of curve storage: a
// generationally reused array of CurveAdapter[V] handles plus a LIFO
// free-list of slots. One instance exists per animated value type V; T is
// the host's target-key type, needed here only because Anime must read a
// RuntimeInfoMap[T] and write into a ResultPool[V, T] (Go methods cannot
// introduce type parameters beyond the receiver's, unlike the original
// crate's method-level generic T). Grounded on
// original_source/src/type_animation_context.rs's TypeAnimationContext half.
type TypeAnimationContext[V Value[V], T comparable] struct {
	ty       TypeId
	curves   []CurveAdapter[V]
	freeList common.SlotFreeList
}

// NewTypeAnimationContext allocates a TypeId for V, registers it with
// runtimeInfos, and returns a ready-to-use context.
func NewTypeAnimationContext[V Value[V], T comparable](
	allocator *TypeIdAllocator,
	runtimeInfos *RuntimeInfoMap[T],
	opts ...TypeAnimationContextOption[V, T],
) *TypeAnimationContext[V, T] {
	ty := allocator.Allocate()
	runtimeInfos.AddType(ty)
	ctx := &TypeAnimationContext[V, T]{ty: ty}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Type returns this context's TypeId.
func (c *TypeAnimationContext[V, T]) Type() TypeId { return c.ty }

// Curves returns the backing curve slice, primarily for diagnostics and
// tests; index i is nil if the slot is free.
func (c *TypeAnimationContext[V, T]) Curves() []CurveAdapter[V] {
	return c.curves
}

// CreateAnimation registers curve under attr, popping a free slot if one is
// available (LIFO reuse) or else appending, and returns the resulting
// AnimationInfo.
func (c *TypeAnimationContext[V, T]) CreateAnimation(attr AttrId, curve CurveAdapter[V]) AnimationInfo {
	curveInfo := CurveInfoFrom[V](curve)

	idx, grew := c.freeList.Acquire()
	if grew {
		c.curves = append(c.curves, curve)
	} else {
		c.curves[idx] = curve
	}
	return AnimationInfo{Attr: attr, Type: c.ty, CurveInfo: curveInfo, CurveSlot: CurveSlot(idx)}
}

// RemoveOne frees animation's curve slot if it belongs to this context.
// Calling it twice for the same AnimationInfo is guarded against
// double-pushing the slot onto the free-list (see spec.md §7, supplemented
// feature #4 in SPEC_FULL.md).
func (c *TypeAnimationContext[V, T]) RemoveOne(animation AnimationInfo) {
	if animation.Type != c.ty {
		return
	}
	slot := animation.CurveSlot
	if int(slot) >= len(c.curves) || c.curves[slot] == nil {
		return
	}
	c.curves[slot] = nil
	c.freeList.Release(int(slot))
}

// Anime interpolates every RuntimeInfo staged for this TypeId and records an
// AnimeResult into pool, for every target. Per-entry failures accumulate
// into the returned error slice rather than aborting the tick
// (tick-complete semantics); a nil slice means every entry succeeded. The
// map's contents for this TypeId are left untouched — the host resets it
// between ticks.
func (c *TypeAnimationContext[V, T]) Anime(runtimeInfos *RuntimeInfoMap[T], pool ResultPool[V, T]) []error {
	var errs []error
	byTarget := runtimeInfos.GetTypeList(c.ty)
	for target, infos := range byTarget {
		for _, info := range infos {
			curve := c.lookupCurve(info.CurveSlot)
			if curve == nil {
				errs = append(errs, NewErrorf(FrameCurveNotFound, "curve slot %d", info.CurveSlot))
				continue
			}
			value := curve.Interpolate(info.AmountInSecond, info.BetweenFrame)
			result := AnimeResult[V]{Value: value, Attr: info.Attr, Weight: info.GroupWeight}
			if err := pool.RecordResult(target, info.Attr, result); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

// AnimeUnchecked is the unchecked fast path: it skips the curve-slot
// existence check and result-pool error handling, assuming the host has
// upheld every precondition (curve slots populated, targets warmed up in the
// pool). It panics on the first inconsistency rather than collecting errors.
func (c *TypeAnimationContext[V, T]) AnimeUnchecked(runtimeInfos *RuntimeInfoMap[T], pool ResultPool[V, T]) {
	byTarget := runtimeInfos.GetTypeList(c.ty)
	for target, infos := range byTarget {
		for _, info := range infos {
			curve := c.curves[info.CurveSlot]
			value := curve.Interpolate(info.AmountInSecond, info.BetweenFrame)
			result := AnimeResult[V]{Value: value, Attr: info.Attr, Weight: info.GroupWeight}
			if err := pool.RecordResult(target, info.Attr, result); err != nil {
				panic(err)
			}
		}
	}
}

func (c *TypeAnimationContext[V, T]) lookupCurve(slot CurveSlot) CurveAdapter[V] {
	if int(slot) < 0 || int(slot) >= len(c.curves) {
		return nil
	}
	return c.curves[slot]
}
