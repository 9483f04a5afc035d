package anim

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// ContextTimeScale is the AttrId Context exposes through ApplyModifier, so a
// context's own global time scale can be driven through the curve pipeline
// like any other attribute.
const ContextTimeScale AttrId = 0

// ticker is implemented by a (TypeAnimationContext, ResultPool) pairing so
// Context can drive heterogeneous value types through one tick loop without
// itself being generic over V. Grounded on the single-threaded tick loop in
// original_source/src/animation_context.rs's anime_curve_calc, generalized
// to the AnimeParallel extension described in SPEC_FULL.md §3: disjoint
// TypeId slices of the same RuntimeInfoMap are safe to evaluate
// concurrently.
type ticker[T comparable] interface {
	tick(runtimeInfos *RuntimeInfoMap[T]) []error
}

// TypeContextBinding pairs a TypeAnimationContext with the ResultPool it
// writes into, and is the unit Context schedules per tick.
type TypeContextBinding[V Value[V], T comparable] struct {
	Context *TypeAnimationContext[V, T]
	Pool    ResultPool[V, T]
}

func (b *TypeContextBinding[V, T]) tick(runtimeInfos *RuntimeInfoMap[T]) []error {
	return b.Context.Anime(runtimeInfos, b.Pool)
}

// Context is the top-level orchestrator: it owns every animation group, the
// per-group runtime snapshot, and the registered type-context bindings, and
// is itself animatable (its TimeScale attribute). Grounded on
// original_source/src/animation_context.rs's AnimationContextAmount.
type Context[T comparable] struct {
	groups *GroupManager[T]

	groupInfos map[GroupId]*GroupRuntimeInfo
	tickers    []ticker[T]

	TimeScale float32

	removedAnimations []AnimationInfo

	debug bool
	pool  *worker.DynamicWorkerPool
}

// NewContext returns an empty Context with TimeScale 1.
func NewContext[T comparable](opts ...ContextOption[T]) *Context[T] {
	c := &Context[T]{
		groups:     NewGroupManager[T](),
		groupInfos: make(map[GroupId]*GroupRuntimeInfo),
		TimeScale:  1.0,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RegisterTypeContext adds a (TypeAnimationContext, ResultPool) pair to the
// set AnimeCurveCalc and AnimeParallel drive each tick.
func RegisterTypeContext[V Value[V], T comparable](c *Context[T], binding *TypeContextBinding[V, T]) {
	c.tickers = append(c.tickers, binding)
}

// Debug toggles the frame-gate bypass on every future-created group; it
// does not retroactively affect already-created groups.
func (c *Context[T]) Debug(flag bool) { c.debug = flag }

// CreateAnimationGroup creates a new idle group and its runtime snapshot.
func (c *Context[T]) CreateAnimationGroup() GroupId {
	id := c.groups.Create()
	info := &GroupRuntimeInfo{}
	c.groupInfos[id] = info
	if c.debug {
		if g, ok := c.groups.Get(id); ok {
			g.Debug = true
		}
	}
	return id
}

// DelAnimationGroup removes the group for id, appending its orphaned
// AnimationInfo records onto removedAnimations for later draining via
// ApplyRemovedAnimations. Unknown or already-removed ids are a silent no-op.
func (c *Context[T]) DelAnimationGroup(id GroupId) {
	orphaned := c.groups.Del(id)
	delete(c.groupInfos, id)
	c.removedAnimations = append(c.removedAnimations, orphaned...)
}

// ApplyRemovedAnimations drains every AnimationInfo accumulated since the
// last call, handing each one to remove from the owning TypeAnimationContext
// (via RemoveOne) before the slot can be reused by CreateAnimation.
func (c *Context[T]) ApplyRemovedAnimations(remove func(AnimationInfo)) {
	for _, info := range c.removedAnimations {
		remove(info)
	}
	c.removedAnimations = c.removedAnimations[:0]
}

// ClearRemovedAnimations discards accumulated removals without applying
// them, for hosts that free curve slots through another path.
func (c *Context[T]) ClearRemovedAnimations() {
	c.removedAnimations = c.removedAnimations[:0]
}

// AddTargetAnimation attaches animation to group under target.
func (c *Context[T]) AddTargetAnimation(id GroupId, target T, animation AnimationInfo) error {
	group, ok := c.groups.Get(id)
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	return group.AddTargetAnimation(TargetAnimation[T]{Target: target, Animation: animation})
}

// StartComplete starts group id over its full intrinsic range, in seconds.
func (c *Context[T]) StartComplete(
	id GroupId,
	seconds float64,
	mode LoopMode,
	framePerSecond int,
	betweenFrame AnimationAmountCalc,
	delayTimeMs float64,
	fill FillMode,
) error {
	group, ok := c.groups.Get(id)
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	info, ok := c.groupInfos[id]
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	if info.IsPlaying {
		return NewError(AnimationGroupHasStarted)
	}
	info.IsPlaying = true
	return group.StartComplete(seconds, mode, framePerSecond, betweenFrame, info, delayTimeMs, fill)
}

// StartWithProgress starts group id between fromFraction and toFraction of
// its intrinsic range.
func (c *Context[T]) StartWithProgress(
	id GroupId,
	speed float64,
	mode LoopMode,
	fromFraction, toFraction float64,
	framePerSecond int,
	betweenFrame AnimationAmountCalc,
	delayTimeMs float64,
	fill FillMode,
) error {
	group, ok := c.groups.Get(id)
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	info, ok := c.groupInfos[id]
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	if info.IsPlaying {
		return NewError(AnimationGroupHasStarted)
	}
	info.IsPlaying = true
	return group.StartWithProgress(speed, mode, fromFraction, toFraction, framePerSecond, info, betweenFrame, delayTimeMs, fill)
}

// Pause stops group id from advancing while preserving its progress
// snapshot (AmountInSecond, LoopedCount); unlike Stop it does not zero the
// snapshot (see DESIGN.md OQ1). A later Start still begins a fresh run from
// the start of the range.
func (c *Context[T]) Pause(id GroupId) error {
	group, ok := c.groups.Get(id)
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	info, ok := c.groupInfos[id]
	if !ok || !info.IsPlaying {
		return NewError(AnimationGroupNotPlaying)
	}
	info.IsPlaying = false
	group.Stop()
	return nil
}

// Stop halts group id and resets its runtime snapshot back to zero, so a
// later Start begins fresh (see DESIGN.md OQ1).
func (c *Context[T]) Stop(id GroupId) error {
	group, ok := c.groups.Get(id)
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	info, ok := c.groupInfos[id]
	if !ok || !info.IsPlaying {
		return NewError(AnimationGroupNotPlaying)
	}
	group.Stop()
	*info = GroupRuntimeInfo{}
	return nil
}

// ForceGroupTotalFrames overrides group id's reported total frame count.
func (c *Context[T]) ForceGroupTotalFrames(id GroupId, designFramePerSecond int, frames *float64) error {
	group, ok := c.groups.Get(id)
	if !ok {
		return NewError(AnimationGroupNotFound)
	}
	group.ForceTotalFrame(designFramePerSecond, frames)
	return nil
}

// AnimationGroupWeight returns group id's current blend weight.
func (c *Context[T]) AnimationGroupWeight(id GroupId) (float32, error) {
	group, ok := c.groups.Get(id)
	if !ok {
		return 0, NewError(AnimationGroupNotFound)
	}
	return group.BlendWeight(), nil
}

// ApplyModifier implements the AnimatableTargetModifier contract for
// Context's own TimeScale attribute.
func (c *Context[T]) ApplyModifier(attr AttrId, value float32) error {
	if attr == ContextTimeScale {
		c.TimeScale = value
	}
	return nil
}

// AnimeCurveCalc advances every playing group by deltaMs (scaled by
// TimeScale) and writes their staged RuntimeInfo entries into runtimeInfos.
// Single-threaded; AnimeParallel then evaluates the staged entries across
// the registered type contexts concurrently.
func (c *Context[T]) AnimeCurveCalc(deltaMs uint64, runtimeInfos *RuntimeInfoMap[T]) {
	scaled := float64(deltaMs) * float64(c.TimeScale)
	for id, info := range c.groupInfos {
		info.StartEvent = false
		info.EndEvent = false
		info.LoopEvent = false
		info.LastAmountInSecond = info.AmountInSecond

		if !info.IsPlaying {
			continue
		}
		group, ok := c.groups.Get(id)
		if !ok {
			continue
		}
		group.Anime(runtimeInfos, scaled, info)
		if !group.IsPlaying() {
			// the group auto-stopped (End reached with no further looping);
			// mirror that back onto the runtime snapshot so the tick loop
			// stops driving it.
			info.IsPlaying = false
		}
	}
}

// AnimationEvent dispatches listener's start/end/loop edges from group id's
// runtime snapshot, and queries frameEvent (if non-nil) for the interval
// traversed this tick.
func (c *Context[T]) AnimationEvent(id GroupId, listener *AnimationListener[any], frameEvent *CurveFrameEvent[any]) {
	info, ok := c.groupInfos[id]
	if !ok {
		return
	}
	if info.StartEvent {
		listener.FireStart()
	}
	if info.EndEvent {
		listener.FireEnd()
	}
	if info.LoopEvent {
		listener.FireLoop(info.LoopedCount)
	}
	if frameEvent != nil {
		if datas, ok := frameEvent.Query(info.LastAmountInSecond, info.AmountInSecond); ok {
			listener.FireFrameEvent(datas)
		}
	}
}

// AnimeParallel runs every registered ticker concurrently against
// runtimeInfos, using a bounded, reused worker pool with a WaitGroup for
// per-tick barrier sync (pool.Wait() blocks until workers idle-exit, which
// doesn't fit a per-tick workload), and returns the union of every ticker's
// accumulated errors. Safe because each TypeAnimationContext only reads its
// own TypeId's slice of runtimeInfos and writes its own ResultPool.
// Grounded on engine/scene/scene.go's computePool usage.
func (c *Context[T]) AnimeParallel(runtimeInfos *RuntimeInfoMap[T]) []error {
	if len(c.tickers) == 0 {
		return nil
	}
	if c.pool == nil {
		c.pool = worker.NewDynamicWorkerPool(len(c.tickers), 256, 5*time.Second)
	}

	var wg sync.WaitGroup
	results := make([][]error, len(c.tickers))

	for i, t := range c.tickers {
		wg.Add(1)
		i, t := i, t
		c.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (result any, err error) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						log.Printf("animation ticker %d recovered from panic: %v", i, r)
						results[i] = []error{fmt.Errorf("ticker %d panicked: %v", i, r)}
					}
				}()
				results[i] = t.tick(runtimeInfos)
				return nil, nil
			},
		})
	}
	wg.Wait()

	var errs []error
	for _, r := range results {
		errs = append(errs, r...)
	}
	return errs
}
