package anim

import "math"

// BaseFPS is the constant 60fps reference clock every frame position is
// measured against, independent of the running frame rate a group is
// started with.
const BaseFPS = 60

// GroupRuntimeInfo is per-group, per-tick scratch state owned by the
// orchestrating Context and keyed by GroupId. Edge flags are reset every
// tick by the orchestrator and set at most once per transition.
type GroupRuntimeInfo struct {
	LastAmountInSecond float64
	AmountInSecond     float64
	LoopedCount        uint32
	IsPlaying          bool
	LoopEvent          bool
	StartEvent         bool
	EndEvent           bool
}

// AnimationGroupBlendWeight is the AttrId the group itself exposes through
// ApplyModifier, so blend weight can be driven by the same curve-evaluation
// pipeline that drives ordinary attributes.
const AnimationGroupBlendWeight AttrId = 0

// AnimationGroup is the state machine that accumulates delta time, applies
// loop/ply/fill/delay policy, writes staged RuntimeInfo entries once per
// effective tick, and raises edge events. Grounded on
// original_source/src/animation_group.rs.
type AnimationGroup[T comparable] struct {
	id         GroupId
	animations []TargetAnimation[T]

	speed              float64
	fillMode           FillMode
	from, to           float64
	delayTimeMs        float64
	runningDelayTimeMs float64
	runningTimeMs      float64
	loopedCount        uint32
	loopMode           LoopMode
	deltaAccumulator   float64
	frameMs            float64
	maxFrame           float64
	forceMaxFrame      *float64
	onceTimeMs         float64
	isPlaying          bool
	blendWeight        float32
	amountInSecond     float64

	amountFn               amountCalc
	amountCalc             AnimationAmountCalc
	amountCalcBetweenFrame AnimationAmountCalc

	// Debug forces every tick through the frame gate regardless of
	// deltaAccumulator, matching the original's benchmark/test mode.
	Debug bool
}

// NewAnimationGroup returns an idle group with the original crate's default
// scheduling fields (speed 1, from/to [0,1], frame_ms 16.6, loop mode Not,
// blend_weight 1). The Not mode's pass count of 1 is set by Start*.
func NewAnimationGroup[T comparable]() *AnimationGroup[T] {
	return &AnimationGroup[T]{
		speed:                  1,
		from:                   0,
		to:                     1,
		frameMs:                16.6,
		onceTimeMs:             1,
		blendWeight:            1.0,
		fillMode:               FillNone,
		loopMode:               LoopNot(),
		amountFn:               getAmountCalc(LoopNot()),
		amountCalc:             DefaultAmountCalc(),
		amountCalcBetweenFrame: DefaultAmountCalc(),
	}
}

// SetID stamps the group's manager-assigned id. Called once by GroupManager.
func (g *AnimationGroup[T]) SetID(id GroupId) { g.id = id }

// ID returns the group's manager-assigned id.
func (g *AnimationGroup[T]) ID() GroupId { return g.id }

// MaxFrame returns the group's running total frame count: the forced
// override if set, else the intrinsic maximum across its animations.
func (g *AnimationGroup[T]) MaxFrame() float64 {
	if g.forceMaxFrame != nil {
		return *g.forceMaxFrame
	}
	return g.maxFrame
}

// ForceTotalFrame overrides MaxFrame with frames rescaled from
// designFramePerSecond to BaseFPS. Passing a nil frames or a zero
// designFramePerSecond reverts to the intrinsic maximum. Must be set before
// Start*.
func (g *AnimationGroup[T]) ForceTotalFrame(designFramePerSecond int, frames *float64) {
	if designFramePerSecond == 0 || frames == nil {
		g.forceMaxFrame = nil
		return
	}
	f := BaseFPS * (*frames / float64(designFramePerSecond))
	g.forceMaxFrame = &f
}

// BlendWeight returns the group's current blend weight.
func (g *AnimationGroup[T]) BlendWeight() float32 { return g.blendWeight }

// Speed returns the group's current playback speed.
func (g *AnimationGroup[T]) Speed() float64 { return g.speed }

// FillModeValue returns the group's current fill mode.
func (g *AnimationGroup[T]) FillModeValue() FillMode { return g.fillMode }

// IsPlaying reports the group's own playing flag (distinct from the
// orchestrator-level GroupRuntimeInfo.IsPlaying snapshot the tick gate
// actually reads).
func (g *AnimationGroup[T]) IsPlaying() bool { return g.isPlaying }

// Animations returns the group's target animations in insertion order.
func (g *AnimationGroup[T]) Animations() []TargetAnimation[T] {
	return g.animations
}

// AddTargetAnimation appends a TargetAnimation and bumps the group's
// intrinsic max frame.
func (g *AnimationGroup[T]) AddTargetAnimation(ta TargetAnimation[T]) error {
	g.maxFrame = math.Max(g.maxFrame, ta.Animation.GetMaxFrameForRunningSpeed(BaseFPS))
	g.animations = append(g.animations, ta)
	return nil
}

// StartComplete starts the group to play its full intrinsic range once
// over seconds, regardless of how many frames it was authored with.
func (g *AnimationGroup[T]) StartComplete(
	seconds float64,
	mode LoopMode,
	framePerSecond int,
	betweenFrame AnimationAmountCalc,
	groupInfo *GroupRuntimeInfo,
	delayTimeMs float64,
	fill FillMode,
) error {
	speed := 1.0 / seconds
	return g.start(speed, mode, 0, g.MaxFrame(), framePerSecond, groupInfo, betweenFrame, delayTimeMs, fill)
}

// StartWithProgress starts the group between two fractional positions
// (0..1) of its intrinsic range.
func (g *AnimationGroup[T]) StartWithProgress(
	speed float64,
	mode LoopMode,
	fromFraction, toFraction float64,
	framePerSecond int,
	groupInfo *GroupRuntimeInfo,
	betweenFrame AnimationAmountCalc,
	delayTimeMs float64,
	fill FillMode,
) error {
	maxFrame := g.MaxFrame()
	return g.start(speed, mode, fromFraction*maxFrame, toFraction*maxFrame, framePerSecond, groupInfo, betweenFrame, delayTimeMs, fill)
}

// start is the shared configuration path for every Start* entry point.
// Unlike the original crate (which discards the frame-per-second validation
// error via `let _ = ...`), this rejects fps==0 before mutating any state,
// matching spec.md §7's AnimationFramePerSecondCannotZero contract.
func (g *AnimationGroup[T]) start(
	speed float64,
	mode LoopMode,
	from, to float64,
	framePerSecond int,
	groupInfo *GroupRuntimeInfo,
	betweenFrame AnimationAmountCalc,
	delayTimeMs float64,
	fill FillMode,
) error {
	if g.isPlaying {
		return nil
	}
	if framePerSecond == 0 {
		return NewError(AnimationFramePerSecondCannotZero)
	}

	g.isPlaying = true
	g.speed = math.Abs(speed)
	g.runningTimeMs = 0
	g.loopedCount = 0
	g.deltaAccumulator = 0
	g.amountInSecond = 0
	g.delayTimeMs = delayTimeMs
	g.runningDelayTimeMs = 0
	g.fillMode = fill

	if from > to {
		from, to = to, from
	}

	g.frameMs = 1000.0 / float64(framePerSecond)
	if mode.kind == loopNot {
		one := uint32(1)
		mode.Count = &one
	}
	g.loopMode = mode
	g.amountFn = getAmountCalc(mode)
	g.from = from
	g.to = to
	g.onceTimeMs = (to - from) / BaseFPS * 1000.0
	g.amountCalcBetweenFrame = betweenFrame

	switch mode.kind {
	case loopOpposite, loopOppositePly:
		g.amountInSecond = to / BaseFPS
	default:
		g.amountInSecond = from / BaseFPS
	}

	groupInfo.AmountInSecond = g.amountInSecond
	groupInfo.LastAmountInSecond = g.amountInSecond
	groupInfo.StartEvent = false
	groupInfo.LoopEvent = false
	groupInfo.EndEvent = false
	groupInfo.LoopedCount = 0

	return nil
}

// SetAmountCalc sets the group-level shaper applied to the whole-run amount.
func (g *AnimationGroup[T]) SetAmountCalc(calc AnimationAmountCalc) {
	g.amountCalc = calc
}

// Stop flips the group's own playing flag without clearing amountInSecond.
// The orchestrator-level Context.Stop additionally zeroes the
// GroupRuntimeInfo snapshot (see context.go); Context.Pause calls this same
// method but leaves the snapshot untouched, so the two differ only in what
// the orchestrator does with progress bookkeeping, not in this method.
func (g *AnimationGroup[T]) Stop() {
	g.isPlaying = false
}

// Clear drains and returns every TargetAnimation's AnimationInfo, orphaning
// them for the caller (typically GroupManager.Del) to free from their type
// contexts.
func (g *AnimationGroup[T]) Clear() []AnimationInfo {
	result := make([]AnimationInfo, 0, len(g.animations))
	for _, ta := range g.animations {
		result = append(result, ta.Animation)
	}
	g.animations = nil
	return result
}

// ApplyModifier implements AnimatableTargetModifier[float32] so a group's
// blend weight can itself be driven through the curve pipeline.
func (g *AnimationGroup[T]) ApplyModifier(attr AttrId, value float32) error {
	if attr == AnimationGroupBlendWeight {
		g.blendWeight = value
	}
	return nil
}

// Anime advances the group by deltaMs, writing staged RuntimeInfo entries
// into runtimeInfos and updating groupInfo's edge flags and progress
// snapshot. See spec.md §4.2 for the full twelve-step contract this
// implements.
func (g *AnimationGroup[T]) Anime(runtimeInfos *RuntimeInfoMap[T], deltaMs float64, groupInfo *GroupRuntimeInfo) {
	groupInfo.LastAmountInSecond = groupInfo.AmountInSecond

	if !g.isPlaying {
		return
	}

	if g.delayTimeMs-g.runningDelayTimeMs > g.frameMs*0.75 {
		g.runningDelayTimeMs += deltaMs
		if g.fillMode.Has(FillBackwards) {
			holdAmount := g.loopMode.holdAmount()
			amountInSecond := holdAmount*g.onceTimeMs/1000.0 + g.from/BaseFPS
			g.amountInSecond = amountInSecond
			groupInfo.AmountInSecond = amountInSecond
			g.updateToInfos(runtimeInfos)
		}
		return
	}

	if math.Abs(g.runningTimeMs) < 0.001 {
		groupInfo.StartEvent = true
	}

	g.deltaAccumulator += deltaMs

	if !(groupInfo.StartEvent || g.deltaAccumulator >= g.frameMs*0.75 || g.Debug) {
		return
	}

	amount, loopCount := g.amountFn(math.Max(g.onceTimeMs-g.frameMs*0.5, g.frameMs*0.5), g.runningTimeMs)

	if g.loopedCount != loopCount {
		if g.loopMode.Count != nil {
			if *g.loopMode.Count <= loopCount {
				groupInfo.EndEvent = true
				g.isPlaying = false
				if g.fillMode.Has(FillForwards) {
					amount = g.loopMode.terminalAmount()
				}
			} else {
				groupInfo.LoopEvent = true
			}
		} else {
			groupInfo.LoopEvent = true
		}
	}

	animeAmount := g.amountCalc.Calc(amount)
	amountInSecond := animeAmount*g.onceTimeMs/1000.0 + g.from/BaseFPS

	g.loopedCount = loopCount
	g.amountInSecond = amountInSecond
	groupInfo.AmountInSecond = amountInSecond
	groupInfo.LoopedCount = loopCount

	g.updateToInfos(runtimeInfos)

	g.runningTimeMs += g.deltaAccumulator * g.speed
	g.deltaAccumulator = 0
}

func (g *AnimationGroup[T]) updateToInfos(runtimeInfos *RuntimeInfoMap[T]) {
	for _, ta := range g.animations {
		info := RuntimeInfo{
			GroupWeight:    g.blendWeight,
			AmountInSecond: g.amountInSecond,
			Attr:           ta.Animation.Attr,
			CurveSlot:      ta.Animation.CurveSlot,
			BetweenFrame:   g.amountCalcBetweenFrame,
		}
		_ = runtimeInfos.Insert(ta.Animation.Type, ta.Target, info)
	}
}
