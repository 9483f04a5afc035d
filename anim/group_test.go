package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationGroupSimpleEase(t *testing.T) {
	// spec.md §8 scenario 1: one 60-frame curve, design_fps=60, mode=Not,
	// speed=1, 100ms ticks -> amount_in_seconds ~= 0.1 per tick elapsed.
	// The group's progress lags one tick behind its delta accumulator (the
	// tick that folds a delta into running time samples the *pre-fold*
	// position), so the first tick (which only raises the start edge)
	// reports amount 0 and the second tick reports the ~0.1 the scenario
	// describes.
	group := NewAnimationGroup[string]()
	require.NoError(t, group.AddTargetAnimation(TargetAnimation[string]{
		Target:    "cube",
		Animation: AnimationInfo{Attr: 0, Type: 0, CurveInfo: CurveInfo{MinFrame: 0, MaxFrame: 60, DesignFramePerSecond: 60}},
	}))

	info := &GroupRuntimeInfo{}
	require.NoError(t, group.StartComplete(1.0, LoopNot(), 60, DefaultAmountCalc(), info, 0, FillNone))

	runtimeInfos := NewRuntimeInfoMap[string]()
	runtimeInfos.AddType(0)

	group.Anime(runtimeInfos, 100, info)
	assert.True(t, info.StartEvent)
	assert.InDelta(t, 0.0, info.AmountInSecond, 1e-6)

	group.Anime(runtimeInfos, 100, info)
	assert.InDelta(t, 0.1, info.AmountInSecond, 0.005)
}

func TestAnimationGroupPlyRoundTrip(t *testing.T) {
	// spec.md §8 scenario 2: PositivePly(2), design_fps=60, 30-frame curve,
	// ticks of 250ms over 2s total -> exactly 1 Loop and 1 End, final amount
	// 0 (even pass count), FillForwards clamps to 0 (terminalAmount for
	// PositivePly).
	group := NewAnimationGroup[string]()
	require.NoError(t, group.AddTargetAnimation(TargetAnimation[string]{
		Target:    "cube",
		Animation: AnimationInfo{Attr: 0, Type: 0, CurveInfo: CurveInfo{MinFrame: 0, MaxFrame: 30, DesignFramePerSecond: 60}},
	}))

	count := uint32(2)
	info := &GroupRuntimeInfo{}
	require.NoError(t, group.StartComplete(0.5, LoopPositivePly(&count), 60, DefaultAmountCalc(), info, 0, FillForwards))

	runtimeInfos := NewRuntimeInfoMap[string]()
	runtimeInfos.AddType(0)

	var loopEvents, endEvents int
	for i := 0; i < 8; i++ {
		info.LoopEvent = false
		info.EndEvent = false
		group.Anime(runtimeInfos, 250, info)
		if info.LoopEvent {
			loopEvents++
		}
		if info.EndEvent {
			endEvents++
		}
	}

	assert.Equal(t, 1, loopEvents)
	assert.Equal(t, 1, endEvents)
	assert.InDelta(t, 0.0, info.AmountInSecond, 1e-6)
	assert.False(t, group.IsPlaying())
}

func TestAnimationGroupDelayedBackwardsFillHoldsStart(t *testing.T) {
	// spec.md §8 scenario 3: 60-frame curve, delay 200ms, FillBackwards;
	// three 50ms ticks (150ms total, inside the 200ms delay window) should
	// hold the start position and raise no Start event.
	group := NewAnimationGroup[string]()
	require.NoError(t, group.AddTargetAnimation(TargetAnimation[string]{
		Target:    "cube",
		Animation: AnimationInfo{Attr: 0, Type: 0, CurveInfo: CurveInfo{MinFrame: 0, MaxFrame: 60, DesignFramePerSecond: 60}},
	}))

	info := &GroupRuntimeInfo{}
	require.NoError(t, group.StartComplete(1.0, LoopNot(), 60, DefaultAmountCalc(), info, 200, FillBackwards))

	runtimeInfos := NewRuntimeInfoMap[string]()
	runtimeInfos.AddType(0)

	for i := 0; i < 3; i++ {
		group.Anime(runtimeInfos, 50, info)
		assert.False(t, info.StartEvent, "no start event while the delay has not elapsed")
		assert.InDelta(t, 0.0, info.AmountInSecond, 1e-6)
	}
}

func TestAnimationGroupNotModeEndsExactlyOnceWithNoLoopEvents(t *testing.T) {
	// spec.md §8: a Not-mode animation over a finite duration fires exactly
	// one Start and one End event with zero Loop events, then stays stopped.
	group := NewAnimationGroup[string]()
	require.NoError(t, group.AddTargetAnimation(TargetAnimation[string]{
		Target:    "cube",
		Animation: AnimationInfo{Attr: 0, Type: 0, CurveInfo: CurveInfo{MinFrame: 0, MaxFrame: 60, DesignFramePerSecond: 60}},
	}))

	info := &GroupRuntimeInfo{}
	require.NoError(t, group.StartComplete(1.0, LoopNot(), 60, DefaultAmountCalc(), info, 0, FillNone))

	runtimeInfos := NewRuntimeInfoMap[string]()
	runtimeInfos.AddType(0)

	var startEvents, loopEvents, endEvents int
	for i := 0; i < 20; i++ {
		info.StartEvent = false
		info.LoopEvent = false
		info.EndEvent = false
		group.Anime(runtimeInfos, 100, info)
		if info.StartEvent {
			startEvents++
		}
		if info.LoopEvent {
			loopEvents++
		}
		if info.EndEvent {
			endEvents++
		}
	}

	assert.Equal(t, 1, startEvents)
	assert.Equal(t, 0, loopEvents)
	assert.Equal(t, 1, endEvents)
	assert.False(t, group.IsPlaying())
	assert.InDelta(t, 1.0, info.AmountInSecond, 1e-6)
}

func TestAnimationGroupStopResetsOwnPlayingFlag(t *testing.T) {
	group := NewAnimationGroup[string]()
	info := &GroupRuntimeInfo{}
	require.NoError(t, group.StartComplete(1.0, LoopNot(), 60, DefaultAmountCalc(), info, 0, FillNone))
	assert.True(t, group.IsPlaying())

	group.Stop()
	assert.False(t, group.IsPlaying())
}

func TestAnimationGroupStartRejectsZeroFramePerSecond(t *testing.T) {
	group := NewAnimationGroup[string]()
	info := &GroupRuntimeInfo{}
	err := group.StartComplete(1.0, LoopNot(), 0, DefaultAmountCalc(), info, 0, FillNone)
	require.Error(t, err)
	assert.False(t, group.IsPlaying())
}

func TestAnimationGroupApplyModifierDrivesBlendWeight(t *testing.T) {
	group := NewAnimationGroup[string]()
	require.NoError(t, group.ApplyModifier(AnimationGroupBlendWeight, 0.5))
	assert.Equal(t, float32(0.5), group.BlendWeight())
}
