package anim

import "math"

// LoopMode selects how an AnimationGroup's progress wraps once it reaches
// the end of a single pass. The optional loop count, when non-nil, bounds
// the number of passes (Ply modes count a round trip as one pass); a nil
// count loops forever.
type LoopMode struct {
	kind loopKind
	// Count is the number of passes before the group auto-stops. Nil loops
	// indefinitely.
	Count *uint32
}

type loopKind int

const (
	loopNot loopKind = iota
	loopPositive
	loopOpposite
	loopPositivePly
	loopOppositePly
)

// LoopNot plays from `from` to `to` once and stops.
func LoopNot() LoopMode { return LoopMode{kind: loopNot} }

// LoopPositive repeats forward, optionally bounded by count passes.
func LoopPositive(count *uint32) LoopMode { return LoopMode{kind: loopPositive, Count: count} }

// LoopOpposite repeats in reverse, optionally bounded by count passes.
func LoopOpposite(count *uint32) LoopMode { return LoopMode{kind: loopOpposite, Count: count} }

// LoopPositivePly ping-pongs starting forward; a forward-and-back pair counts
// as one pass.
func LoopPositivePly(count *uint32) LoopMode { return LoopMode{kind: loopPositivePly, Count: count} }

// LoopOppositePly ping-pongs starting in reverse; a forward-and-back pair
// counts as one pass.
func LoopOppositePly(count *uint32) LoopMode { return LoopMode{kind: loopOppositePly, Count: count} }

// amountCalc is the pure function shape every loop mode resolves to:
// given the duration of one pass and the elapsed running time, it returns
// the normalized progress within the current pass and the number of
// complete passes so far.
type amountCalc func(onceTimeMs, elapsedMs float64) (amount float64, loopCount uint32)

// getAmountCalc returns the pure progress function for a loop mode, matching
// the original crate's get_amount_calc dispatch table.
func getAmountCalc(mode LoopMode) amountCalc {
	switch mode.kind {
	case loopPositive:
		return amountPositive
	case loopOpposite:
		return amountOpposite
	case loopPositivePly:
		return amountPositivePly
	case loopOppositePly:
		return amountOppositePly
	default:
		return amountNot
	}
}

func amountNot(onceTimeMs, elapsedMs float64) (float64, uint32) {
	loopCount := math.Max(0, math.Floor(elapsedMs/onceTimeMs))
	clamped := math.Max(0, math.Min(onceTimeMs, elapsedMs))
	return clamped / onceTimeMs, uint32(loopCount)
}

func amountPositive(onceTimeMs, elapsedMs float64) (float64, uint32) {
	loopCount := math.Floor(elapsedMs / onceTimeMs)
	amount := (elapsedMs - loopCount*onceTimeMs) / onceTimeMs
	return amount, uint32(loopCount)
}

func amountOpposite(onceTimeMs, elapsedMs float64) (float64, uint32) {
	loopCount := math.Floor(elapsedMs / onceTimeMs)
	amount := 1.0 - (elapsedMs-loopCount*onceTimeMs)/onceTimeMs
	return amount, uint32(loopCount)
}

func amountPositivePly(onceTimeMs, elapsedMs float64) (float64, uint32) {
	loopCount := int64(math.Floor(elapsedMs / onceTimeMs))
	resultCount := loopCount / 2
	var amount float64
	if loopCount != resultCount*2 {
		amount = 1.0 - (elapsedMs-float64(loopCount)*onceTimeMs)/onceTimeMs
	} else {
		amount = (elapsedMs - float64(loopCount)*onceTimeMs) / onceTimeMs
	}
	return amount, uint32(resultCount)
}

func amountOppositePly(onceTimeMs, elapsedMs float64) (float64, uint32) {
	loopCount := int64(math.Floor(elapsedMs / onceTimeMs))
	resultCount := loopCount / 2
	var amount float64
	if loopCount != resultCount*2 {
		amount = (elapsedMs - float64(loopCount)*onceTimeMs) / onceTimeMs
	} else {
		amount = 1.0 - (elapsedMs-float64(loopCount)*onceTimeMs)/onceTimeMs
	}
	return amount, uint32(resultCount)
}

// holdAmount returns the amount a BACKWARDS fill holds at during an
// unexpired delay: the pass's starting position for forward-running modes,
// the ending position for reverse-running modes.
func (m LoopMode) holdAmount() float64 {
	switch m.kind {
	case loopOpposite, loopOppositePly:
		return 1.0
	default:
		return 0.0
	}
}

// terminalAmount returns the amount a FORWARDS fill clamps to once the group
// reaches its final pass: 1 for modes that end running forward, 0 for modes
// that end running in reverse.
func (m LoopMode) terminalAmount() float64 {
	switch m.kind {
	case loopOpposite, loopPositivePly:
		return 0.0
	default:
		return 1.0
	}
}
