package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountNotClampsAtBoundaries(t *testing.T) {
	amount, loopCount := amountNot(100, 250)
	assert.Equal(t, 1.0, amount)
	assert.Equal(t, uint32(2), loopCount)

	amount, loopCount = amountNot(100, -10)
	assert.Equal(t, 0.0, amount)
	assert.Equal(t, uint32(0), loopCount)
}

func TestAmountPositiveWrapsEachPass(t *testing.T) {
	amount, loopCount := amountPositive(100, 250)
	assert.InDelta(t, 0.5, amount, 1e-9)
	assert.Equal(t, uint32(2), loopCount)
}

func TestAmountPositivePlyRoundTrip(t *testing.T) {
	// Curve 0->1 over a 30-frame pass (onceTimeMs derived elsewhere); here we
	// exercise the raw ply math directly: two full passes (forward+back)
	// should land back at amount 0 with loopCount 1 (a round trip counts as
	// one loop).
	onceTimeMs := 500.0
	amount, loopCount := amountPositivePly(onceTimeMs, 2*onceTimeMs)
	assert.InDelta(t, 0.0, amount, 1e-9)
	assert.Equal(t, uint32(1), loopCount)

	// Odd-numbered pass (still mid round-trip, on the way back) should report
	// the reversed amount.
	amount, loopCount = amountPositivePly(onceTimeMs, onceTimeMs+onceTimeMs/2)
	assert.InDelta(t, 0.5, amount, 1e-9)
	assert.Equal(t, uint32(0), loopCount)
}

func TestLoopModeHoldAndTerminalAmounts(t *testing.T) {
	assert.Equal(t, 0.0, LoopNot().holdAmount())
	assert.Equal(t, 1.0, LoopOpposite(nil).holdAmount())
	assert.Equal(t, 1.0, LoopOppositePly(nil).holdAmount())

	assert.Equal(t, 1.0, LoopNot().terminalAmount())
	assert.Equal(t, 0.0, LoopOpposite(nil).terminalAmount())
	assert.Equal(t, 0.0, LoopPositivePly(nil).terminalAmount())
	assert.Equal(t, 1.0, LoopOppositePly(nil).terminalAmount())
}
