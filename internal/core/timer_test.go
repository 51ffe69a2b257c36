package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerHandleArmCancelsPrevious(t *testing.T) {
	var h TimerHandle
	assert.False(t, h.Live())

	first := h.Arm(120 * time.Millisecond)
	assert.True(t, h.Owns(first))

	second := h.Arm(100 * time.Millisecond)
	assert.False(t, h.Owns(first), "re-arming must invalidate the old generation")
	assert.True(t, h.Owns(second))
	assert.Equal(t, 100*time.Millisecond, h.Interval())
}

func TestTimerHandleCancel(t *testing.T) {
	var h TimerHandle
	tok := h.Arm(time.Second)

	h.Cancel()
	assert.False(t, h.Live())
	assert.False(t, h.Owns(tok))

	// Cancelling twice is harmless
	h.Cancel()
	assert.False(t, h.Live())
}

func TestTimerHandleStaleTokenAfterRearm(t *testing.T) {
	var h TimerHandle
	old := h.Arm(time.Second)
	h.Cancel()
	fresh := h.Arm(time.Second)

	assert.NotEqual(t, old, fresh)
	assert.False(t, h.Owns(old))
	assert.True(t, h.Owns(fresh))
}
