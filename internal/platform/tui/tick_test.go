package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerReplacesGeneration(t *testing.T) {
	var s Scheduler

	assert.NotNil(t, s.Start(150*time.Millisecond))
	first := TickMsg{Token: s.handle.Token()}
	assert.True(t, s.Owns(first))

	assert.NotNil(t, s.Start(100*time.Millisecond))
	assert.False(t, s.Owns(first), "restart cancels the old generation")
	assert.Equal(t, 100*time.Millisecond, s.Interval())

	s.Stop()
	assert.False(t, s.Running())
	assert.Nil(t, s.Next())
}
