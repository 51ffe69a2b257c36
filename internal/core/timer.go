package core

import "time"

// TimerToken identifies one armed generation of a TimerHandle.
// Tick messages carry the token of the generation that produced them.
type TimerToken uint64

// TimerHandle is the single owned slot for a periodic timer.
//
// Arming always cancels the previous generation, so at most one generation is
// live at any time. Ticks carrying an older token are stale and must be
// dropped by the consumer.
type TimerHandle struct {
	gen      TimerToken
	interval time.Duration
	live     bool
}

// Arm cancels any live generation and starts a new one with the given interval.
func (h *TimerHandle) Arm(interval time.Duration) TimerToken {
	h.gen++
	h.interval = interval
	h.live = true
	return h.gen
}

// Cancel stops the live generation, if any.
func (h *TimerHandle) Cancel() {
	if !h.live {
		return
	}
	h.gen++
	h.live = false
}

// Owns reports whether tok belongs to the live generation.
func (h *TimerHandle) Owns(tok TimerToken) bool {
	return h.live && tok == h.gen
}

// Live reports whether a generation is armed.
func (h *TimerHandle) Live() bool {
	return h.live
}

// Interval returns the interval of the live generation.
func (h *TimerHandle) Interval() time.Duration {
	return h.interval
}

// Token returns the current generation token.
func (h *TimerHandle) Token() TimerToken {
	return h.gen
}
