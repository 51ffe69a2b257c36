package odyssey

// startCountdown freezes the simulation for the given number of seconds
// before the current level's parameters are applied.
func (g *Game) startCountdown(seconds int) {
	g.countdown = seconds
	g.emit(CountdownStarted{Seconds: seconds, Level: g.level})
}

// CountdownTick is called once per second by the countdown timer.
// On reaching zero the countdown stops and the pending level is applied,
// which restarts the scheduler at the level's interval.
func (g *Game) CountdownTick() StepResult {
	if g.countdown <= 0 || g.phase != PhaseRunning {
		return g.result()
	}

	g.countdown--
	g.emit(CountdownTicked{Remaining: g.countdown})
	if g.countdown == 0 {
		g.emit(CountdownStopped{})
		g.applyLevel()
	}
	return g.result()
}

// stopCountdown cancels an active countdown without applying its level.
func (g *Game) stopCountdown() {
	if g.countdown > 0 {
		g.countdown = 0
		g.emit(CountdownStopped{})
	}
}
