package odyssey

import (
	"time"

	"github.com/vovakirdan/snake-odyssey/internal/core"
)

// Event is a state transition reported to the platform.
// Timer events must be acted on: the game owns no timers itself.
type Event interface {
	gameEvent()
}

// SchedulerStarted asks the platform to (re)arm the tick scheduler,
// cancelling any live scheduler first.
type SchedulerStarted struct {
	Interval time.Duration
}

func (SchedulerStarted) gameEvent() {}

// SchedulerStopped asks the platform to cancel the tick scheduler.
type SchedulerStopped struct{}

func (SchedulerStopped) gameEvent() {}

// CountdownStarted asks the platform to arm the one-second countdown timer.
type CountdownStarted struct {
	Seconds int
	Level   int // Level that begins when the countdown ends
}

func (CountdownStarted) gameEvent() {}

// CountdownTicked reports the remaining whole seconds.
type CountdownTicked struct {
	Remaining int
}

func (CountdownTicked) gameEvent() {}

// CountdownStopped asks the platform to cancel the countdown timer.
type CountdownStopped struct{}

func (CountdownStopped) gameEvent() {}

// ScoreChanged is sent whenever the score display must update.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) gameEvent() {}

// LevelChanged is sent when a level's parameters are applied.
type LevelChanged struct {
	Level int
	Name  string
}

func (LevelChanged) gameEvent() {}

// FruitEaten is sent each time the snake eats.
type FruitEaten struct {
	Level     int
	Eaten     int // Fruit eaten in the current level, including this one
	SnakeLen  int
	NextFruit core.Point
}

func (FruitEaten) gameEvent() {}

// BossSpawned is sent when a milestone level places its boss.
type BossSpawned struct {
	Pos core.Point
}

func (BossSpawned) gameEvent() {}

// GameReset is sent after a fatal collision, carrying the run's final values.
type GameReset struct {
	Cause Cause
	Score int
	Level int
}

func (GameReset) gameEvent() {}

// Victory is sent when the final level is completed or the board is full.
type Victory struct {
	Score int
	Level int
}

func (Victory) gameEvent() {}

// StepResult is returned by every operation that mutates the game.
type StepResult struct {
	HUD    HUD
	Events []Event
}
