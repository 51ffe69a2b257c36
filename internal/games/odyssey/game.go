// Package odyssey implements Snake Odyssey: a level-based snake game where
// milestone levels add a pursuing boss.
//
// The game is a pure state machine. It owns no timers; operations return
// events that tell the platform when to arm or cancel the tick scheduler and
// the countdown timer.
package odyssey

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/snake-odyssey/internal/config"
	"github.com/vovakirdan/snake-odyssey/internal/core"
)

// ID is the game identifier used for score storage.
const ID = "odyssey"

// Title is the display name.
const Title = "Snake Maze Odyssey"

// Phase is the lifecycle phase of the game.
type Phase string

const (
	PhaseIdle    Phase = "idle"    // Waiting for the start trigger
	PhaseRunning Phase = "running" // A game is in progress
	PhaseVictory Phase = "victory" // Final level completed
)

// Game holds the complete game state.
type Game struct {
	cfg    config.OdysseyConfig
	policy *Policy
	rng    *rand.Rand
	tick   uint64

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction    // Direction applied on the last move
	pending   Direction    // Requested direction for the next move

	score      int
	level      int // 1-indexed; exceeds policy.Count() only after victory
	fruitEaten int // Fruit eaten in current level
	fruit      core.Point
	hasFruit   bool
	boss       *Boss
	countdown  int // Remaining seconds; > 0 freezes the simulation
	color      core.Color

	phase        Phase
	startEnabled bool
	banner       bool

	events []Event
}

// New creates a game in the idle phase. The configuration must be valid.
func New(cfg config.OdysseyConfig, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("odyssey: %w", err)
	}
	g := &Game{
		cfg:          cfg,
		policy:       NewPolicy(cfg),
		rng:          rand.New(rand.NewSource(seed)),
		level:        1,
		phase:        PhaseIdle,
		startEnabled: true,
	}
	g.color = g.policy.Level(1).Color
	g.resetSnake()
	return g, nil
}

// Policy returns the level policy in use.
func (g *Game) Policy() *Policy {
	return g.policy
}

// Start begins a new game from level 1.
// It is ignored while a game is running, like a disabled start button.
func (g *Game) Start() StepResult {
	if g.phase == PhaseRunning {
		return g.result()
	}

	g.tick = 0
	g.score = 0
	g.level = 1
	g.fruitEaten = 0
	g.boss = nil
	g.countdown = 0
	g.banner = false
	g.startEnabled = false
	g.phase = PhaseRunning
	g.emit(ScoreChanged{Score: 0})

	g.applyLevel()
	if !g.placeFruit() {
		g.End()
	}
	return g.result()
}

// Reset ends the current game after a fatal collision and reverts the state
// to its initial values. The fruit position is left untouched.
func (g *Game) Reset(cause Cause) StepResult {
	g.emit(SchedulerStopped{})
	g.stopCountdown()

	final := GameReset{Cause: cause, Score: g.score, Level: g.level}

	g.score = 0
	g.level = 1
	g.fruitEaten = 0
	g.boss = nil
	g.color = g.policy.Level(1).Color
	g.resetSnake()

	g.phase = PhaseIdle
	g.startEnabled = true
	g.banner = false

	g.emit(final)
	g.emit(ScoreChanged{Score: 0})
	g.emit(LevelChanged{Level: 1, Name: g.policy.Level(1).Name})
	return g.result()
}

// End finishes the game as a victory. No data is reset; Start does that.
func (g *Game) End() StepResult {
	g.emit(SchedulerStopped{})
	g.stopCountdown()

	g.phase = PhaseVictory
	g.banner = true
	g.startEnabled = true
	g.emit(Victory{Score: g.score, Level: g.displayLevel()})
	return g.result()
}

// Request asks for a direction change on the next move.
// The exact opposite of the current direction is dropped; anything else,
// including the current direction, overwrites the pending request.
func (g *Game) Request(d Direction) bool {
	if d == g.direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// resetSnake places a single segment at the start cell heading right.
func (g *Game) resetSnake() {
	start := core.Point{X: g.cfg.Playfield.StartX, Y: g.cfg.Playfield.StartY}
	g.snake = []core.Point{start}
	g.direction = DirRight
	g.pending = DirRight
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// result drains pending events into a StepResult.
func (g *Game) result() StepResult {
	events := g.events
	g.events = nil
	return StepResult{HUD: g.HUD(), Events: events}
}

// displayLevel is the level shown to the player, never past the last level.
func (g *Game) displayLevel() int {
	return core.Clamp(g.level, 1, g.policy.Count())
}

// --- Read-only accessors ---

// Snake returns a copy of the snake body, head first.
func (g *Game) Snake() []core.Point {
	out := make([]core.Point, len(g.snake))
	copy(out, g.snake)
	return out
}

// Head returns the head position.
func (g *Game) Head() core.Point {
	return g.snake[0]
}

// Direction returns the direction applied on the last move.
func (g *Game) Direction() Direction {
	return g.direction
}

// Fruit returns the fruit position and whether a fruit is placed.
func (g *Game) Fruit() (core.Point, bool) {
	return g.fruit, g.hasFruit
}

// Boss returns the boss, or nil when none is present.
func (g *Game) Boss() *Boss {
	if g.boss == nil {
		return nil
	}
	b := *g.boss
	return &b
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level number.
func (g *Game) Level() int {
	return g.level
}

// FruitEaten returns the fruit eaten in the current level.
func (g *Game) FruitEaten() int {
	return g.fruitEaten
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// HUD is the read model for the score, level, countdown, start control and
// victory banner displays.
type HUD struct {
	Score           int
	Level           int
	LevelName       string
	LevelCount      int
	Countdown       int // Remaining seconds, meaningful when CountdownActive
	CountdownActive bool
	StartEnabled    bool
	Victory         bool
	Phase           Phase
	Color           core.Color
}

// HUD returns the current display state.
func (g *Game) HUD() HUD {
	lvl := g.displayLevel()
	return HUD{
		Score:           g.score,
		Level:           lvl,
		LevelName:       g.policy.Level(lvl).Name,
		LevelCount:      g.policy.Count(),
		Countdown:       g.countdown,
		CountdownActive: g.countdown > 0,
		StartEnabled:    g.startEnabled,
		Victory:         g.banner,
		Phase:           g.phase,
		Color:           g.color,
	}
}

// --- Debug helper ---

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Level: %d, Phase: %s\n", g.tick, g.score, g.level, g.phase))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Pending: %s\n", len(g.snake), g.direction, g.pending))
	head := g.snake[0]
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Fruit: (%d, %d)\n", head.X, head.Y, g.fruit.X, g.fruit.Y))
	if g.boss != nil {
		b.WriteString(fmt.Sprintf("Boss: (%d, %d)\n", g.boss.Pos.X, g.boss.Pos.Y))
	}
	b.WriteString(fmt.Sprintf("Countdown: %d\n", g.countdown))
	return b.String()
}
