package odyssey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake-odyssey/internal/config"
	"github.com/vovakirdan/snake-odyssey/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultOdysseyConfig(), seed)
	require.NoError(t, err)
	return g
}

// startedGame returns a running game with the fruit parked far from the head.
func startedGame(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t, 42)
	g.Start()
	g.fruit = core.Point{X: 0, Y: 380}
	return g
}

func findEvent[T Event](events []Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultOdysseyConfig()
	cfg.Playfield.CellSize = 0
	_, err := New(cfg, 1)
	assert.Error(t, err)
}

func TestStartInitialState(t *testing.T) {
	g := newTestGame(t, 7)
	res := g.Start()

	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Equal(t, []core.Point{{X: 160, Y: 160}}, g.Snake())
	assert.Equal(t, DirRight, g.Direction())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.Level())
	assert.Nil(t, g.Boss())
	assert.False(t, res.HUD.StartEnabled)
	assert.False(t, res.HUD.Victory)

	fruit, ok := g.Fruit()
	require.True(t, ok)
	assert.False(t, g.isSnakeAt(fruit))

	sched, ok := findEvent[SchedulerStarted](res.Events)
	require.True(t, ok)
	assert.Equal(t, 120*time.Millisecond, sched.Interval)

	lvl, ok := findEvent[LevelChanged](res.Events)
	require.True(t, ok)
	assert.Equal(t, 1, lvl.Level)
}

func TestStartIgnoredWhileRunning(t *testing.T) {
	g := startedGame(t)
	g.Tick()
	g.Tick()

	res := g.Start()
	assert.Empty(t, res.Events)
	assert.Equal(t, uint64(2), g.Snapshot().Tick)
}

func TestFirstTickMovesRight(t *testing.T) {
	g := startedGame(t)
	g.Tick()

	assert.Equal(t, core.Point{X: 180, Y: 160}, g.Head())
	assert.Len(t, g.Snake(), 1)
}

func TestEatingFruitGrowsAndScores(t *testing.T) {
	g := startedGame(t)
	g.fruit = core.Point{X: 180, Y: 160}

	res := g.Tick()

	assert.Equal(t, 10, g.Score())
	assert.Len(t, g.Snake(), 2)
	assert.Equal(t, 1, g.FruitEaten())

	score, ok := findEvent[ScoreChanged](res.Events)
	require.True(t, ok)
	assert.Equal(t, 10, score.Score)

	fruit, ok := g.Fruit()
	require.True(t, ok)
	assert.False(t, g.isSnakeAt(fruit), "new fruit must not land on the snake")
}

func TestLengthConstantWithoutFruit(t *testing.T) {
	g := startedGame(t)
	g.snake = []core.Point{{X: 160, Y: 160}, {X: 140, Y: 160}, {X: 120, Y: 160}}

	for range 5 {
		g.Tick()
		assert.Len(t, g.Snake(), 3)
	}
	assert.Equal(t, core.Point{X: 260, Y: 160}, g.Head())
}

func TestNoImmediateReversal(t *testing.T) {
	g := startedGame(t)

	assert.False(t, g.Request(DirLeft), "reversal must be dropped")
	assert.True(t, g.Request(DirRight), "same direction is accepted")
	assert.True(t, g.Request(DirDown))

	// The check is against the applied direction, so up is still allowed
	// until the pending down has been applied.
	assert.True(t, g.Request(DirUp))
	g.Request(DirDown)
	g.Tick()
	assert.Equal(t, DirDown, g.Direction())
	assert.False(t, g.Request(DirUp))
	assert.Equal(t, core.Point{X: 160, Y: 180}, g.Head())
}

func TestWallCollisionResets(t *testing.T) {
	g := startedGame(t)
	g.score = 50
	g.level = 4
	g.snake = []core.Point{{X: 0, Y: 100}}
	g.direction = DirLeft
	g.pending = DirLeft
	fruitBefore := g.fruit

	res := g.Tick()

	reset, ok := findEvent[GameReset](res.Events)
	require.True(t, ok)
	assert.Equal(t, CauseWall, reset.Cause)
	assert.Equal(t, 50, reset.Score)
	assert.Equal(t, 4, reset.Level)

	_, ok = findEvent[SchedulerStopped](res.Events)
	assert.True(t, ok)

	assert.Equal(t, PhaseIdle, g.Phase())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, []core.Point{{X: 160, Y: 160}}, g.Snake())
	assert.Equal(t, DirRight, g.Direction())
	assert.True(t, res.HUD.StartEnabled)
	assert.Equal(t, fruitBefore, g.fruit, "reset leaves the fruit untouched")
}

func TestWallCollisionAllEdges(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  Direction
	}{
		{"left", core.Point{X: 0, Y: 200}, DirLeft},
		{"right", core.Point{X: 380, Y: 200}, DirRight},
		{"top", core.Point{X: 200, Y: 0}, DirUp},
		{"bottom", core.Point{X: 200, Y: 380}, DirDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startedGame(t)
			g.snake = []core.Point{tt.head}
			g.direction = tt.dir
			g.pending = tt.dir

			res := g.Tick()
			reset, ok := findEvent[GameReset](res.Events)
			require.True(t, ok)
			assert.Equal(t, CauseWall, reset.Cause)
		})
	}
}

func TestSelfCollisionResets(t *testing.T) {
	g := startedGame(t)
	// A loop where turning up runs into the body.
	g.snake = []core.Point{
		{X: 100, Y: 100},
		{X: 80, Y: 100},
		{X: 80, Y: 80},
		{X: 100, Y: 80},
		{X: 120, Y: 80},
	}
	g.direction = DirRight
	g.Request(DirUp)

	res := g.Tick()
	reset, ok := findEvent[GameReset](res.Events)
	require.True(t, ok)
	assert.Equal(t, CauseSelf, reset.Cause)
}

func TestBossOverlapDetection(t *testing.T) {
	g := startedGame(t)
	g.boss = &Boss{Pos: core.Point{X: 100, Y: 100}, Size: 40}

	assert.True(t, g.bossHits(core.Point{X: 110, Y: 110}))
	assert.True(t, g.bossHits(core.Point{X: 120, Y: 120}))
	assert.False(t, g.bossHits(core.Point{X: 140, Y: 100}), "touching edge is not overlap")
	assert.False(t, g.bossHits(core.Point{X: 80, Y: 80}))
}

func TestBossCollisionResets(t *testing.T) {
	g := startedGame(t)
	g.snake = []core.Point{{X: 80, Y: 100}}
	g.boss = &Boss{Pos: core.Point{X: 100, Y: 100}, Size: 40}

	res := g.Tick()

	reset, ok := findEvent[GameReset](res.Events)
	require.True(t, ok)
	assert.Equal(t, CauseBoss, reset.Cause)
	assert.Nil(t, g.Boss(), "reset clears the boss")
}

func TestBossPursuesOnBothAxes(t *testing.T) {
	g := startedGame(t)
	g.snake = []core.Point{{X: 300, Y: 300}}
	g.boss = &Boss{Pos: core.Point{X: 0, Y: 0}, Size: 40}

	g.Tick()
	assert.Equal(t, core.Point{X: 20, Y: 20}, g.Boss().Pos)

	g.Tick()
	assert.Equal(t, core.Point{X: 40, Y: 40}, g.Boss().Pos)
}

func TestBossStopsOnAlignedAxis(t *testing.T) {
	g := startedGame(t)
	g.snake = []core.Point{{X: 300, Y: 200}}
	g.direction = DirDown
	g.pending = DirDown
	g.boss = &Boss{Pos: core.Point{X: 0, Y: 220}, Size: 40}

	// Head moves to (300,220); boss only moves along x.
	g.Tick()
	assert.Equal(t, core.Point{X: 20, Y: 220}, g.Boss().Pos)
}

func TestLevelAdvancePreservesScore(t *testing.T) {
	g := startedGame(t)
	g.fruitEaten = 3
	g.score = 30
	g.snake = []core.Point{{X: 60, Y: 60}, {X: 40, Y: 60}}
	g.fruit = core.Point{X: 80, Y: 60}

	res := g.Tick()

	assert.Equal(t, 2, g.Level())
	assert.Equal(t, 0, g.FruitEaten())
	assert.Equal(t, 40, g.Score())
	assert.Equal(t, []core.Point{{X: 160, Y: 160}}, g.Snake(), "level-up resets the snake")

	lvl, ok := findEvent[LevelChanged](res.Events)
	require.True(t, ok)
	assert.Equal(t, 2, lvl.Level)
	_, ok = findEvent[SchedulerStarted](res.Events)
	assert.True(t, ok)
	assert.Equal(t, g.policy.Level(2).Color, res.HUD.Color)
}

func TestMilestoneCountdownBeforeBoss(t *testing.T) {
	g := startedGame(t)
	g.level = 9
	g.fruitEaten = 1
	g.fruit = core.Point{X: 180, Y: 160}

	res := g.Tick()

	assert.Equal(t, 10, g.Level())
	assert.Equal(t, 0, g.FruitEaten())
	assert.True(t, g.Frozen())
	assert.Nil(t, g.Boss(), "boss appears only after the countdown")
	assert.True(t, res.HUD.CountdownActive)
	assert.Equal(t, 3, res.HUD.Countdown)

	cd, ok := findEvent[CountdownStarted](res.Events)
	require.True(t, ok)
	assert.Equal(t, 3, cd.Seconds)
	assert.Equal(t, 10, cd.Level)
	_, ok = findEvent[SchedulerStarted](res.Events)
	assert.False(t, ok, "new interval applies only after the countdown")

	// Scheduler ticks during the countdown are no-ops.
	snap := g.Snapshot()
	g.Tick()
	g.Tick()
	assert.Equal(t, snap, g.Snapshot())

	res = g.CountdownTick()
	ticked, ok := findEvent[CountdownTicked](res.Events)
	require.True(t, ok)
	assert.Equal(t, 2, ticked.Remaining)
	assert.Nil(t, g.Boss())

	g.CountdownTick()
	res = g.CountdownTick()

	assert.False(t, g.Frozen())
	assert.False(t, res.HUD.CountdownActive)
	_, ok = findEvent[CountdownStopped](res.Events)
	assert.True(t, ok)

	sched, ok := findEvent[SchedulerStarted](res.Events)
	require.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, sched.Interval)

	boss := g.Boss()
	require.NotNil(t, boss)
	assert.Equal(t, 40, boss.Size)
	_, ok = findEvent[BossSpawned](res.Events)
	assert.True(t, ok)
}

func TestFrozenAdvanceIsNoop(t *testing.T) {
	g := startedGame(t)
	before := g.Snapshot()

	res := g.Advance(true)
	assert.Empty(t, res.Events)
	assert.Equal(t, before, g.Snapshot())
}

func TestResetDuringCountdownStopsIt(t *testing.T) {
	g := startedGame(t)
	g.startCountdown(3)
	g.result()

	res := g.Reset(CauseWall)
	_, ok := findEvent[CountdownStopped](res.Events)
	assert.True(t, ok)
	assert.False(t, g.Frozen())

	// A late countdown tick from a cancelled timer changes nothing.
	res = g.CountdownTick()
	assert.Empty(t, res.Events)
}

func TestFinalLevelVictory(t *testing.T) {
	g := startedGame(t)
	last := g.policy.Count()
	g.level = last
	g.fruitEaten = g.policy.Level(last).RequiredFruit - 1
	g.score = 990
	g.fruit = core.Point{X: 180, Y: 160}

	res := g.Tick()

	v, ok := findEvent[Victory](res.Events)
	require.True(t, ok)
	assert.Equal(t, 1000, v.Score)
	assert.Equal(t, last, v.Level)

	assert.Equal(t, PhaseVictory, g.Phase())
	assert.True(t, res.HUD.Victory)
	assert.True(t, res.HUD.StartEnabled)
	assert.Equal(t, last, res.HUD.Level)
	assert.Equal(t, 1000, g.Score(), "victory keeps the final data")

	// Ticks after victory do nothing; Start begins afresh and clears the banner.
	g.Tick()
	assert.Equal(t, PhaseVictory, g.Phase())
	res = g.Start()
	assert.False(t, res.HUD.Victory)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.Level())
}

func TestFullBoardIsVictory(t *testing.T) {
	cfg := config.DefaultOdysseyConfig()
	cfg.Playfield = config.Playfield{Width: 40, Height: 20, CellSize: 20}
	cfg.Rules.BossSize = 20
	g, err := New(cfg, 3)
	require.NoError(t, err)

	g.Start()
	fruit, ok := g.Fruit()
	require.True(t, ok)
	require.Equal(t, core.Point{X: 20, Y: 0}, fruit, "only one free cell")

	res := g.Tick()
	_, ok = findEvent[Victory](res.Events)
	require.True(t, ok)
	assert.Equal(t, PhaseVictory, g.Phase())
	assert.Len(t, g.Snake(), 2)
}

func TestPlaceFruitNeverOnSnake(t *testing.T) {
	g := startedGame(t)

	// Fill most of the board so random sampling often misses.
	var body []core.Point
	for y := 0; y < 400; y += 20 {
		for x := 0; x < 400; x += 20 {
			if x == 380 && y >= 300 {
				continue
			}
			body = append(body, core.Point{X: x, Y: y})
		}
	}
	g.snake = body

	for range 50 {
		require.True(t, g.placeFruit())
		fruit, _ := g.Fruit()
		assert.False(t, g.isSnakeAt(fruit))
		assert.Equal(t, 380, fruit.X)
	}
}

func TestPlaceFruitFailsOnFullBoard(t *testing.T) {
	g := startedGame(t)
	var body []core.Point
	for y := 0; y < 400; y += 20 {
		for x := 0; x < 400; x += 20 {
			body = append(body, core.Point{X: x, Y: y})
		}
	}
	g.snake = body

	assert.False(t, g.placeFruit())
	_, ok := g.Fruit()
	assert.False(t, ok)
}

func TestBossSpawnAvoidsSnake(t *testing.T) {
	g := startedGame(t)
	g.snake = []core.Point{
		{X: 200, Y: 200}, {X: 180, Y: 200}, {X: 160, Y: 200}, {X: 140, Y: 200},
	}
	cell := g.cfg.Playfield.CellSize

	for range 200 {
		g.spawnBoss()
		box := g.boss.Rect()
		assert.GreaterOrEqual(t, box.X, 0)
		assert.GreaterOrEqual(t, box.Y, 0)
		assert.LessOrEqual(t, box.Right(), 400)
		assert.LessOrEqual(t, box.Bottom(), 400)
		for _, seg := range g.snake {
			assert.False(t, box.Intersects(core.SquareAt(seg, cell)))
		}
		assert.False(t, box.Intersects(core.SquareAt(core.Point{X: 220, Y: 200}, cell)),
			"boss must not block the next head cell")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		g.Start()
		for i := 0; i < 100; i++ {
			switch i {
			case 5:
				g.Request(DirDown)
			case 9:
				g.Request(DirLeft)
			case 14:
				g.Request(DirUp)
			case 18:
				g.Request(DirRight)
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

type fakeCanvas struct {
	cleared int
	fills   []core.Rect
	colors  []core.Color
}

func (c *fakeCanvas) Clear() { c.cleared++ }

func (c *fakeCanvas) Fill(r core.Rect, col core.Color) {
	c.fills = append(c.fills, r)
	c.colors = append(c.colors, col)
}

func TestRender(t *testing.T) {
	g := startedGame(t)
	g.snake = []core.Point{{X: 40, Y: 40}, {X: 20, Y: 40}}
	g.boss = &Boss{Pos: core.Point{X: 200, Y: 200}, Size: 40}

	c := &fakeCanvas{}
	g.Render(c)

	assert.Equal(t, 1, c.cleared)
	require.Len(t, c.fills, 4)
	assert.Equal(t, core.NewRect(40, 40, 20, 20), c.fills[0])
	assert.Equal(t, g.policy.Level(1).Color, c.colors[0])
	assert.Equal(t, core.ColorRed, c.colors[2])
	assert.Equal(t, core.NewRect(200, 200, 40, 40), c.fills[3])
	assert.Equal(t, core.ColorMagenta, c.colors[3])
}
