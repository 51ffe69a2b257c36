package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-odyssey/internal/config"
	"github.com/vovakirdan/snake-odyssey/internal/core"
	"github.com/vovakirdan/snake-odyssey/internal/games/odyssey"
	"github.com/vovakirdan/snake-odyssey/internal/metrics"
	"github.com/vovakirdan/snake-odyssey/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config config.OdysseyConfig
	Seed   int64            // 0 picks a time-based seed
	Store  metrics.RunStore // Optional; finished runs are saved when set
	Logger *log.Logger      // Optional; discards when nil
	Player string
}

// Model is the Bubble Tea model for one Snake Odyssey session.
// The game itself owns no timers: the model arms the scheduler and the
// countdown in response to the events the game returns.
type Model struct {
	game   *odyssey.Game
	canvas *Canvas
	store  metrics.RunStore
	logger *log.Logger
	player string

	scheduler     Scheduler
	countdown     timer.Model
	countdownLive bool

	keys KeyMap
	help help.Model
	hud  odyssey.HUD

	runID     string
	lastRun   string // Summary of the previous run
	width     int
	height    int
	quitting  bool
	savedShot string
}

// NewModel creates a model with an idle game.
func NewModel(opts Options) (Model, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := odyssey.New(opts.Config, seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		canvas: NewCanvas(opts.Config.Playfield),
		store:  opts.Store,
		logger: logger,
		player: opts.Player,
		keys:   DefaultKeyMap(),
		help:   h,
		hud:    game.HUD(),
	}
	m.keys.Start.SetEnabled(m.hud.StartEnabled)
	return m, nil
}

// Init waits for the start trigger; no timer runs before a game starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case timer.TickMsg:
		return m.handleCountdown(msg)

	case timer.TimeoutMsg:
		if msg.ID == m.countdown.ID() {
			m.logger.Debug("countdown timer expired", "run", m.runID)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.scheduler.Stop()
		m.countdownLive = false
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionStart:
		return m.start()
	}

	if dir, ok := odyssey.DirectionFor(action); ok {
		if !m.game.Request(dir) {
			m.logger.Debug("reversal dropped", "requested", dir, "current", m.game.Direction())
		}
	}
	return m, nil
}

// start begins a new run.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.runID = uuid.NewString()
	m.savedShot = ""
	res := m.game.Start()
	metrics.GameStarted()
	m.logger.Info("game started", "run", m.runID, "player", m.player)
	cmd := m.apply(res)
	return m, cmd
}

// handleTick runs one simulation step for the live scheduler generation.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.scheduler.Owns(msg) {
		return m, nil // Stale tick from a cancelled scheduler
	}

	cmd := m.apply(m.game.Tick())

	// A SchedulerStarted event re-armed the scheduler with a new chain.
	if m.scheduler.Owns(msg) {
		next := m.scheduler.Next()
		return m, tea.Batch(cmd, next)
	}
	return m, cmd
}

// handleCountdown forwards one-second countdown ticks to the game.
func (m Model) handleCountdown(msg timer.TickMsg) (tea.Model, tea.Cmd) {
	if !m.countdownLive || msg.ID != m.countdown.ID() || !m.countdown.Running() {
		return m, nil
	}

	var timerCmd tea.Cmd
	m.countdown, timerCmd = m.countdown.Update(msg)

	cmd := m.apply(m.game.CountdownTick())
	if !m.countdownLive {
		return m, cmd
	}
	return m, tea.Batch(timerCmd, cmd)
}

// apply acts on the events of a game operation and returns the timer
// commands they require.
func (m *Model) apply(res odyssey.StepResult) tea.Cmd {
	var cmds []tea.Cmd

	for _, e := range res.Events {
		metrics.Observe(e)

		switch ev := e.(type) {
		case odyssey.SchedulerStarted:
			cmds = append(cmds, m.scheduler.Start(ev.Interval))

		case odyssey.SchedulerStopped:
			m.scheduler.Stop()

		case odyssey.CountdownStarted:
			m.countdown = timer.NewWithInterval(time.Duration(ev.Seconds)*time.Second, time.Second)
			m.countdownLive = true
			cmds = append(cmds, m.countdown.Init())
			m.logger.Info("countdown started", "run", m.runID, "seconds", ev.Seconds, "level", ev.Level)

		case odyssey.CountdownTicked:
			m.logger.Debug("countdown", "run", m.runID, "remaining", ev.Remaining)

		case odyssey.CountdownStopped:
			m.countdownLive = false

		case odyssey.LevelChanged:
			m.logger.Info("level changed", "run", m.runID, "level", ev.Level, "name", ev.Name)

		case odyssey.BossSpawned:
			m.logger.Debug("boss spawned", "run", m.runID, "x", ev.Pos.X, "y", ev.Pos.Y)

		case odyssey.FruitEaten:
			m.logger.Debug("fruit eaten", "run", m.runID, "level", ev.Level, "eaten", ev.Eaten, "length", ev.SnakeLen)

		case odyssey.GameReset:
			m.logger.Info("game reset", "run", m.runID, "cause", ev.Cause, "score", ev.Score, "level", ev.Level)
			m.lastRun = fmt.Sprintf("Last run: %s at level %d, score %d", ev.Cause, ev.Level, ev.Score)
			m.saveRun(ev.Score, ev.Level, string(ev.Cause))

		case odyssey.Victory:
			m.logger.Info("victory", "run", m.runID, "score", ev.Score, "level", ev.Level)
			m.lastRun = ""
			m.saveRun(ev.Score, ev.Level, storage.OutcomeVictory)
		}
	}

	m.hud = res.HUD
	m.keys.Start.SetEnabled(res.HUD.StartEnabled)
	return tea.Batch(cmds...)
}

// saveRun stores a finished run. Runs without a score are not recorded.
func (m *Model) saveRun(score, level int, outcome string) {
	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		ID:      m.runID,
		Player:  m.player,
		Score:   score,
		Level:   level,
		Outcome: outcome,
	})
	if err != nil {
		// Best-effort; the game continues regardless
		m.logger.Warn("could not save run", "run", m.runID, "error", err)
	}
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", odyssey.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.savedShot = path
}

// boardChrome is the number of lines drawn around the board.
const boardChrome = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	startStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(string(core.ColorYellow)))
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(string(core.ColorMagenta))).
			Padding(1, 3)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boardW := m.canvas.Screen().Width() + 2
	boardH := m.canvas.Screen().Height() + 2
	if m.width > 0 && (m.width < boardW || m.height < boardH+boardChrome) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			boardW, boardH+boardChrome, m.width, m.height)
	}

	m.game.Render(m.canvas)

	board := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(m.hud.Color)).
		Render(RenderScreen(m.canvas.Screen()))

	if m.hud.Victory {
		banner := bannerStyle.Render("Congratulations!\nYou've conquered the " + odyssey.Title + "!")
		board = lipgloss.Place(lipgloss.Width(board), lipgloss.Height(board),
			lipgloss.Center, lipgloss.Center, banner)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(odyssey.Title))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(fmt.Sprintf("Score: %d   Level: %d/%d  %s",
		m.hud.Score, m.hud.Level, m.hud.LevelCount, m.hud.LevelName)))
	b.WriteString("\n")
	b.WriteString(board)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statusLine shows the countdown, the start control or the last run.
func (m Model) statusLine() string {
	if m.hud.CountdownActive {
		return countdownStyle.Render(fmt.Sprintf("Boss ahead! Starting in %d...", m.hud.Countdown))
	}

	var parts []string
	if m.hud.StartEnabled {
		parts = append(parts, startStyle.Render("[ Start ]"))
	} else {
		parts = append(parts, dimStyle.Render("[ Start ]"))
	}
	if m.lastRun != "" {
		parts = append(parts, dimStyle.Render(m.lastRun))
	}
	if m.savedShot != "" {
		parts = append(parts, dimStyle.Render("saved "+m.savedShot))
	}
	return strings.Join(parts, "  ")
}

func borderColor(c core.Color) lipgloss.TerminalColor {
	if c.IsDefault() {
		return lipgloss.Color(string(core.ColorBorder))
	}
	return lipgloss.Color(string(c))
}

// Game returns the underlying game, for inspection.
func (m Model) Game() *odyssey.Game {
	return m.game
}

// ErrNoTTY is returned by Run when stdout is not a terminal.
var ErrNoTTY = errors.New("tui: stdout is not a terminal")

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
