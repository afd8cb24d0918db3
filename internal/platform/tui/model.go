package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/registry"
	"github.com/vovakirdan/tui-riverraid/internal/storage"
)

// Options are the services a Model runs with. Every field is optional.
type Options struct {
	Store    *storage.Store     // Scores database; nil plays without persistence
	Logger   *log.Logger        // Nil discards log output
	Renderer *lipgloss.Renderer // Nil uses the local terminal
	KeepSeed bool               // Restarts replay the same river
	Clock    func() time.Time   // Key hold clock, defaults to time.Now
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	renderer *lipgloss.Renderer
	config   core.RuntimeConfig
	keepSeed bool

	loop     uint64
	keys     *KeyMapper
	hold     *HoldTracker
	commands core.InputFrame // One-shot actions for the next tick

	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current game over has been recorded
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	if hs, ok := game.(registry.HighScoreUser); ok {
		hs.UseHighScores(highScores(opts.Store, logger))
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    opts.Store,
		logger:   logger.With("game", game.ID()),
		renderer: renderer,
		config:   cfg,
		keepSeed: opts.KeepSeed,
		loop:     newLoop(),
		keys:     NewKeyMapper(),
		hold:     NewHoldTrackerWith(DefaultInitialHold, DefaultRepeatHold, clock),
		commands: core.NewInputFrame(),
	}
}

// highScores picks where the best score lives: the settings table when a
// database is open, memory otherwise.
func highScores(store *storage.Store, logger *log.Logger) core.HighScoreStore {
	if store == nil {
		return core.NewMemoryStore()
	}
	return storage.NewKV(store, func(err error) {
		logger.Error("high score store", "err", err)
	})
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The river is projected to fit any size, so no reset is needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionForward, core.ActionFire:
		m.hold.Press(action)
	case core.ActionLeft:
		m.hold.Release(core.ActionRight)
		m.hold.Press(action)
	case core.ActionRight:
		m.hold.Release(core.ActionLeft)
		m.hold.Press(action)
	case core.ActionPause:
		m.commands.Set(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.commands.Set(action)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			// A SessionModel swaps in the menu instead of quitting.
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.commands.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.keepSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.hold.Reset()
		m.commands.Clear()
		m.logger.Info("run restarted", "seed", m.config.Seed)
		return m, tickCmd(m.loop, m.config.TickRate)
	}

	frame := m.commands.Clone()
	m.hold.Sample(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State
	m.logEvents(result.Events)

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.commands.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

func (m *Model) logEvents(events []core.Event) {
	for _, e := range events {
		if e.Kind == core.EventGameOver {
			m.logger.Info("game over", "reason", e.Detail, "score", e.Value)
			continue
		}
		m.logger.Debug("event", "kind", e.Kind, "detail", e.Detail, "value", e.Value)
	}
}

// saveRun records the finished run on the leaderboard.
func (m *Model) saveRun() {
	st := m.gameState
	if m.store == nil || st.Score <= 0 {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    st.Score,
		Distance: st.Distance,
		Reason:   st.Reason,
	})
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.lastRunID = id
	m.logger.Info("run saved", "run", id, "score", st.Score, "distance", st.Distance)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "err", err)
		return
	}
	dir := filepath.Join(home, ".riverraid", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreenWith(m.renderer, m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the leaderboard ID of the last saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game and blocks until it exits.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
