package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
	"github.com/vovakirdan/tui-riverraid/internal/storage"
)

// scriptedGame records every frame it is stepped with and ends when told to.
type scriptedGame struct {
	frames  []core.InputFrame
	resets  int
	seeds   []int64
	state   core.GameState
	endAt   int // Step count that ends the run, 0 never
	scores  core.HighScoreStore
	endWith core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.frames = nil
	g.state = core.GameState{}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.endAt > 0 && len(g.frames) >= g.endAt {
		g.state = g.endWith
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen)                 { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState                   { return g.state }
func (g *scriptedGame) UseHighScores(store core.HighScoreStore) { g.scores = store }
func (g *scriptedGame) last() core.InputFrame                   { return g.frames[len(g.frames)-1] }

func newTestModel(t *testing.T, g *scriptedGame, opts Options) (Model, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts.Clock = clock.Now
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}, opts)
	m.Init()
	return m, clock
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg{Time: time.Now(), loop: m.loop})
}

func TestModelHeldKeySpansTicks(t *testing.T) {
	g := &scriptedGame{}
	m, clock := newTestModel(t, g, Options{})

	m = send(t, m, runeKey("w"))
	m = tick(t, m)
	clock.Advance(100 * time.Millisecond)
	m = tick(t, m)
	assert.True(t, g.frames[0].Has(core.ActionForward))
	assert.True(t, g.frames[1].Has(core.ActionForward))

	clock.Advance(DefaultInitialHold)
	m = tick(t, m)
	assert.False(t, g.last().Has(core.ActionForward), "released once repeats stop")
}

func TestModelOppositeTurnReleases(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})

	m = send(t, m, runeKey("d"))
	m = send(t, m, runeKey("a"))
	m = tick(t, m)

	assert.True(t, g.last().Has(core.ActionLeft))
	assert.False(t, g.last().Has(core.ActionRight))
}

func TestModelPauseIsOneShot(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})

	m = send(t, m, runeKey("p"))
	m = tick(t, m)
	m = tick(t, m)

	assert.True(t, g.frames[0].Has(core.ActionPause))
	assert.False(t, g.frames[1].Has(core.ActionPause))
	assert.True(t, m.State().Paused)
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})

	m = send(t, m, TickMsg{Time: time.Now(), loop: m.loop + 1000})
	assert.Empty(t, g.frames)

	tick(t, m)
	assert.Len(t, g.frames, 1)
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAt: 2}
	m, _ := newTestModel(t, g, Options{KeepSeed: true})
	require.Equal(t, 1, g.resets)

	m = send(t, m, runeKey("r"))
	m = tick(t, m)
	assert.Equal(t, 1, g.resets, "restart ignored while running")

	m = tick(t, m)
	require.True(t, m.State().GameOver)

	m = send(t, m, runeKey("r"))
	m = tick(t, m)
	assert.Equal(t, 2, g.resets)
	assert.False(t, m.State().GameOver)
	assert.Equal(t, []int64{7, 7}, g.seeds, "kept seed replays the river")
}

func TestModelRestartPicksNewSeed(t *testing.T) {
	g := &scriptedGame{endAt: 1}
	m, _ := newTestModel(t, g, Options{})

	m = tick(t, m)
	m = send(t, m, runeKey("r"))
	tick(t, m)

	require.Len(t, g.seeds, 2)
	assert.NotEqual(t, g.seeds[0], g.seeds[1])
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})

	m = send(t, m, runeKey("b"))
	assert.False(t, m.BackToMenu())

	m = send(t, m, runeKey("p"))
	m = tick(t, m)
	m = send(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
}

func TestModelQuit(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})

	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
	assert.Empty(t, next.(Model).View())
}

func TestModelWithoutStoreUsesMemoryScores(t *testing.T) {
	g := &scriptedGame{endAt: 1, endWith: core.GameState{Score: 10}}
	m, _ := newTestModel(t, g, Options{})

	_, ok := g.scores.(*core.MemoryStore)
	assert.True(t, ok)

	m = tick(t, m)
	assert.Empty(t, m.LastRunID())
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	g := &scriptedGame{endAt: 1, endWith: core.GameState{
		Score:    42,
		Distance: 30.5,
		Reason:   "Out of Fuel!",
	}}
	m, _ := newTestModel(t, g, Options{Store: store})

	_, ok := g.scores.(*storage.KV)
	assert.True(t, ok, "high scores go to the settings table")

	for range 5 {
		m = tick(t, m)
	}

	runs, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 42, runs[0].Score)
	assert.InDelta(t, 30.5, runs[0].Distance, 1e-9)
	assert.Equal(t, "Out of Fuel!", runs[0].Reason)
	assert.Equal(t, runs[0].RunID, m.LastRunID())
}

func TestModelSkipsZeroScoreRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	g := &scriptedGame{endAt: 1}
	m, _ := newTestModel(t, g, Options{Store: store})
	tick(t, m)

	runs, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestModelViewRendersGame(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g, Options{})

	assert.Contains(t, m.View(), "scripted")
}

func TestModelRunsRiverRaid(t *testing.T) {
	g := riverraid.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 3}, Options{})
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for range 10 {
		m = tick(t, m)
	}

	assert.Greater(t, g.Session().Distance(), 0.0)
	assert.Contains(t, m.View(), "Fuel:")
}
