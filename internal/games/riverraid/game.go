// Package riverraid implements a River Raid-style scrolling shooter.
// The player flies up an endless procedurally streamed river, dodging banks,
// bridges and enemies, shooting targets and collecting fuel on the way.
package riverraid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-riverraid/internal/config"
	"github.com/vovakirdan/tui-riverraid/internal/core"
	"github.com/vovakirdan/tui-riverraid/internal/registry"
)

// Mode IDs
const (
	ClassicID = "riverraid"
	RapidID   = "riverraid_rapid"
)

// FlashDuration is how long the hit flash stays on screen, in seconds.
const FlashDuration = 0.1

// hudRows is the number of screen rows reserved for the HUD.
const hudRows = 2

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the config the way Reset does, applying the preset.
func LoadConfig() (config.RiverRaidConfig, error) {
	cfg, err := config.LoadRiverRaid(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyRiverRaidPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// HUD collects the two display lines written by the session.
type HUD struct {
	StatusLine string
	ScoreLine  string
}

// Status implements Display.
func (h *HUD) Status(line string) { h.StatusLine = line }

// Score implements Display.
func (h *HUD) Score(line string) { h.ScoreLine = line }

// Game adapts a Session to the platform's fixed-tick game interface.
type Game struct {
	id      string
	title   string
	tune    func(config.RiverRaidConfig) config.RiverRaidConfig
	cfg     *config.RiverRaidConfig // Overrides loading when set
	runtime core.RuntimeConfig
	store   core.HighScoreStore

	session *Session
	sprites *SpriteSheet
	hud     HUD
	paused  bool
}

// New creates the classic mode: one live shot at a time.
func New() *Game {
	return &Game{id: ClassicID, title: "River Raid"}
}

// NewRapid creates the rapid fire mode.
func NewRapid() *Game {
	return &Game{id: RapidID, title: "River Raid: Rapid Fire", tune: config.RapidFire}
}

// NewWithConfig creates a classic game bound to cfg instead of the files
// on disk.
func NewWithConfig(cfg config.RiverRaidConfig) *Game {
	g := New()
	g.cfg = &cfg
	return g
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// UseHighScores sets where the best score is persisted.
func (g *Game) UseHighScores(store core.HighScoreStore) {
	g.store = store
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.RiverRaidConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			cfg = config.DefaultRiverRaidConfig()
		}
	}
	if g.tune != nil {
		cfg = g.tune(cfg)
	}
	// Each mode keeps its own best score.
	cfg.Scoring.HighScoreKey = g.highScoreKey(cfg.Scoring.HighScoreKey)

	if g.session != nil {
		g.session.Close()
	}
	flashFrames := int(math.Ceil(FlashDuration * float64(runtime.TickRate)))
	g.sprites = NewSpriteSheet(flashFrames)
	g.hud = HUD{}
	g.paused = false
	g.session = NewSession(cfg, runtime.Seed, Collaborators{
		Scene:   g.sprites,
		Display: &g.hud,
		Store:   g.store,
	})
}

func (g *Game) highScoreKey(base string) string {
	if g.id == ClassicID {
		return base
	}
	return base + ":" + g.id
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Phase() == GameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.session.Update(g.runtime.Delta(), ControlsFrom(in))
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.sprites.Draw(dst, g.session, hudRows)

	// Draw HUD
	speed := fmt.Sprintf("Speed x%.2f", g.session.Multiplier())
	dst.DrawTextColored(1, 0, g.hud.StatusLine, fuelColor(g.session.Player().Fuel, g.session.cfg.Player.MaxFuel))
	dst.DrawText(dst.Width()-len(speed)-1, 0, speed)
	dst.DrawText(1, 1, g.hud.ScoreLine)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.session.Phase() == GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Press R to restart", g.session.Reason()))
	}
}

// fuelColor warns when the tank runs low.
func fuelColor(fuel, max float64) core.Color {
	switch {
	case fuel <= max*0.2:
		return core.ColorBrightRed
	case fuel <= max*0.5:
		return core.ColorYellow
	default:
		return core.ColorBrightGreen
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 6
	boxH := 5
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	r := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Distance: g.session.Distance(),
		GameOver: g.session.Phase() == GameOver,
		Paused:   g.paused,
		Reason:   string(g.session.Reason()),
	}
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Sprites exposes the renderer.
func (g *Game) Sprites() *SpriteSheet {
	return g.sprites
}

// HUD returns the current display lines.
func (g *Game) HUD() HUD {
	return g.hud
}

func init() {
	registry.Register(ClassicID, func() registry.Game { return New() })
	registry.Register(RapidID, func() registry.Game { return NewRapid() })
}
