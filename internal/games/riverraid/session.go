package riverraid

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-riverraid/internal/config"
	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Collaborators are the outside services a Session talks to.
// Nil fields fall back to no-op implementations and an in-memory store.
type Collaborators struct {
	Scene   Scene
	Display Display
	Store   core.HighScoreStore
}

// Session owns the whole world of one run: craft, camera, streams and score.
type Session struct {
	cfg        config.RiverRaidConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	scene   Scene
	display Display
	store   core.HighScoreStore

	player     Player
	camera     Camera
	width      float64
	multiplier float64
	distance   float64
	clock      float64 // Seconds simulated while running
	lastShot   float64

	destruction int
	score       int
	high        int
	phase       Phase
	reason      Reason

	nextID Handle
	events []core.Event

	banks      *Stream[*Bank]
	depots     *Stream[*FuelDepot]
	enemies    *Stream[Entity]
	bridges    *Stream[*Bridge]
	shots      Pool[*Shot]
	enemyShots Pool[*Shot]
}

// NewSession starts a run. The seed drives every random spawn decision, so
// the same seed and inputs replay the same river.
func NewSession(cfg config.RiverRaidConfig, seed int64, c Collaborators) *Session {
	if c.Scene == nil {
		c.Scene = nopScene{}
	}
	if c.Display == nil {
		c.Display = nopDisplay{}
	}
	if c.Store == nil {
		c.Store = core.NewMemoryStore()
	}

	cc := cfg.Camera
	pc := cfg.Player
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		scene:      c.Scene,
		display:    c.Display,
		store:      c.Store,
		lastShot:   math.Inf(-1),
		banks:      NewStream[*Bank](cfg.Banks.FirstZ, cfg.Banks.Spacing),
		depots:     NewStream[*FuelDepot](cfg.Depots.FirstZ, cfg.Depots.Spacing),
		enemies:    NewStream[Entity](cfg.Enemies.FirstZ, cfg.Enemies.Spacing),
		bridges:    NewStream[*Bridge](cfg.Bridges.FirstZ, cfg.Bridges.Spacing),
	}

	s.camera.Pos = mgl64.Vec3{cc.Start.X, cc.Start.Y, cc.Start.Z}
	s.player = Player{
		Pos:   mgl64.Vec3{0, pc.Altitude, cc.Start.Z - cc.PlayerOffset},
		Half:  mgl64.Vec3{pc.Size.X / 2, pc.Size.Y / 2, pc.Size.Z / 2},
		Speed: pc.StartSpeed,
		Fuel:  pc.MaxFuel,
	}
	s.camera.Target = s.player.Pos.Sub(mgl64.Vec3{0, 0, cc.LookAhead})
	s.width = RiverWidth(cfg.River, s.camera.Pos.Z())
	s.multiplier = s.difficulty.Base()
	s.high = s.store.Get(cfg.Scoring.HighScoreKey)

	s.display.Status(statusLine(s.player.Fuel))
	s.display.Score(scoreLine(0, s.high))
	return s
}

// Update advances the session by delta seconds and returns the events of
// this frame. Stages run in a fixed order and each sees the positions
// already updated by the previous one. A session that is over ignores
// further updates.
func (s *Session) Update(delta float64, c Controls) []core.Event {
	if s.phase == GameOver {
		return nil
	}
	s.events = nil
	defer s.compact()

	s.clock += delta
	s.fly(delta, c)
	if c.Fire {
		s.fire()
	}
	s.stream(delta)

	craft := s.player.Bounds()
	if reason, hit := s.crash(craft); hit {
		s.end(reason)
		return s.events
	}
	s.refuel(craft)

	pc := s.cfg.Player
	s.player.Fuel = core.ClampF(s.player.Fuel-pc.FuelConsumption*delta, 0, pc.MaxFuel)
	s.rescore()
	if s.player.Fuel <= 0 {
		s.end(ReasonOutOfFuel)
		return s.events
	}

	s.advanceShots(delta)
	s.rescore()
	if s.advanceEnemyShots(delta) {
		s.end(ReasonHitByEnemy)
		return s.events
	}

	s.display.Status(statusLine(s.player.Fuel))
	s.display.Score(scoreLine(s.score, s.high))
	return s.events
}

// compact drops every entity killed this frame and detaches its sprite.
func (s *Session) compact() {
	s.banks.Compact(s.scene.Detach)
	s.depots.Compact(s.scene.Detach)
	s.enemies.Compact(s.scene.Detach)
	s.bridges.Compact(s.scene.Detach)
	s.shots.Compact(s.scene.Detach)
	s.enemyShots.Compact(s.scene.Detach)
}

// Close detaches every remaining entity from the scene.
func (s *Session) Close() {
	s.Visit(kill)
	s.compact()
}

// Visit calls fn for every live entity.
func (s *Session) Visit(fn func(Entity)) {
	for _, b := range s.banks.Items() {
		if b.Alive() {
			fn(b)
		}
	}
	for _, d := range s.depots.Items() {
		if d.Alive() {
			fn(d)
		}
	}
	for _, e := range s.enemies.Items() {
		if e.Alive() {
			fn(e)
		}
	}
	for _, b := range s.bridges.Items() {
		if b.Alive() {
			fn(b)
		}
	}
	for _, sh := range s.shots.Items() {
		if sh.Alive() {
			fn(sh)
		}
	}
	for _, sh := range s.enemyShots.Items() {
		if sh.Alive() {
			fn(sh)
		}
	}
}

func (s *Session) attach(e Entity) {
	s.nextID++
	e.body().ID = s.nextID
	s.scene.Attach(e)
}

func (s *Session) emit(kind core.EventKind, detail string, value int) {
	s.events = append(s.events, core.Event{Kind: kind, Detail: detail, Value: value})
}

// Phase returns whether the run is still going.
func (s *Session) Phase() Phase { return s.phase }

// Reason returns why the run ended, empty while running.
func (s *Session) Reason() Reason { return s.reason }

// Score returns the current total score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int { return s.high }

// Distance returns how far the craft has traveled.
func (s *Session) Distance() float64 { return s.distance }

// Multiplier returns the current global speed multiplier.
func (s *Session) Multiplier() float64 { return s.multiplier }

// Clock returns the simulated seconds. It stops when the run ends.
func (s *Session) Clock() float64 { return s.clock }

// Width returns the current river width.
func (s *Session) Width() float64 { return s.width }

// Player returns a copy of the craft state.
func (s *Session) Player() Player { return s.player }

// Camera returns a copy of the camera pose.
func (s *Session) Camera() Camera { return s.camera }
