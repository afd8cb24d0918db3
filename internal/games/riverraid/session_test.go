package riverraid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-riverraid/internal/config"
	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// quietConfig pushes every spawn cursor far away so the river stays empty.
func quietConfig() config.RiverRaidConfig {
	cfg := config.DefaultRiverRaidConfig()
	for _, sc := range []*config.StreamConfig{
		&cfg.Banks.StreamConfig,
		&cfg.Depots.StreamConfig,
		&cfg.Enemies.StreamConfig,
		&cfg.Bridges.StreamConfig,
	} {
		sc.FirstZ = -1e6
	}
	return cfg
}

type recordingScene struct {
	attached map[Handle]Entity
	detached int
	flashes  int
}

func newRecordingScene() *recordingScene {
	return &recordingScene{attached: make(map[Handle]Entity)}
}

func (r *recordingScene) Attach(e Entity) { r.attached[e.body().ID] = e }
func (r *recordingScene) Detach(e Entity) { delete(r.attached, e.body().ID); r.detached++ }
func (r *recordingScene) Flash()          { r.flashes++ }

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestOneSecondHoldingForward(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})

	s.Update(1.0, Controls{Forward: true})

	assert.InDelta(t, 27.0, s.Distance(), 1e-9)
	assert.InDelta(t, 10.0-27.0, s.Camera().Pos.Z(), 1e-9)
	assert.InDelta(t, -17.0-5.0, s.Player().Pos.Z(), 1e-9)
	assert.InDelta(t, -22.0-10.0, s.Camera().Target.Z(), 1e-9)
	// Acceleration only applies from the next frame
	assert.InDelta(t, 24.0, s.Player().Speed, 1e-9)
}

func TestSpeedFloor(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	for i := 0; i < 10; i++ {
		s.Update(1.0, Controls{})
	}
	assert.Equal(t, s.cfg.Player.MinSpeed, s.Player().Speed)
}

func TestFuelRunsOutAfterFiftySeconds(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})

	gameOvers := 0
	for i := 1; i <= 50; i++ {
		events := s.Update(1.0, Controls{})
		gameOvers += countEvents(events, core.EventGameOver)

		fuel := s.Player().Fuel
		assert.GreaterOrEqual(t, fuel, 0.0)
		assert.LessOrEqual(t, fuel, 100.0)
		if i < 50 {
			require.Equal(t, Running, s.Phase(), "tick %d", i)
		}
	}

	assert.Equal(t, GameOver, s.Phase())
	assert.Equal(t, ReasonOutOfFuel, s.Reason())
	assert.Equal(t, 0.0, s.Player().Fuel)
	assert.Equal(t, 1, gameOvers)

	// Further updates are ignored and the clock stays frozen.
	clock := s.Clock()
	assert.Nil(t, s.Update(1.0, Controls{Forward: true}))
	assert.Equal(t, clock, s.Clock())
}

func TestRefuelTakesOneDepotAndCaps(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	s.player.Fuel = 90

	for i := 0; i < 2; i++ {
		d := &FuelDepot{Body{Pos: s.player.Pos, Half: mgl64.Vec3{0.8, 0.25, 0.8}}}
		s.attach(d)
		s.depots.Add(d)
	}

	s.refuel(s.player.Bounds())

	assert.Equal(t, 100.0, s.player.Fuel)
	assert.Equal(t, 1, s.depots.Live())
	require.Len(t, s.events, 1)
	assert.Equal(t, core.EventFuelCollected, s.events[0].Kind)
	assert.Equal(t, 10, s.events[0].Value)
}

func TestTurretFiresWithinRange(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		fires    bool
	}{
		{"in range", 40, true},
		{"out of range", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(quietConfig(), 1, Collaborators{})
			s.clock = 2 // Past the cooldown

			turret := &Turret{Body: Body{
				Pos:  s.player.Pos.Sub(mgl64.Vec3{0, 0, tt.distance}),
				Half: mgl64.Vec3{0.4, 0.4, 0.4},
			}}
			s.aim(turret)

			if !tt.fires {
				assert.Equal(t, 0, s.enemyShots.Len())
				return
			}
			require.Equal(t, 1, s.enemyShots.Len())
			shot := s.enemyShots.Items()[0]
			assert.True(t, shot.Hostile)
			assert.InDelta(t, 1.0, shot.Dir.Len(), 1e-9)
			assert.InDelta(t, 1.0, shot.Dir.Z(), 1e-9) // Toward the craft
			assert.Equal(t, 2.0, turret.LastFired)

			// Cooldown blocks an immediate second shot
			s.aim(turret)
			assert.Equal(t, 1, s.enemyShots.Len())
		})
	}
}

func TestHighScorePersistsOnlyWhenBeaten(t *testing.T) {
	store := core.NewMemoryStore()
	key := config.DefaultRiverRaidConfig().Scoring.HighScoreKey

	first := NewSession(quietConfig(), 1, Collaborators{Store: store})
	assert.Equal(t, 0, first.HighScore())
	first.distance = 120
	first.end(ReasonOutOfFuel)
	assert.Equal(t, 120, store.Get(key))
	assert.Equal(t, 1, countEvents(first.events, core.EventNewHighScore))

	// A second game over on the same session is ignored
	first.end(ReasonHitBank)
	assert.Equal(t, ReasonOutOfFuel, first.Reason())
	assert.Equal(t, 1, store.Writes())

	second := NewSession(quietConfig(), 2, Collaborators{Store: store})
	assert.Equal(t, 120, second.HighScore())
	second.distance = 80
	second.end(ReasonHitBank)
	assert.Equal(t, 80, second.Score())
	assert.Equal(t, 120, store.Get(key))
	assert.Equal(t, 1, store.Writes())
}

func TestGameOverDisplayLines(t *testing.T) {
	hud := &HUD{}
	s := NewSession(quietConfig(), 1, Collaborators{Display: hud})
	assert.Equal(t, "Fuel: 100", hud.StatusLine)
	assert.Equal(t, "Score: 0 | High: 0", hud.ScoreLine)

	s.distance = 42.9
	s.destruction = 50
	s.end(ReasonHitBridge)

	assert.Equal(t, "Game Over - Hit Bridge! Final Score: 92", hud.StatusLine)
	assert.Equal(t, "Score: 92 | High: 92", hud.ScoreLine)
}

func TestRiverWidthStaysInBounds(t *testing.T) {
	rc := config.DefaultRiverRaidConfig().River
	for z := -20000.0; z <= 20000; z += 3.7 {
		w := RiverWidth(rc, z)
		require.GreaterOrEqual(t, w, rc.MinWidth)
		require.LessOrEqual(t, w, rc.MaxWidth)
	}
}

func TestLateralClampHolds(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 3000 && s.Phase() == Running; i++ {
		c := Controls{Forward: rng.Intn(2) == 0, Left: rng.Intn(3) == 0, Right: rng.Intn(3) == 0}
		s.Update(1.0/60, c)
		bound := LateralBound(s.Width(), s.cfg.Player.Margin)
		require.LessOrEqual(t, math.Abs(s.Player().Pos.X()), bound+1e-9)
	}
}

func TestCrashPriorityAndReasons(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	at := s.player.Pos.Sub(mgl64.Vec3{0, 0, 0.1})

	enemy := &Helicopter{Body: Body{Pos: at, Half: mgl64.Vec3{1, 1, 1}}, Dir: 1}
	bank := &Bank{Body{Pos: at, Half: mgl64.Vec3{1, 1, 1}}}
	s.enemies.Add(enemy)
	s.banks.Add(bank)

	events := s.Update(0.001, Controls{})

	assert.Equal(t, GameOver, s.Phase())
	assert.Equal(t, ReasonHitBank, s.Reason())
	assert.Equal(t, 1, countEvents(events, core.EventGameOver))
}

func TestCrashEndsFrameBeforeLaterStages(t *testing.T) {
	scene := newRecordingScene()
	s := NewSession(quietConfig(), 1, Collaborators{Scene: scene})
	camZ := s.camera.Pos.Z()

	bank := &Bank{Body{Pos: s.player.Pos, Half: mgl64.Vec3{1, 1, 1}}}
	shot := &Shot{Body: Body{Pos: mgl64.Vec3{50, 0, camZ - 50}, Half: mgl64.Vec3{0.1, 0.1, 0.25}}, Dir: mgl64.Vec3{0, 0, -1}}
	hostile := &Shot{Body: Body{Pos: mgl64.Vec3{50, 0, camZ - 20}}, Dir: mgl64.Vec3{1, 0, 0}, Hostile: true}
	s.attach(bank)
	s.banks.Add(bank)
	s.attach(shot)
	s.shots.Add(shot)
	s.attach(hostile)
	s.enemyShots.Add(hostile)
	shotAt, hostileAt := shot.Pos, hostile.Pos
	fuel, score := s.Player().Fuel, s.Score()

	s.Update(0.001, Controls{})

	require.Equal(t, ReasonHitBank, s.Reason())
	assert.Equal(t, shotAt, shot.Pos, "player shots do not advance")
	assert.Equal(t, hostileAt, hostile.Pos, "enemy shots do not advance")
	assert.Equal(t, fuel, s.Player().Fuel)
	assert.Equal(t, score, s.Score())

	// Hostile shots are discarded and released the same frame.
	assert.False(t, hostile.Alive())
	assert.Equal(t, 0, s.enemyShots.Len())
	assert.NotContains(t, scene.attached, hostile.ID)
	assert.Equal(t, 1, scene.detached)
	assert.Contains(t, scene.attached, shot.ID)
}

func TestEnemyShotEndsGame(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	s.enemyShots.Add(&Shot{
		Body:    Body{Pos: s.player.Pos, Half: mgl64.Vec3{0.15, 0.15, 0.3}},
		Dir:     mgl64.Vec3{0, 0, 1},
		Hostile: true,
	})

	s.Update(0.001, Controls{})

	assert.Equal(t, ReasonHitByEnemy, s.Reason())
	assert.Equal(t, 0, s.enemyShots.Len())
}

func TestEnemyShotDiscardedOutsideWindow(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	camZ := s.camera.Pos.Z()
	behind := &Shot{Body: Body{Pos: mgl64.Vec3{50, 0, camZ + 30}}, Dir: mgl64.Vec3{0, 0, 1}, Hostile: true}
	ahead := &Shot{Body: Body{Pos: mgl64.Vec3{50, 0, camZ - 150}}, Dir: mgl64.Vec3{0, 0, -1}, Hostile: true}
	inside := &Shot{Body: Body{Pos: mgl64.Vec3{50, 0, camZ - 20}}, Dir: mgl64.Vec3{1, 0, 0}, Hostile: true}
	s.enemyShots.Add(behind, ahead, inside)

	assert.False(t, s.advanceEnemyShots(0.01))
	assert.False(t, behind.Alive())
	assert.False(t, ahead.Alive())
	assert.True(t, inside.Alive())
}

func TestPlayerShotTargetPriority(t *testing.T) {
	scene := newRecordingScene()
	s := NewSession(quietConfig(), 1, Collaborators{Scene: scene})
	at := mgl64.Vec3{0, 0.3, 0}

	turret := &Turret{Body: Body{Pos: at, Half: mgl64.Vec3{0.4, 0.4, 0.4}}}
	bridge := &Bridge{Body{Pos: at, Half: mgl64.Vec3{5, 0.5, 1}}}
	depot := &FuelDepot{Body{Pos: at, Half: mgl64.Vec3{0.8, 0.25, 0.8}}}
	s.enemies.Add(turret)
	s.bridges.Add(bridge)
	s.depots.Add(depot)

	newShot := func() *Shot {
		sh := &Shot{Body: Body{Pos: at, Half: mgl64.Vec3{0.1, 0.1, 0.25}}, Dir: mgl64.Vec3{0, 0, -1}}
		s.shots.Add(sh)
		return sh
	}

	want := []struct {
		target Entity
		points int
	}{
		{turret, 50},
		{bridge, 50},
		{depot, 25},
	}
	total := 0
	for _, w := range want {
		shot := newShot()
		s.advanceShots(0.001)
		s.compact()

		assert.False(t, shot.Alive())
		assert.False(t, w.target.Alive(), "%s should be destroyed", w.target.Kind())
		total += w.points
		assert.Equal(t, total, s.destruction)
	}
	assert.Equal(t, 3, scene.flashes)
	assert.Equal(t, 0, s.shots.Len())
}

func TestShotResolvesAgainstOneTarget(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	at := mgl64.Vec3{0, 0.3, 0}
	a := &Helicopter{Body: Body{Pos: at, Half: mgl64.Vec3{1, 0.15, 1}}}
	b := &Helicopter{Body: Body{Pos: at, Half: mgl64.Vec3{1, 0.15, 1}}}
	s.enemies.Add(a, b)
	s.shots.Add(&Shot{Body: Body{Pos: at, Half: mgl64.Vec3{0.1, 0.1, 0.25}}, Dir: mgl64.Vec3{0, 0, -1}})

	s.advanceShots(0.001)

	assert.False(t, a.Alive())
	assert.True(t, b.Alive())
	assert.Equal(t, 100, s.destruction)
}

func TestPlayerShotDiscardedBeyondRange(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	far := &Shot{Body: Body{Pos: mgl64.Vec3{0, 0, s.camera.Pos.Z() - 99.99}}, Dir: mgl64.Vec3{0, 0, -1}}
	s.shots.Add(far)

	s.advanceShots(0.01)

	assert.False(t, far.Alive())
}

func TestFireLimits(t *testing.T) {
	t.Run("classic allows one live shot", func(t *testing.T) {
		s := NewSession(quietConfig(), 1, Collaborators{})
		for i := 0; i < 5; i++ {
			s.Update(1.0/60, Controls{Fire: true})
		}
		assert.Equal(t, 1, s.shots.Live())
	})

	t.Run("rapid fire is gated by cooldown", func(t *testing.T) {
		s := NewSession(config.RapidFire(quietConfig()), 1, Collaborators{})
		s.fire()
		assert.Equal(t, 1, s.shots.Live())
		s.clock = 0.1
		s.fire()
		assert.Equal(t, 1, s.shots.Live())
		s.clock = 0.2
		s.fire()
		assert.Equal(t, 2, s.shots.Live())
	})
}

func TestShotsLeftBehindArePruned(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  config.RiverRaidConfig
	}{
		{"classic", quietConfig()},
		{"rapid", config.RapidFire(quietConfig())},
	} {
		t.Run(tc.name, func(t *testing.T) {
			scene := newRecordingScene()
			s := NewSession(tc.cfg, 1, Collaborators{Scene: scene})
			buffer := tc.cfg.Streaming.TrailingBuffer

			for i := 0; i < 40*60; i++ {
				s.Update(1.0/60, Controls{Forward: true, Fire: true})
				require.Equal(t, Running, s.Phase())

				camZ := s.camera.Pos.Z()
				for _, sh := range s.shots.Items() {
					require.LessOrEqual(t, sh.Pos.Z(), camZ+buffer, "tick %d", i)
				}
			}

			// The craft outruns its shots, so firing keeps going.
			assert.Greater(t, int(s.nextID), 10)
			assert.Equal(t, s.shots.Len(), len(scene.attached))
		})
	}
}

func TestHelicopterReversesAtRiverEdge(t *testing.T) {
	s := NewSession(quietConfig(), 1, Collaborators{})
	half := s.Width() / 2
	h := &Helicopter{Body: Body{Pos: mgl64.Vec3{half - 0.01, 0.16, -1000}, Half: mgl64.Vec3{1, 0.15, 1}}, Dir: 1}
	s.enemies.Add(h)

	s.patrol(0.1)

	assert.Equal(t, half, h.Pos.X())
	assert.Equal(t, -1.0, h.Dir)
	assert.InDelta(t, 1.5, h.Rotor, 1e-9)
}

func TestScoreMonotonicAndSpritesBounded(t *testing.T) {
	sprites := NewSpriteSheet(6)
	s := NewSession(config.DefaultRiverRaidConfig(), 7, Collaborators{Scene: sprites})
	rng := rand.New(rand.NewSource(11))

	last := 0
	for i := 0; i < 5000 && s.Phase() == Running; i++ {
		c := Controls{
			Forward: rng.Intn(4) == 0,
			Left:    rng.Intn(3) == 0,
			Right:   rng.Intn(3) == 0,
			Fire:    rng.Intn(2) == 0,
		}
		s.Update(1.0/60, c)

		require.GreaterOrEqual(t, s.Score(), last)
		last = s.Score()

		live := 0
		s.Visit(func(Entity) { live++ })
		require.Equal(t, live, sprites.Len())
	}

	s.Close()
	assert.Equal(t, 0, sprites.Len())
}

func TestSessionDeterminism(t *testing.T) {
	run := func() (float64, int, Handle) {
		s := NewSession(config.DefaultRiverRaidConfig(), 99, Collaborators{})
		for i := 0; i < 600 && s.Phase() == Running; i++ {
			s.Update(1.0/60, Controls{Fire: i%20 == 0, Left: i%90 < 30})
		}
		return s.Distance(), s.Score(), s.nextID
	}

	d1, s1, n1 := run()
	d2, s2, n2 := run()
	assert.Equal(t, d1, d2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, n1, n2)
}
