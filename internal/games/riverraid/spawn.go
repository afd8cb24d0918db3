package riverraid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// stream spawns ahead of the camera, runs enemy behavior and prunes
// everything that fell behind. Each stream spawns at most once per frame.
func (s *Session) stream(delta float64) {
	camZ := s.camera.Pos.Z()
	look := s.cfg.Streaming.LookAhead
	buffer := s.cfg.Streaming.TrailingBuffer

	if z, ok := s.banks.Due(camZ, look); ok {
		s.spawnBanks(z)
	}
	s.banks.Prune(camZ, buffer)

	if z, ok := s.depots.Due(camZ, look); ok {
		s.spawnDepot(z)
	}
	s.depots.Prune(camZ, buffer)

	if z, ok := s.enemies.Due(camZ, look); ok {
		s.spawnEnemy(z)
	}
	s.patrol(delta)
	s.enemies.Prune(camZ, buffer)

	if z, ok := s.bridges.Due(camZ, look); ok {
		s.spawnBridge(z)
	}
	s.bridges.Prune(camZ, buffer)

	// A craft flying faster than its shots leaves them behind.
	s.shots.Prune(camZ, buffer)
}

// spawnBanks places a bank on each side of the river. Both banks shift by
// the same curve offset toward opposite sides, so the river meanders.
func (s *Session) spawnBanks(z float64) {
	bc := s.cfg.Banks
	rc := s.cfg.River

	offset := math.Sin(z*rc.CurveFrequency) * rc.CurveAmplitude
	edge := s.width/2 + bc.Width/2
	half := mgl64.Vec3{bc.Width / 2, bc.Height / 2, bc.Depth / 2}

	left := &Bank{Body{Pos: mgl64.Vec3{-edge + offset, bc.Height / 2, z}, Half: half}}
	right := &Bank{Body{Pos: mgl64.Vec3{edge - offset, bc.Height / 2, z}, Half: half}}
	s.attach(left)
	s.attach(right)
	s.banks.Add(left, right)
}

func (s *Session) spawnDepot(z float64) {
	dc := s.cfg.Depots
	x := s.lateral(math.Max(0, s.width/2-dc.Radius))
	d := &FuelDepot{Body{
		Pos:  mgl64.Vec3{x, dc.Height / 2, z},
		Half: mgl64.Vec3{dc.Radius, dc.Height / 2, dc.Radius},
	}}
	s.attach(d)
	s.depots.Add(d)
}

func (s *Session) spawnEnemy(z float64) {
	ec := s.cfg.Enemies
	var e Entity

	if s.rng.Float64() < ec.TurretChance {
		tc := ec.Turret
		side := 1.0
		if s.rng.Intn(2) == 0 {
			side = -1
		}
		e = &Turret{Body: Body{
			Pos:  mgl64.Vec3{side * (s.width/2 + s.cfg.Banks.Width/2), tc.MountHeight + tc.Height/2, z},
			Half: mgl64.Vec3{tc.Radius, tc.Height / 2, tc.Radius},
		}}
	} else {
		hc := ec.Helicopter
		dir := 1.0
		if s.rng.Intn(2) == 0 {
			dir = -1
		}
		e = &Helicopter{
			Body: Body{
				Pos:  mgl64.Vec3{s.lateral(s.width / 2), hc.Altitude + hc.Size.Y/2, z},
				Half: mgl64.Vec3{hc.Size.X / 2, hc.Size.Y / 2, hc.Size.Z / 2},
			},
			Dir: dir,
		}
	}

	s.attach(e)
	s.enemies.Add(e)
}

// spawnBridge spans the current river width, centered.
func (s *Session) spawnBridge(z float64) {
	bc := s.cfg.Bridges
	b := &Bridge{Body{
		Pos:  mgl64.Vec3{0, bc.Height / 2, z},
		Half: mgl64.Vec3{s.width / 2, bc.Height / 2, bc.Depth / 2},
	}}
	s.attach(b)
	s.bridges.Add(b)
}

// lateral returns a uniform random X in [-bound, bound].
func (s *Session) lateral(bound float64) float64 {
	return (s.rng.Float64()*2 - 1) * bound
}

// patrol moves helicopters and lets turrets fire.
func (s *Session) patrol(delta float64) {
	hc := s.cfg.Enemies.Helicopter
	for _, e := range s.enemies.Items() {
		if !e.Alive() {
			continue
		}
		switch en := e.(type) {
		case *Helicopter:
			en.Pos[0] += en.Dir * hc.Speed * delta
			bound := s.width / 2
			if en.Pos.X() > bound || en.Pos.X() < -bound {
				en.Dir = -en.Dir
				en.Pos[0] = math.Max(-bound, math.Min(bound, en.Pos.X()))
			}
			en.Rotor = math.Mod(en.Rotor+hc.RotorSpin*delta, 2*math.Pi)
		case *Turret:
			s.aim(en)
		}
	}
}

// aim fires a shot from t at the craft when the cooldown has elapsed and
// the craft is within range. The direction is fixed at fire time.
func (s *Session) aim(t *Turret) {
	tc := s.cfg.Enemies.Turret
	if s.clock-t.LastFired <= tc.FireCooldown {
		return
	}
	toPlayer := s.player.Pos.Sub(t.Pos)
	dist := toPlayer.Len()
	if dist >= tc.Range || dist == 0 {
		return
	}

	wc := s.cfg.Weapons.Enemy
	shot := &Shot{
		Body: Body{
			Pos:  t.Pos,
			Half: mgl64.Vec3{wc.Radius, wc.Radius, wc.Length / 2},
		},
		Dir:     toPlayer.Mul(1 / dist),
		Hostile: true,
	}
	s.attach(shot)
	s.enemyShots.Add(shot)
	t.LastFired = s.clock
}
