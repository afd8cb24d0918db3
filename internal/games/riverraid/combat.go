package riverraid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// crash tests the craft against every lethal hazard and returns the reason
// of the first hit. Banks are checked first, then enemies, then bridges.
func (s *Session) crash(craft core.Box) (Reason, bool) {
	for _, b := range s.banks.Items() {
		if b.Alive() && craft.Intersects(b.Bounds()) {
			return ReasonHitBank, true
		}
	}
	for _, e := range s.enemies.Items() {
		if e.Alive() && craft.Intersects(e.Bounds()) {
			return ReasonHitEnemy, true
		}
	}
	for _, b := range s.bridges.Items() {
		if b.Alive() && craft.Intersects(b.Bounds()) {
			return ReasonHitBridge, true
		}
	}
	return "", false
}

// refuel consumes the first depot the craft touches. At most one depot is
// collected per frame.
func (s *Session) refuel(craft core.Box) {
	pc := s.cfg.Player
	for _, d := range s.depots.Items() {
		if !d.Alive() || !craft.Intersects(d.Bounds()) {
			continue
		}
		before := s.player.Fuel
		s.player.Fuel = math.Min(pc.MaxFuel, s.player.Fuel+pc.FuelRefill)
		kill(d)
		s.emit(core.EventFuelCollected, KindDepot.String(), int(s.player.Fuel-before))
		return
	}
}

// fire launches a player shot one unit ahead of the craft when the live
// shot limit and the cooldown allow it.
func (s *Session) fire() {
	wc := s.cfg.Weapons.Player
	if wc.MaxLive > 0 && s.shots.Live() >= wc.MaxLive {
		return
	}
	if wc.Cooldown > 0 && s.clock-s.lastShot < wc.Cooldown {
		return
	}

	shot := &Shot{
		Body: Body{
			Pos:  s.player.Pos.Sub(mgl64.Vec3{0, 0, 1}),
			Half: mgl64.Vec3{wc.Radius, wc.Radius, wc.Length / 2},
		},
		Dir: mgl64.Vec3{0, 0, -1},
	}
	s.attach(shot)
	s.shots.Add(shot)
	s.lastShot = s.clock
}

// advanceShots moves player shots in spawn order. Each shot resolves
// against at most one target: enemies first, then bridges, then depots.
func (s *Session) advanceShots(delta float64) {
	wc := s.cfg.Weapons.Player
	camZ := s.camera.Pos.Z()

	for _, shot := range s.shots.Items() {
		if !shot.Alive() {
			continue
		}
		shot.Pos = shot.Pos.Add(shot.Dir.Mul(wc.Speed * delta))

		if target := s.target(shot.Bounds()); target != nil {
			kill(shot)
			kill(target)
			points := s.points(target.Kind())
			s.destruction += points
			s.scene.Flash()
			s.emit(core.EventTargetDestroyed, target.Kind().String(), points)
			continue
		}

		if shot.Pos.Z() < camZ-wc.MaxRange {
			kill(shot)
		}
	}
}

// target returns the first live entity hit by box in priority order.
func (s *Session) target(box core.Box) Entity {
	for _, e := range s.enemies.Items() {
		if e.Alive() && box.Intersects(e.Bounds()) {
			return e
		}
	}
	for _, b := range s.bridges.Items() {
		if b.Alive() && box.Intersects(b.Bounds()) {
			return b
		}
	}
	for _, d := range s.depots.Items() {
		if d.Alive() && box.Intersects(d.Bounds()) {
			return d
		}
	}
	return nil
}

// advanceEnemyShots moves hostile shots along their fixed direction.
// It reports true when one of them hit the craft.
func (s *Session) advanceEnemyShots(delta float64) bool {
	wc := s.cfg.Weapons.Enemy
	camZ := s.camera.Pos.Z()
	craft := s.player.Bounds()

	for _, shot := range s.enemyShots.Items() {
		if !shot.Alive() {
			continue
		}
		shot.Pos = shot.Pos.Add(shot.Dir.Mul(wc.Speed * delta))

		if craft.Intersects(shot.Bounds()) {
			kill(shot)
			return true
		}

		z := shot.Pos.Z()
		if z < camZ-wc.MaxRange || z > camZ+s.cfg.Streaming.TrailingBuffer {
			kill(shot)
		}
	}
	return false
}
