package riverraid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-riverraid/internal/config"
	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Controls is the held state of the flight keys sampled for one frame.
type Controls struct {
	Forward bool
	Left    bool
	Right   bool
	Fire    bool
}

// ControlsFrom samples the flight keys from a platform input frame.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Forward: in.Has(core.ActionForward),
		Left:    in.Has(core.ActionLeft),
		Right:   in.Has(core.ActionRight),
		Fire:    in.Has(core.ActionFire),
	}
}

// Player is the craft.
type Player struct {
	Pos   mgl64.Vec3
	Half  mgl64.Vec3
	Speed float64 // Forward surplus on top of the scroll while Forward is held
	Fuel  float64
}

// Bounds returns the craft's bounding box.
func (p Player) Bounds() core.Box {
	return core.NewBox(p.Pos, p.Half)
}

// Camera trails the craft.
type Camera struct {
	Pos    mgl64.Vec3
	Target mgl64.Vec3 // Look-at point ahead of the craft
}

// RiverWidth returns the river width at camera depth camZ. The width
// oscillates between MinWidth and MaxWidth.
func RiverWidth(cfg config.RiverConfig, camZ float64) float64 {
	f := (math.Sin(camZ*cfg.WidthFrequency) + 1) / 2
	w := cfg.MinWidth + f*(cfg.MaxWidth-cfg.MinWidth)
	return core.ClampF(w, cfg.MinWidth, cfg.MaxWidth)
}

// LateralBound returns how far from the river center the craft may fly.
func LateralBound(width, margin float64) float64 {
	return math.Max(0, width/2-margin)
}

// fly advances the camera and craft by one frame and returns the distance
// covered. Speed changes take effect from the next frame.
func (s *Session) fly(delta float64, c Controls) float64 {
	pc := s.cfg.Player
	cc := s.cfg.Camera

	s.multiplier = s.difficulty.Multiplier(s.distance, s.clock)
	frameSpeed := cc.ScrollSpeed * s.multiplier
	if c.Forward {
		frameSpeed += s.player.Speed
	}
	step := frameSpeed * delta
	s.distance += step
	s.camera.Pos[2] -= step
	s.player.Pos[2] = s.camera.Pos.Z() - cc.PlayerOffset

	s.width = RiverWidth(s.cfg.River, s.camera.Pos.Z())

	if c.Left {
		s.player.Pos[0] -= pc.LateralSpeed * delta
	}
	if c.Right {
		s.player.Pos[0] += pc.LateralSpeed * delta
	}
	bound := LateralBound(s.width, pc.Margin)
	s.player.Pos[0] = core.ClampF(s.player.Pos.X(), -bound, bound)

	s.camera.Target = mgl64.Vec3{s.player.Pos.X(), s.player.Pos.Y(), s.player.Pos.Z() - cc.LookAhead}

	if c.Forward {
		s.player.Speed += pc.Acceleration * delta
	} else {
		s.player.Speed -= pc.Deceleration * delta
	}
	s.player.Speed = math.Max(pc.MinSpeed, s.player.Speed)

	return step
}
