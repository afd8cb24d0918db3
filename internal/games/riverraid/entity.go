package riverraid

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Handle identifies an entity for the lifetime of a session.
// Handles are never reused, so the renderer can key sprites by them.
type Handle uint64

// Kind tags the concrete entity variant.
type Kind uint8

const (
	KindBank Kind = iota
	KindDepot
	KindTurret
	KindHelicopter
	KindBridge
	KindPlayerShot
	KindEnemyShot
)

func (k Kind) String() string {
	switch k {
	case KindBank:
		return "bank"
	case KindDepot:
		return "depot"
	case KindTurret:
		return "turret"
	case KindHelicopter:
		return "helicopter"
	case KindBridge:
		return "bridge"
	case KindPlayerShot:
		return "player_shot"
	case KindEnemyShot:
		return "enemy_shot"
	default:
		return "unknown"
	}
}

// Body is the state shared by every streamed entity: a handle, a center
// position and the half extents of its bounding box.
type Body struct {
	ID   Handle
	Pos  mgl64.Vec3
	Half mgl64.Vec3
	dead bool
}

func (b *Body) body() *Body { return b }

// Bounds returns the world-space bounding box.
func (b *Body) Bounds() core.Box { return core.NewBox(b.Pos, b.Half) }

// Alive reports whether the entity has not been removed this frame.
func (b *Body) Alive() bool { return !b.dead }

// Entity is one of the concrete variants below. The set is closed.
type Entity interface {
	Kind() Kind
	Bounds() core.Box
	Alive() bool
	body() *Body
}

// Bank is one side of a river bank segment.
type Bank struct{ Body }

// FuelDepot refuels the player on contact.
type FuelDepot struct{ Body }

// Turret sits on a bank edge and fires aimed shots.
type Turret struct {
	Body
	LastFired float64 // Session clock at the last shot
}

// Helicopter patrols across the river.
type Helicopter struct {
	Body
	Dir   float64 // +1 right, -1 left
	Rotor float64 // Rotor angle in radians, visual only
}

// Bridge spans the whole river.
type Bridge struct{ Body }

// Shot is a projectile. Player shots travel along -Z; hostile shots travel
// along the direction fixed when the turret fired.
type Shot struct {
	Body
	Dir     mgl64.Vec3
	Hostile bool
}

func (*Bank) Kind() Kind       { return KindBank }
func (*FuelDepot) Kind() Kind  { return KindDepot }
func (*Turret) Kind() Kind     { return KindTurret }
func (*Helicopter) Kind() Kind { return KindHelicopter }
func (*Bridge) Kind() Kind     { return KindBridge }

func (s *Shot) Kind() Kind {
	if s.Hostile {
		return KindEnemyShot
	}
	return KindPlayerShot
}
