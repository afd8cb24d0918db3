package riverraid

import (
	"math"

	"github.com/vovakirdan/tui-riverraid/internal/core"
)

// Visual characters for rendering
const (
	WaterChar      = '~'
	BankChar       = '█'
	DepotChar      = 'F'
	TurretChar     = 'T'
	HeliBodyChar   = 'H'
	BridgeChar     = '='
	PlayerChar     = '▲'
	PlayerShotChar = '|'
	EnemyShotChar  = '*'
)

// rotorFrames animate the helicopter rotor by angle.
var rotorFrames = [...]rune{'|', '/', '─', '\\'}

// Projection scale: columns per world unit across, world units per row ahead.
const (
	maxColsPerUnit = 3.0
	unitsPerRow    = 2.0
)

// SpriteSheet is the terminal Scene. It keeps one sprite per attached
// entity and projects them top-down onto a screen, the camera at the
// bottom row looking up the river.
type SpriteSheet struct {
	sprites     map[Handle]Entity
	flash       int // Frames of flash left
	flashFrames int
}

// NewSpriteSheet creates an empty sheet. flashFrames is how many rendered
// frames a hit flash lasts.
func NewSpriteSheet(flashFrames int) *SpriteSheet {
	if flashFrames < 1 {
		flashFrames = 1
	}
	return &SpriteSheet{
		sprites:     make(map[Handle]Entity),
		flashFrames: flashFrames,
	}
}

// Attach registers a sprite for e.
func (ss *SpriteSheet) Attach(e Entity) {
	ss.sprites[e.body().ID] = e
}

// Detach releases the sprite of e.
func (ss *SpriteSheet) Detach(e Entity) {
	delete(ss.sprites, e.body().ID)
}

// Flash starts the hit flash, restarting it if one is running.
func (ss *SpriteSheet) Flash() {
	ss.flash = ss.flashFrames
}

// Len returns the number of live sprites.
func (ss *SpriteSheet) Len() int {
	return len(ss.sprites)
}

// Flashing reports whether the hit flash is visible.
func (ss *SpriteSheet) Flashing() bool {
	return ss.flash > 0
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	top, bottom int // Play area rows, inclusive
	centerX     int
	colsPerUnit float64
	camZ        float64
}

func (v viewport) col(x float64) int {
	return v.centerX + int(math.Round(x*v.colsPerUnit))
}

func (v viewport) row(z float64) int {
	return v.bottom - int(math.Round((v.camZ-z)/unitsPerRow))
}

// rect returns the screen rectangle covered by a box, at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0, x1 := v.col(lo.X()), v.col(hi.X())
	y0, y1 := v.row(lo.Z()), v.row(hi.Z()) // Larger Z is nearer the bottom
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Draw renders the session into dst below the first hudRows rows.
func (ss *SpriteSheet) Draw(dst *core.Screen, s *Session, hudRows int) {
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= hudRows {
		return
	}

	rc := s.cfg.River
	span := rc.MaxWidth + 2*(s.cfg.Banks.Width+rc.CurveAmplitude)
	v := viewport{
		top:         hudRows,
		bottom:      h - 1,
		centerX:     w / 2,
		colsPerUnit: math.Min(maxColsPerUnit, float64(w-2)/span),
		camZ:        s.camera.Pos.Z(),
	}

	water := core.ColorWater
	if ss.Flashing() {
		water = core.ColorFlash
		ss.flash--
	}
	half := s.width / 2
	for y := v.top; y <= v.bottom; y++ {
		x0, x1 := v.col(-half), v.col(half)
		dst.DrawHLine(x0, y, x1-x0, WaterChar, water)
	}

	// Ground features first, then enemies, then shots. Within a layer
	// later spawns draw on top.
	var layers [KindEnemyShot + 1][]Entity
	s.Visit(func(e Entity) {
		if _, ok := ss.sprites[e.body().ID]; ok {
			layers[e.Kind()] = append(layers[e.Kind()], e)
		}
	})
	for _, kind := range [...]Kind{KindBank, KindBridge, KindDepot, KindTurret, KindHelicopter, KindPlayerShot, KindEnemyShot} {
		for _, e := range layers[kind] {
			ss.drawEntity(dst, v, e)
		}
	}

	pr := v.rect(s.player.Bounds())
	ss.fill(dst, v, pr, PlayerChar, core.ColorPlayer)
}

func (ss *SpriteSheet) drawEntity(dst *core.Screen, v viewport, e Entity) {
	r := v.rect(e.Bounds())
	switch en := e.(type) {
	case *Bank:
		ss.fill(dst, v, r, BankChar, core.ColorBank)
	case *Bridge:
		ss.fill(dst, v, r, BridgeChar, core.ColorBridge)
	case *FuelDepot:
		ss.fill(dst, v, r, DepotChar, core.ColorDepot)
	case *Turret:
		ss.fill(dst, v, r, TurretChar, core.ColorTurret)
	case *Helicopter:
		ss.fill(dst, v, r, HeliBodyChar, core.ColorHelicopter)
		frame := int(en.Rotor/(math.Pi/4)) % len(rotorFrames)
		ss.fill(dst, v, core.NewRect(r.X+r.W/2, r.Y, 1, 1), rotorFrames[frame], core.ColorHelicopter)
	case *Shot:
		if en.Hostile {
			ss.fill(dst, v, r, EnemyShotChar, core.ColorEnemyShot)
		} else {
			ss.fill(dst, v, r, PlayerShotChar, core.ColorPlayerShot)
		}
	}
}

// fill paints r clipped to the play area.
func (ss *SpriteSheet) fill(dst *core.Screen, v viewport, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		if y < v.top || y > v.bottom {
			continue
		}
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}
