package riverraid

// Scene is the renderer side of the simulation. Every entity is attached
// when it spawns and detached exactly once when it is removed.
type Scene interface {
	Attach(e Entity)
	Detach(e Entity)
	// Flash signals a hit; the renderer decides how long the cue lasts.
	Flash()
}

// Display receives the two HUD text lines every frame.
type Display interface {
	Status(line string)
	Score(line string)
}

type nopScene struct{}

func (nopScene) Attach(Entity) {}
func (nopScene) Detach(Entity) {}
func (nopScene) Flash()        {}

type nopDisplay struct{}

func (nopDisplay) Status(string) {}
func (nopDisplay) Score(string)  {}
