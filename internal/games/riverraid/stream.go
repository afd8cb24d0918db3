package riverraid

// Pool is an ordered collection of entities of one variant. Insertion order
// is spawn order. Entities are removed by marking them dead during a frame
// and compacting once the frame ends, so iteration never skips or repeats.
type Pool[T Entity] struct {
	items []T
}

// Add appends entities in spawn order.
func (p *Pool[T]) Add(items ...T) {
	p.items = append(p.items, items...)
}

// Items returns every entity still held, including ones killed this frame.
// Callers must check Alive.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Live counts entities that have not been killed.
func (p *Pool[T]) Live() int {
	n := 0
	for _, e := range p.items {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Len returns the number of held entities.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Prune kills every live entity that is more than buffer behind camZ.
// Behind means greater Z since the craft flies toward -Z.
func (p *Pool[T]) Prune(camZ, buffer float64) int {
	n := 0
	for _, e := range p.items {
		if e.Alive() && e.body().Pos.Z() > camZ+buffer {
			kill(e)
			n++
		}
	}
	return n
}

// Compact drops dead entities, preserving order, and hands each one to
// release so its render resources can be freed.
func (p *Pool[T]) Compact(release func(Entity)) int {
	kept := p.items[:0]
	removed := 0
	for _, e := range p.items {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		removed++
		if release != nil {
			release(e)
		}
	}
	// Clear the tail so dropped entities can be collected.
	var zero T
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = kept
	return removed
}

// Stream is a Pool fed by a spawn cursor. The cursor marks where the next
// entity will be generated and only ever moves forward (toward -Z).
type Stream[T Entity] struct {
	Pool[T]
	cursor  float64
	spacing float64
}

// NewStream creates a stream whose first spawn happens at firstZ.
func NewStream[T Entity](firstZ, spacing float64) *Stream[T] {
	return &Stream[T]{cursor: firstZ, spacing: spacing}
}

// Cursor returns the Z of the next spawn.
func (s *Stream[T]) Cursor() float64 {
	return s.cursor
}

// Due reports whether the camera is within lookAhead of the cursor. When it
// is, the spawn Z is returned and the cursor advances by one spacing, so at
// most one spawn happens per call.
func (s *Stream[T]) Due(camZ, lookAhead float64) (float64, bool) {
	if camZ >= s.cursor+lookAhead {
		return 0, false
	}
	z := s.cursor
	s.cursor -= s.spacing
	return z, true
}

func kill(e Entity) {
	e.body().dead = true
}
