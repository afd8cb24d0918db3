package riverraid

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func bankAt(z float64) *Bank {
	return &Bank{Body{Pos: mgl64.Vec3{0, 0, z}}}
}

func TestStreamDueAdvancesCursorBySpacing(t *testing.T) {
	s := NewStream[*Bank](-20, 10)

	_, ok := s.Due(100, 50)
	assert.False(t, ok, "camera too far behind the cursor")
	assert.Equal(t, -20.0, s.Cursor())

	prev := s.Cursor()
	for i := 0; i < 5; i++ {
		z, ok := s.Due(-1000, 50)
		assert.True(t, ok)
		assert.Equal(t, prev, z)
		assert.Equal(t, prev-10, s.Cursor())
		prev = s.Cursor()
	}
}

func TestStreamDueBoundary(t *testing.T) {
	s := NewStream[*Bank](-20, 10)

	// Spawns only once the camera is strictly inside the look-ahead window
	_, ok := s.Due(30, 50)
	assert.False(t, ok)
	_, ok = s.Due(29.9, 50)
	assert.True(t, ok)
}

func TestPoolPruneIffBehindBuffer(t *testing.T) {
	var p Pool[*Bank]
	camZ, buffer := 10.0, 20.0
	ahead := bankAt(camZ - 5)
	edge := bankAt(camZ + buffer)
	behind := bankAt(camZ + buffer + 0.001)
	p.Add(ahead, edge, behind)

	assert.Equal(t, 1, p.Prune(camZ, buffer))
	assert.True(t, ahead.Alive())
	assert.True(t, edge.Alive())
	assert.False(t, behind.Alive())
}

func TestPoolCompactKeepsOrderAndReleases(t *testing.T) {
	var p Pool[*Bank]
	banks := []*Bank{bankAt(1), bankAt(2), bankAt(3), bankAt(4)}
	p.Add(banks...)
	kill(banks[1])
	kill(banks[3])

	var released []Entity
	n := p.Compact(func(e Entity) { released = append(released, e) })

	assert.Equal(t, 2, n)
	assert.Equal(t, []*Bank{banks[0], banks[2]}, p.Items())
	assert.Len(t, released, 2)
	assert.Equal(t, 2, p.Live())

	// Nothing left to release on a second pass
	assert.Equal(t, 0, p.Compact(nil))
}
