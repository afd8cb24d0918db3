package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoxIntersects(t *testing.T) {
	unit := mgl64.Vec3{1, 1, 1}

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(mgl64.Vec3{0, 0, 0}, unit),
			b:        NewBox(mgl64.Vec3{1, 1, 1}, unit),
			expected: true,
		},
		{
			name:     "separated on x",
			a:        NewBox(mgl64.Vec3{0, 0, 0}, unit),
			b:        NewBox(mgl64.Vec3{3, 0, 0}, unit),
			expected: false,
		},
		{
			name:     "separated on y",
			a:        NewBox(mgl64.Vec3{0, 0, 0}, unit),
			b:        NewBox(mgl64.Vec3{0, 2.5, 0}, unit),
			expected: false,
		},
		{
			name:     "separated on z",
			a:        NewBox(mgl64.Vec3{0, 0, 0}, unit),
			b:        NewBox(mgl64.Vec3{0, 0, -5}, unit),
			expected: false,
		},
		{
			name:     "touching faces (no overlap)",
			a:        NewBox(mgl64.Vec3{0, 0, 0}, unit),
			b:        NewBox(mgl64.Vec3{2, 0, 0}, unit),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{5, 5, 5}),
			b:        NewBox(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0.1, 0.1, 0.1}),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	b := NewBox(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0.5, 1, 2})

	if got := b.Min(); got != (mgl64.Vec3{0.5, 1, 1}) {
		t.Errorf("Min() = %v, expected [0.5 1 1]", got)
	}
	if got := b.Max(); got != (mgl64.Vec3{1.5, 3, 5}) {
		t.Errorf("Max() = %v, expected [1.5 3 5]", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
