package terrain

import (
	"math"
	"testing"

	"github.com/adammck/footstep/math3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	m := Mask(Ground)
	assert.True(t, m.Has(Ground))
	assert.False(t, m.Has(Obstacle))
	assert.True(t, AllLayers.Has(Obstacle))
	assert.False(t, NoLayers.Has(Ground))
	assert.True(t, Mask(Ground, Obstacle).Has(Obstacle))
}

func TestFlat(t *testing.T) {
	type eg struct {
		origin math3d.Vector3
		max    float64
		ok     bool
		point  math3d.Vector3
	}

	examples := []eg{
		{math3d.Vector3{X: 0, Y: 1, Z: 6}, 10, true, math3d.Vector3{X: 0, Y: 0, Z: 6}},
		{math3d.Vector3{X: 3, Y: 10, Z: -2}, 10, true, math3d.Vector3{X: 3, Y: 0, Z: -2}},

		// out of range
		{math3d.Vector3{X: 0, Y: 11, Z: 0}, 10, false, math3d.ZeroVector3},

		// already below the surface
		{math3d.Vector3{X: 0, Y: -1, Z: 0}, 10, false, math3d.ZeroVector3},
	}

	p := NewFlat(0)
	for i, x := range examples {
		h, ok := p.Raycast(x.origin, math3d.Down, x.max, AllLayers)
		require.Equal(t, x.ok, ok, "example %d", i+1)
		if ok {
			assert.InDelta(t, 0, h.Point.Distance(x.point), 1e-9, "example %d", i+1)
			assert.Equal(t, math3d.Up, h.Normal)
			assert.InDelta(t, x.origin.Y, h.Distance, 1e-9)
		}
	}
}

func TestFlatIgnoresOtherLayers(t *testing.T) {
	p := NewFlat(0)
	_, ok := p.Raycast(math3d.Vector3{Y: 1}, math3d.Down, 10, Mask(Obstacle))
	assert.False(t, ok)
}

func TestFlatParallelRay(t *testing.T) {
	p := NewFlat(0)
	_, ok := p.Raycast(math3d.Vector3{Y: 1}, math3d.Forward, 10, AllLayers)
	assert.False(t, ok)
}

func TestSlope(t *testing.T) {
	s := NewSlope(0, 0.5)
	h, ok := s.Raycast(math3d.Vector3{X: 0, Y: 10, Z: 4}, math3d.Down, 20, AllLayers)
	require.True(t, ok)
	assert.InDelta(t, 2.0, h.Point.Y, 1e-9)
	assert.InDelta(t, 1.0, h.Normal.Magnitude(), 1e-9)
	assert.True(t, h.Normal.Z < 0)
}

func TestStairs(t *testing.T) {
	s := NewStairs(0.5, 2)

	type eg struct {
		z   float64
		exp float64
	}

	examples := []eg{
		{-3, 0},
		{0, 0},
		{1.9, 0},
		{2, 0.5},
		{5, 1},
	}

	for i, x := range examples {
		h, ok := s.Raycast(math3d.Vector3{X: 0, Y: 5, Z: x.z}, math3d.Down, 10, AllLayers)
		require.True(t, ok, "example %d", i+1)
		assert.InDelta(t, x.exp, h.Point.Y, 1e-9, "example %d", i+1)
		assert.Equal(t, math3d.Up, h.Normal)
	}
}

func TestFieldRejectsSlantedRays(t *testing.T) {
	f := NewWaves(1, 10)
	_, ok := f.Raycast(math3d.Vector3{Y: 5}, math3d.Vector3{X: 0.1, Y: -1, Z: 0}.Unit(), 10, AllLayers)
	assert.False(t, ok)
}

func TestFieldEstimatedNormal(t *testing.T) {
	f := &Field{Height: func(x, z float64) float64 { return z }}
	h, ok := f.Raycast(math3d.Vector3{Y: 5}, math3d.Down, 10, AllLayers)
	require.True(t, ok)

	exp := math3d.Vector3{X: 0, Y: 1, Z: -1}.Unit()
	assert.InDelta(t, 0, h.Normal.Distance(exp), 1e-6)
}

func TestWaves(t *testing.T) {
	f := NewWaves(1, 4)
	h, ok := f.Raycast(math3d.Vector3{Y: 5, Z: 1}, math3d.Down, 10, AllLayers)
	require.True(t, ok)
	assert.InDelta(t, math.Sin(math.Pi/2), h.Point.Y, 1e-9)

	// At the crest, the ground is level.
	assert.InDelta(t, 0, h.Normal.Distance(math3d.Up), 1e-9)
}

func TestLayeredNearestHit(t *testing.T) {
	crate := &Platform{
		Min:    math3d.Vector3{X: -1, Z: -1},
		Max:    math3d.Vector3{X: 1, Z: 1},
		Height: 2,
		Layer:  Obstacle,
	}
	l := Layered{NewFlat(0), crate}

	h, ok := l.Raycast(math3d.Vector3{Y: 5}, math3d.Down, 10, AllLayers)
	require.True(t, ok)
	assert.Equal(t, 2.0, h.Point.Y)
	assert.Equal(t, Obstacle, h.Layer)

	// Ground only: the crate is invisible.
	h, ok = l.Raycast(math3d.Vector3{Y: 5}, math3d.Down, 10, Mask(Ground))
	require.True(t, ok)
	assert.Equal(t, 0.0, h.Point.Y)

	// Outside of the crate.
	h, ok = l.Raycast(math3d.Vector3{X: 3, Y: 5}, math3d.Down, 10, AllLayers)
	require.True(t, ok)
	assert.Equal(t, 0.0, h.Point.Y)

	_, ok = Layered{}.Raycast(math3d.Vector3{Y: 5}, math3d.Down, 10, AllLayers)
	assert.False(t, ok)
}
