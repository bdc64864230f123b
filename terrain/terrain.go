// Package terrain provides the surfaces which feet are placed on. The solver
// only ever asks one question of a surface: where does this ray hit you?
package terrain

import (
	"math"

	"github.com/adammck/footstep/math3d"
)

// Layer is a category of surface, like the layers of a physics engine.
type Layer uint

// LayerMask is a set of layers. A ray only hits surfaces whose layer is in the
// mask.
type LayerMask uint32

const (
	Ground   Layer = 0
	Obstacle Layer = 1

	AllLayers LayerMask = ^LayerMask(0)
	NoLayers  LayerMask = 0
)

// Mask returns a mask containing the given layers.
func Mask(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= 1 << l
	}

	return m
}

// Has returns true if the layer is in the mask.
func (m LayerMask) Has(l Layer) bool {
	return m&(1<<l) != 0
}

// Hit is the result of a successful raycast.
type Hit struct {
	Point    math3d.Vector3
	Normal   math3d.Vector3
	Distance float64
	Layer    Layer
}

type Surface interface {

	// Raycast casts a ray from origin in the (unit) direction dir, and returns
	// the nearest hit within maxDistance on a surface whose layer is in mask.
	Raycast(origin math3d.Vector3, dir math3d.Vector3, maxDistance float64, mask LayerMask) (Hit, bool)
}

// Plane is an infinite flat surface through Point, facing Normal.
type Plane struct {
	Point  math3d.Vector3
	Normal math3d.Vector3
	Layer  Layer
}

// NewFlat returns a horizontal ground plane at the given height.
func NewFlat(height float64) *Plane {
	return &Plane{
		Point:  math3d.Vector3{X: 0, Y: height, Z: 0},
		Normal: math3d.Up,
		Layer:  Ground,
	}
}

// NewSlope returns a ground plane which rises by grade units for every unit
// travelled along +Z, passing through height at the origin.
func NewSlope(height float64, grade float64) *Plane {
	return &Plane{
		Point:  math3d.Vector3{X: 0, Y: height, Z: 0},
		Normal: math3d.Vector3{X: 0, Y: 1, Z: -grade}.Unit(),
		Layer:  Ground,
	}
}

func (p *Plane) Raycast(origin math3d.Vector3, dir math3d.Vector3, maxDistance float64, mask LayerMask) (Hit, bool) {
	if !mask.Has(p.Layer) {
		return Hit{}, false
	}

	n := p.Normal.Unit()
	denom := dir.Dot(n)

	// Parallel to the plane, or passing through it from behind.
	if denom > -epsilon {
		return Hit{}, false
	}

	d := p.Point.Subtract(origin).Dot(n) / denom
	if d < 0 || d > maxDistance {
		return Hit{}, false
	}

	return Hit{
		Point:    origin.Add(dir.MultiplyByScalar(d)),
		Normal:   n,
		Distance: d,
		Layer:    p.Layer,
	}, true
}

const epsilon = 1e-9

// Field is a height field: for every X/Z there is exactly one surface height.
// Fields only answer vertical rays, which is all that foot probes cast.
type Field struct {
	Height func(x, z float64) float64

	// Normal returns the surface normal at X/Z. If nil, it's estimated from the
	// height function by central differences.
	Normal func(x, z float64) math3d.Vector3

	Layer Layer
}

// NewStairs returns a staircase which climbs by rise every run units along +Z,
// starting at the origin. Everything behind the origin is flat at zero.
func NewStairs(rise float64, run float64) *Field {
	return &Field{
		Height: func(x, z float64) float64 {
			if z < 0 {
				return 0
			}
			return math.Floor(z/run) * rise
		},
		Normal: func(x, z float64) math3d.Vector3 {
			return math3d.Up
		},
		Layer: Ground,
	}
}

// NewWaves returns rolling ground, a sine along Z.
func NewWaves(amplitude float64, wavelength float64) *Field {
	k := (2 * math.Pi) / wavelength
	return &Field{
		Height: func(x, z float64) float64 {
			return amplitude * math.Sin(z*k)
		},
		Normal: func(x, z float64) math3d.Vector3 {
			return math3d.Vector3{X: 0, Y: 1, Z: -amplitude * k * math.Cos(z*k)}.Unit()
		},
		Layer: Ground,
	}
}

func (f *Field) Raycast(origin math3d.Vector3, dir math3d.Vector3, maxDistance float64, mask LayerMask) (Hit, bool) {
	if !mask.Has(f.Layer) {
		return Hit{}, false
	}

	if math.Abs(dir.X) > epsilon || math.Abs(dir.Z) > epsilon || dir.Y >= 0 {
		return Hit{}, false
	}

	h := f.Height(origin.X, origin.Z)
	d := origin.Y - h
	if d < 0 || d > maxDistance {
		return Hit{}, false
	}

	return Hit{
		Point:    math3d.Vector3{X: origin.X, Y: h, Z: origin.Z},
		Normal:   f.normal(origin.X, origin.Z),
		Distance: d,
		Layer:    f.Layer,
	}, true
}

func (f *Field) normal(x, z float64) math3d.Vector3 {
	if f.Normal != nil {
		return f.Normal(x, z)
	}

	const h = 0.01
	dx := (f.Height(x+h, z) - f.Height(x-h, z)) / (2 * h)
	dz := (f.Height(x, z+h) - f.Height(x, z-h)) / (2 * h)
	return math3d.Vector3{X: -dx, Y: 1, Z: -dz}.Unit()
}

// Layered combines several surfaces, and returns the nearest hit of any of them.
type Layered []Surface

func (l Layered) Raycast(origin math3d.Vector3, dir math3d.Vector3, maxDistance float64, mask LayerMask) (Hit, bool) {
	var best Hit
	found := false

	for _, s := range l {
		h, ok := s.Raycast(origin, dir, maxDistance, mask)
		if ok && (!found || h.Distance < best.Distance) {
			best = h
			found = true
		}
	}

	return best, found
}

// Platform is a flat rectangle (e.g. the top of a crate) spanning Min to Max on
// the X/Z axes at the given height. Like Field, it only answers vertical rays.
type Platform struct {
	Min    math3d.Vector3
	Max    math3d.Vector3
	Height float64
	Layer  Layer
}

func (p *Platform) Raycast(origin math3d.Vector3, dir math3d.Vector3, maxDistance float64, mask LayerMask) (Hit, bool) {
	if !mask.Has(p.Layer) {
		return Hit{}, false
	}

	if math.Abs(dir.X) > epsilon || math.Abs(dir.Z) > epsilon || dir.Y >= 0 {
		return Hit{}, false
	}

	if origin.X < p.Min.X || origin.X > p.Max.X || origin.Z < p.Min.Z || origin.Z > p.Max.Z {
		return Hit{}, false
	}

	d := origin.Y - p.Height
	if d < 0 || d > maxDistance {
		return Hit{}, false
	}

	return Hit{
		Point:    math3d.Vector3{X: origin.X, Y: p.Height, Z: origin.Z},
		Normal:   math3d.Up,
		Distance: d,
		Layer:    p.Layer,
	}, true
}
