package terrain

import (
	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{
	"pkg": "fake/terrain",
})

// FakeSurface returns the same hit for every ray, or nothing at all. It records
// the rays which it was asked about.
type FakeSurface struct {
	Hit  terrain.Hit
	Miss bool
	Rays []Ray
}

type Ray struct {
	Origin      math3d.Vector3
	Dir         math3d.Vector3
	MaxDistance float64
	Mask        terrain.LayerMask
}

// New returns a surface which always hits at the given point, facing up.
func New(point math3d.Vector3) *FakeSurface {
	return &FakeSurface{
		Hit: terrain.Hit{
			Point:  point,
			Normal: math3d.Up,
			Layer:  terrain.Ground,
		},
	}
}

// NewMissing returns a surface which is never hit.
func NewMissing() *FakeSurface {
	return &FakeSurface{Miss: true}
}

func (s *FakeSurface) Raycast(origin math3d.Vector3, dir math3d.Vector3, maxDistance float64, mask terrain.LayerMask) (terrain.Hit, bool) {
	s.Rays = append(s.Rays, Ray{origin, dir, maxDistance, mask})
	logger.Debugf("raycast from %v", origin)

	if s.Miss {
		return terrain.Hit{}, false
	}

	return s.Hit, true
}
