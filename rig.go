package footstep

import (
	"fmt"

	"github.com/adammck/footstep/math3d"
)

// Rig is the body which the feet are attached to. It owns the components, and
// ticks them once per frame in the order that they were added.
type Rig struct {
	Components []Component

	// The world pose of the center of the body. Components (e.g. the walker)
	// move the body by mutating this, and the feet read it to decide where to
	// step.
	Pose math3d.Pose

	// Elapsed simulation time, in seconds.
	Time float64

	// Components can set this to true to indicate that the simulation should
	// stop after the current frame.
	Shutdown bool
}

type Component interface {
	Boot() error
	Tick(dt float64) error
}

// NewRig creates a new Rig at the given world pose.
func NewRig(pose math3d.Pose) *Rig {
	return &Rig{
		Components: []Component{},
		Pose:       pose,
	}
}

// Add registers a component to receive ticks every frame.
func (r *Rig) Add(c Component) {
	r.Components = append(r.Components, c)
}

// Boot calls Boot on each component.
func (r *Rig) Boot() error {
	for i, c := range r.Components {
		err := c.Boot()
		if err != nil {
			return fmt.Errorf("booting component #%d (%T): %w", i, c, err)
		}
	}

	return nil
}

// Tick advances every component by dt seconds. It stops at the first component
// which returns an error, so later components don't see a broken frame.
func (r *Rig) Tick(dt float64) error {
	for _, c := range r.Components {
		err := c.Tick(dt)
		if err != nil {
			return err
		}
	}

	r.Time += dt
	return nil
}

// World returns a matrix to transform a vector in the body coordinate space
// into the world space.
func (r *Rig) World() math3d.Matrix44 {
	return r.Pose.ToWorld()
}

// Local returns a matrix to transform a vector in the world coordinate space
// into the body's space, taking into account its current position and
// rotation.
func (r *Rig) Local() math3d.Matrix44 {
	return r.Pose.ToLocal()
}

// Origin returns the world position of the center of the body.
func (r *Rig) Origin() math3d.Vector3 {
	return r.Pose.Position
}

// Right returns the body's right axis in world space.
func (r *Rig) Right() math3d.Vector3 {
	return math3d.Right.Rotate(r.World())
}

// Forward returns the body's forward axis in world space.
func (r *Rig) Forward() math3d.Vector3 {
	return math3d.Forward.Rotate(r.World())
}

// ToLocal projects a world point into the body's coordinate space.
func (r *Rig) ToLocal(v math3d.Vector3) math3d.Vector3 {
	return v.MultiplyByMatrix44(r.Local())
}
