package math3d

import (
	"fmt"
)

// Pose is the position and heading (in degrees) of a body on the ground plane.
type Pose struct {
	Position Vector3
	Heading  float64
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, r=%+07.2f}", p.Position.X, p.Position.Y, p.Position.Z, p.Heading)
}

// Add returns the pose reached by moving by pp, which is relative to p.
func (p Pose) Add(pp Pose) Pose {
	m := Matrix44{}
	m.SetRotation(p.ea())
	return Pose{
		Position: p.Position.Add(pp.Position.MultiplyByMatrix44(m)),
		Heading:  p.Heading + pp.Heading,
	}
}

// ToWorld returns a matrix to transform a vector in the pose's coordinate space
// into the world space.
func (p Pose) ToWorld() Matrix44 {
	return *MakeMatrix44(p.Position, p.ea())
}

// ToLocal returns a matrix to transform a vector in the world space into the
// pose's coordinate space.
func (p Pose) ToLocal() Matrix44 {
	return p.ToWorld().RigidInverse()
}

func (p Pose) ea() EulerAngles {
	return *MakeSingularEulerAngle(RotationHeading, p.Heading)
}

// FootPose is what a foot target hands to the rig each frame: where the foot
// is, which way its sole faces, and the fixed local rotation applied on top.
type FootPose struct {
	Position Vector3
	Up       Vector3
	Rotation EulerAngles
}

func (fp FootPose) String() string {
	return fmt.Sprintf("FootPose{pos=%s up=%s rot=%s}", fp.Position, fp.Up, fp.Rotation)
}
