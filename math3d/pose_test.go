package math3d

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAdd(t *testing.T) {
	type eg struct {
		recv Pose
		arg  Pose
		out  Pose
	}

	examples := []eg{
		{
			recv: Pose{Vector3{+0, +0, +0}, 0},
			arg:  Pose{Vector3{+0, +0, +0}, 0},
			out:  Pose{Vector3{+0, +0, +0}, 0},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, 90},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{+0, +0, -1}, 90},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, 180},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{-1, +0, +0}, 180},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, 270},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{+0, +0, +1}, 270},
		},
		{
			recv: Pose{Vector3{+9, +1, +9}, 90},
			arg:  Pose{Vector3{+1, +0, +0}, 90},
			out:  Pose{Vector3{+9, +1, +8}, 180},
		},
	}

	for i, x := range examples {
		act := x.recv.Add(x.arg)
		assert.InDelta(t, act.Position.X, x.out.Position.X, 0.01, "expected example %d:X to be %0.2f, but was %0.2f", i+1, x.out.Position.X, act.Position.X)
		assert.InDelta(t, act.Position.Y, x.out.Position.Y, 0.01, "expected example %d:Y to be %0.2f, but was %0.2f", i+1, x.out.Position.Y, act.Position.Y)
		assert.InDelta(t, act.Position.Z, x.out.Position.Z, 0.01, "expected example %d:Z to be %0.2f, but was %0.2f", i+1, x.out.Position.Z, act.Position.Z)
		assert.InDelta(t, act.Heading, x.out.Heading, 0.01, "expected example %d:H to be %0.2f, but was %0.2f", i+1, x.out.Heading, act.Heading)
	}
}

func TestToLocal(t *testing.T) {
	type eg struct {
		pose Pose
		vec  Vector3
		exp  Vector3
	}

	examples := []eg{
		{Pose{Vector3{0, 0, 0}, 0}, Vector3{10, 20, 30}, Vector3{10, 20, 30}},
		{Pose{Vector3{0, 0, 10}, 0}, Vector3{10, 20, 30}, Vector3{10, 20, 20}},
		{Pose{Vector3{0, 0, 30}, 0}, Vector3{10, 20, 30}, Vector3{10, 20, 0}},
		{Pose{Vector3{0, 0, 0}, 90}, Vector3{1, 0, 0}, Vector3{0, 0, 1}},
	}

	for i, x := range examples {
		act := x.vec.MultiplyByMatrix44(x.pose.ToLocal())
		if act.Distance(x.exp) > 0.000001 {
			t.Errorf("example #%d: got %s, expected: %s", i+1, act, x.exp)
		}
	}
}

func TestToWorldRoundTrip(t *testing.T) {
	p := Pose{Vector3{3, 1, -2}, 33}
	v := Vector3{1, 2, 3}
	back := v.MultiplyByMatrix44(p.ToWorld()).MultiplyByMatrix44(p.ToLocal())
	assert.InDelta(t, 0, back.Distance(v), 0.000001)
}
