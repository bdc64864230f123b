package walker

import (
	"testing"

	"github.com/adammck/footstep"
	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkForwards(t *testing.T) {
	rig := footstep.NewRig(math3d.Pose{})
	w := New(rig, 2, 0)
	require.NoError(t, w.Boot())

	for i := 0; i < 10; i += 1 {
		require.NoError(t, w.Tick(0.25))
	}

	assert.InDelta(t, 5, rig.Pose.Position.Z, 1e-9)
	assert.InDelta(t, 0, rig.Pose.Position.X, 1e-9)
	assert.InDelta(t, 5, w.Walked(), 1e-9)
}

func TestTurn(t *testing.T) {
	rig := footstep.NewRig(math3d.Pose{})
	w := New(rig, 0, 90)
	require.NoError(t, w.Tick(1))

	assert.InDelta(t, 90, rig.Pose.Heading, 1e-9)
	assert.InDelta(t, 0, rig.Forward().Distance(math3d.Vector3{X: 1}), 1e-9)
}

func TestWalkAfterTurning(t *testing.T) {
	rig := footstep.NewRig(math3d.Pose{Heading: 90})
	w := New(rig, 1, 0)
	require.NoError(t, w.Tick(3))
	assert.InDelta(t, 3, rig.Pose.Position.X, 1e-9)
	assert.InDelta(t, 0, rig.Pose.Position.Z, 1e-9)
}

func TestStopsAfterDistance(t *testing.T) {
	rig := footstep.NewRig(math3d.Pose{})
	w := New(rig, 1, 0)
	w.Distance = 2.5

	for i := 0; i < 10; i += 1 {
		require.NoError(t, w.Tick(1))
	}

	assert.InDelta(t, 2.5, rig.Pose.Position.Z, 1e-9)
	assert.InDelta(t, 2.5, w.Walked(), 1e-9)
}

func TestFollowsGround(t *testing.T) {
	rig := footstep.NewRig(math3d.Pose{Position: math3d.Vector3{Y: 1}})
	w := New(rig, 1, 0)
	w.Follow(terrain.NewStairs(0.25, 1), 1)
	require.NoError(t, w.Boot())
	assert.InDelta(t, 1, rig.Pose.Position.Y, 1e-9)

	for i := 0; i < 3; i += 1 {
		require.NoError(t, w.Tick(1))
	}

	// Three stairs up.
	assert.InDelta(t, 1.75, rig.Pose.Position.Y, 1e-9)
}
