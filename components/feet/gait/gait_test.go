package gait

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allProfiles(t *testing.T) []Profile {
	var ps []Profile
	for _, n := range Names() {
		p, err := ByName(n)
		require.NoError(t, err)
		ps = append(ps, p)
	}

	return ps
}

func TestLiftIsZeroAtEndpoints(t *testing.T) {
	for _, p := range allProfiles(t) {
		assert.InDelta(t, 0, p.Frame(0).Y, 1e-9, p.Name())
		assert.InDelta(t, 0, p.Frame(1).Y, 1e-9, p.Name())
	}
}

func TestLiftPeaksAtHalfway(t *testing.T) {
	for _, p := range allProfiles(t) {
		assert.Equal(t, 1.0, p.Frame(0.5).Y, p.Name())
	}
}

func TestLiftIsSymmetric(t *testing.T) {
	for _, p := range allProfiles(t) {
		for _, x := range []float64{0.05, 0.1, 0.25, 0.3, 0.45} {
			assert.InDelta(t, p.Frame(x).Y, p.Frame(1-x).Y, 1e-9, "%s at %v", p.Name(), x)
		}
	}
}

func TestTravelEndpoints(t *testing.T) {
	for _, p := range allProfiles(t) {
		assert.InDelta(t, 0, p.Frame(0).XZ, 1e-9, p.Name())
		assert.InDelta(t, 1, p.Frame(1).XZ, 1e-9, p.Name())
		assert.InDelta(t, 0.5, p.Frame(0.5).XZ, 1e-9, p.Name())
	}
}

func TestTravelIsMonotonic(t *testing.T) {
	for _, p := range allProfiles(t) {
		frames := Sample(p, 100)
		for i := 1; i < len(frames); i += 1 {
			assert.True(t, frames[i].XZ >= frames[i-1].XZ, "%s frame %d", p.Name(), i)
		}
	}
}

func TestByName(t *testing.T) {
	p, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, Default, p)

	p, err = ByName("smooth")
	require.NoError(t, err)
	assert.Equal(t, "smooth", p.Name())

	_, err = ByName("bogus")
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	frames := Sample(Sine{}, 4)
	require.Len(t, frames, 5)
	assert.Equal(t, 0.25, frames[1].XZ)
	assert.Equal(t, 1.0, frames[2].Y)
	assert.Len(t, Sample(Sine{}, 0), 2)
}
