package gait

import (
	"math"
)

// Default is the profile used when none is configured.
var Default Profile = Sine{}

func init() {
	register(Sine{})
	register(Smooth{})
}

// Sine moves the foot linearly towards its target, and lifts it along half a
// sine wave, so it leaves and lands at ground level and peaks halfway.
type Sine struct{}

func (Sine) Name() string {
	return "sine"
}

func (Sine) Frame(p float64) Frame {
	return Frame{
		XZ: p,
		Y:  math.Sin(p * math.Pi),
	}
}

// Smooth lifts the foot like Sine, but eases the travel in and out, so the foot
// accelerates off the ground and decelerates before landing.
type Smooth struct{}

func (Smooth) Name() string {
	return "smooth"
}

func (Smooth) Frame(p float64) Frame {
	return Frame{
		XZ: 0.5 - (math.Cos(p*math.Pi) / 2),
		Y:  math.Sin(p * math.Pi),
	}
}
