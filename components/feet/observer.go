package feet

import (
	"github.com/adammck/footstep/math3d"
)

// Event describes the start or end of a single step.
type Event struct {
	Foot string
	From math3d.Vector3
	To   math3d.Vector3
}

// Observer is told about step edges. It's called synchronously from Advance,
// so it mustn't do anything slow.
type Observer interface {
	StepBegan(Event)
	StepLanded(Event)
}

// Observers fans events out to several observers, in order.
type Observers []Observer

func (o Observers) StepBegan(e Event) {
	for _, ob := range o {
		ob.StepBegan(e)
	}
}

func (o Observers) StepLanded(e Event) {
	for _, ob := range o {
		ob.StepLanded(e)
	}
}
