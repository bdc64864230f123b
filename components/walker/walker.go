package walker

import (
	"github.com/adammck/footstep"
	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "walker",
})

// Walker moves the body. It stands in for whatever drives the character in a
// real game (a player, an AI, root motion), so that the feet have something to
// chase.
type Walker struct {
	rig *footstep.Rig

	// Forward speed, in units per second.
	Speed float64

	// Turn rate, in degrees per second. Positive turns right.
	TurnRate float64

	// If set, the body rides this high above whatever is under its center, so
	// that it climbs stairs and hills along with the feet.
	Ground    terrain.Surface
	Clearance float64

	// The body stops after walking this far. Zero means never stop.
	Distance float64

	walked float64
}

func New(rig *footstep.Rig, speed float64, turnRate float64) *Walker {
	return &Walker{
		rig:      rig,
		Speed:    speed,
		TurnRate: turnRate,
	}
}

// Follow makes the body ride clearance units above the surface.
func (w *Walker) Follow(ground terrain.Surface, clearance float64) {
	w.Ground = ground
	w.Clearance = clearance
}

// Walked returns the total distance moved so far.
func (w *Walker) Walked() float64 {
	return w.walked
}

func (w *Walker) Boot() error {
	w.Settle()
	log.Infof("walking at %0.2f/s, turning at %0.2f°/s from %s", w.Speed, w.TurnRate, w.rig.Pose)
	return nil
}

func (w *Walker) Tick(dt float64) error {
	step := w.Speed * dt
	if w.Distance > 0 && w.walked+step > w.Distance {
		step = w.Distance - w.walked
	}

	if step <= 0 && w.TurnRate == 0 {
		return nil
	}

	// Move in the body space, so forward is whichever way the body now faces.
	w.rig.Pose = w.rig.Pose.Add(math3d.Pose{
		Position: math3d.Vector3{X: 0, Y: 0, Z: step},
		Heading:  w.TurnRate * dt,
	})

	w.walked += step
	w.Settle()

	if w.Distance > 0 && w.walked >= w.Distance && step > 0 {
		log.Infof("walked %0.2f, stopping at %s", w.walked, w.rig.Pose)
	}

	return nil
}

// Settle lifts or drops the body to its clearance above the ground. It does
// nothing if the walker isn't following any ground.
func (w *Walker) Settle() {
	if w.Ground == nil {
		return
	}

	// Cast from well above the body, so that a step up is found even when the
	// body center is already below it.
	probe := w.Clearance * 4
	origin := w.rig.Pose.Position.Add(math3d.Vector3{X: 0, Y: probe, Z: 0})

	hit, ok := w.Ground.Raycast(origin, math3d.Down, probe*2, terrain.AllLayers)
	if !ok {
		return
	}

	w.rig.Pose.Position.Y = hit.Point.Y + w.Clearance
}
