// Package sim wires a config into a running biped: the rig, its walker, the
// two feet, the watchdog and a recorder.
package sim

import (
	"context"
	"fmt"

	"github.com/adammck/footstep"
	"github.com/adammck/footstep/components/feet"
	"github.com/adammck/footstep/components/recorder"
	"github.com/adammck/footstep/components/walker"
	"github.com/adammck/footstep/components/watchdog"
	"github.com/adammck/footstep/config"
	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "sim",
})

type Simulation struct {
	Config   *config.Config
	Rig      *footstep.Rig
	Surface  terrain.Surface
	Walker   *walker.Walker
	Pair     *feet.Pair
	Watchdog *watchdog.Watchdog
	Recorder *recorder.Recorder

	observers feet.Observers
	frame     int
}

// Build creates (and boots) a simulation from the config. The recorder keeps
// at most limit samples per foot; zero keeps everything.
func Build(cfg *config.Config, limit int) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	surface, err := cfg.Surface()
	if err != nil {
		return nil, err
	}

	rig := footstep.NewRig(math3d.Pose{Position: cfg.Body.Start, Heading: cfg.Body.Heading})

	w := walker.New(rig, cfg.Body.Speed, cfg.Body.TurnRate)
	w.Distance = cfg.Body.Distance
	if cfg.Body.Clearance > 0 {
		w.Follow(surface, cfg.Body.Clearance)

		// Settle the body onto the ground before placing the feet, so that
		// their start positions are relative to where the body really is.
		w.Settle()
	}

	rec := recorder.New(limit)
	s := &Simulation{
		Config:    cfg,
		Rig:       rig,
		Surface:   surface,
		Walker:    w,
		Recorder:  rec,
		observers: feet.Observers{rec},
	}

	var steppers [2]*feet.Stepper
	for i, fc := range cfg.Feet {
		c, err := fc.Foot()
		if err != nil {
			return nil, fmt.Errorf("foot %q: %w", fc.Name, err)
		}

		start := settle(surface, c, fc.Start.MultiplyByMatrix44(rig.World()))
		f, err := feet.New(c, rig, surface, start)
		if err != nil {
			return nil, err
		}

		f.SetSink(rec)
		f.SetObserver(s)
		steppers[i] = f
	}

	pair, err := feet.NewPair(steppers[feet.Left], steppers[feet.Right])
	if err != nil {
		return nil, err
	}

	s.Pair = pair
	s.Watchdog = watchdog.New(cfg.Watchdog.Interval, pair[feet.Left], pair[feet.Right])

	// Order matters: the body moves, then the feet chase it, then the watchdog
	// checks the result, and finally the recorder's clock moves on.
	rig.Add(w)
	rig.Add(pair)
	rig.Add(s.Watchdog)
	rig.Add(rec)

	if err := rig.Boot(); err != nil {
		return nil, err
	}

	return s, nil
}

// settle drops a foot's start position onto the ground below it, if there is
// any. Otherwise the foot would hang in the air until its first step.
func settle(surface terrain.Surface, c feet.Config, pos math3d.Vector3) feet.Start {
	origin := pos.Add(math3d.Vector3{X: 0, Y: c.ProbeDistance / 2, Z: 0})
	hit, ok := surface.Raycast(origin, math3d.Down, c.ProbeDistance, c.Terrain)
	if !ok {
		return feet.Start{Position: pos, Up: math3d.Up}
	}

	return feet.Start{Position: hit.Point, Up: hit.Normal}
}

// Observe adds an observer which is told about the steps of both feet, after
// the recorder.
func (s *Simulation) Observe(o feet.Observer) {
	s.observers = append(s.observers, o)
}

func (s *Simulation) StepBegan(e feet.Event) {
	s.observers.StepBegan(e)
}

func (s *Simulation) StepLanded(e feet.Event) {
	s.observers.StepLanded(e)
}

// Frames returns the number of frames which the configured duration lasts.
func (s *Simulation) Frames() int {
	return int(s.Config.Duration/s.Config.Dt + 0.5)
}

// Frame returns the number of frames run so far.
func (s *Simulation) Frame() int {
	return s.frame
}

// Done returns true once the configured duration has been run, or a component
// asked to stop.
func (s *Simulation) Done() bool {
	return s.Rig.Shutdown || s.frame >= s.Frames()
}

// Step runs a single frame.
func (s *Simulation) Step() error {
	if err := s.Rig.Tick(s.Config.Dt); err != nil {
		return fmt.Errorf("frame %d: %w", s.frame, err)
	}

	s.frame += 1
	return nil
}

// Run steps until done, or until the context is cancelled.
func (s *Simulation) Run(ctx context.Context) error {
	log.Infof("running %d frames of %0.4fs", s.Frames(), s.Config.Dt)

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.Step(); err != nil {
			return err
		}
	}

	log.Infof("finished at %s", s.Rig.Pose)
	return nil
}
