package feet

import (
	"errors"

	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
	"github.com/adammck/footstep/utils"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "feet",
})

// Body is the thing that the feet carry around. Feet only read from it.
type Body interface {
	Origin() math3d.Vector3
	Right() math3d.Vector3
	Forward() math3d.Vector3

	// ToLocal projects a world point into the body's coordinate space, where
	// +Z is forwards.
	ToLocal(math3d.Vector3) math3d.Vector3
}

// Partner is the other foot of a pair.
type Partner interface {
	Moving() bool
}

// PoseSink receives the foot target every frame. This is the IK rig.
type PoseSink interface {
	SetPose(name string, pose math3d.FootPose)
}

// State is everything about a foot which changes at runtime.
type State struct {

	// Lateral distance (along the body's right axis) from the center of the
	// body to the start of the probe ray.
	StanceOffset float64

	OldPosition     math3d.Vector3
	NewPosition     math3d.Vector3
	CurrentPosition math3d.Vector3

	OldNormal     math3d.Vector3
	NewNormal     math3d.Vector3
	CurrentNormal math3d.Vector3

	// How far through the current step the foot is. One or more means that the
	// foot is planted.
	Progress float64
}

// Moving returns true if the foot is mid-step.
func (st State) Moving() bool {
	return st.Progress < 1
}

// Start is where a foot is when it's created.
type Start struct {
	Position math3d.Vector3
	Up       math3d.Vector3
}

type Stepper struct {
	cfg     Config
	body    Body
	surface terrain.Surface

	partner  Partner
	sink     PoseSink
	observer Observer

	state State
}

// New creates a planted foot at the given start position.
func New(cfg Config, body Body, surface terrain.Surface, start Start) (*Stepper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if body == nil {
		return nil, errors.New("foot needs a body")
	}

	if surface == nil {
		return nil, errors.New("foot needs a surface to stand on")
	}

	up := start.Up
	if up.Zero() {
		up = math3d.Up
	}

	s := &Stepper{
		cfg:     cfg,
		body:    body,
		surface: surface,
	}

	s.state = State{
		StanceOffset:    body.ToLocal(start.Position).X,
		OldPosition:     start.Position,
		NewPosition:     start.Position,
		CurrentPosition: start.Position,
		OldNormal:       up,
		NewNormal:       up,
		CurrentNormal:   up,
		Progress:        1,
	}

	return s, nil
}

func (s *Stepper) Name() string {
	return s.cfg.Name
}

func (s *Stepper) Config() Config {
	return s.cfg
}

// State returns a copy of the runtime state.
func (s *Stepper) State() State {
	return s.state
}

// Restore replaces the runtime state. This is mostly for tests, which want to
// start from some exact point mid-walk.
func (s *Stepper) Restore(st State) {
	s.state = st
}

// SetPartner sets the foot which must be planted before this one can step. May
// be nil, in which case the foot steps whenever it likes.
func (s *Stepper) SetPartner(p Partner) {
	s.partner = p
}

// SetSink sets where the pose is written every frame. May be nil.
func (s *Stepper) SetSink(sink PoseSink) {
	s.sink = sink
}

// SetObserver sets who is told when steps begin and end. May be nil.
func (s *Stepper) SetObserver(o Observer) {
	s.observer = o
}

// Moving returns true if the foot is mid-step. This is what the partner foot
// checks before stepping.
func (s *Stepper) Moving() bool {
	return s.state.Moving()
}

// Pose returns the foot target as of the last frame.
func (s *Stepper) Pose() math3d.FootPose {
	return math3d.FootPose{
		Position: s.state.CurrentPosition,
		Up:       s.state.CurrentNormal.Unit(),
		Rotation: s.cfg.RotationOffset,
	}
}

func (s *Stepper) Boot() error {
	return nil
}

// Tick advances the foot. A foot can't fail, so this never returns an error.
func (s *Stepper) Tick(dt float64) error {
	s.Advance(dt)
	return nil
}

// Advance runs a single frame of dt seconds: probe the ground under the body,
// maybe start a step, then move the foot along the current step (if any).
func (s *Stepper) Advance(dt float64) {
	if hit, ok := s.Probe(); ok && s.shouldStep(hit) {
		s.beginStep(hit)
	}

	s.blend(dt)

	if s.sink != nil {
		s.sink.SetPose(s.cfg.Name, s.Pose())
	}
}

// Probe casts a ray straight down (in world space, regardless of how the body
// is tilted) from the foot's stance line, and returns the terrain under it.
func (s *Stepper) Probe() (terrain.Hit, bool) {
	origin := s.body.Origin().Add(s.body.Right().MultiplyByScalar(s.state.StanceOffset))
	return s.surface.Raycast(origin, math3d.Down, s.cfg.ProbeDistance, s.cfg.Terrain)
}

func (s *Stepper) partnerMoving() bool {
	return s.partner != nil && s.partner.Moving()
}

// shouldStep returns true if the foot should start stepping towards the hit.
// Steps are never queued: if the partner is busy, this is checked again next
// frame.
func (s *Stepper) shouldStep(hit terrain.Hit) bool {
	if s.state.NewPosition.Distance(hit.Point) <= s.cfg.StepDistance {
		return false
	}

	if s.state.Moving() {
		return false
	}

	if s.partnerMoving() {
		log.Debugf("%s: waiting for partner", s.cfg.Name)
		return false
	}

	return true
}

// direction returns +1 if the hit is further forward (in the body space) than
// the current target, otherwise -1. Ties go backwards.
func (s *Stepper) direction(hit terrain.Hit) float64 {
	if s.body.ToLocal(hit.Point).Z > s.body.ToLocal(s.state.NewPosition).Z {
		return 1
	}

	return -1
}

func (s *Stepper) beginStep(hit terrain.Hit) {
	from := s.state.NewPosition
	overshoot := s.body.Forward().MultiplyByScalar(s.cfg.StepLength * s.direction(hit))

	s.state.Progress = 0
	s.state.NewPosition = hit.Point.Add(overshoot).Add(s.cfg.FootOffset)
	s.state.NewNormal = hit.Normal

	log.Debugf("%s: stepping from %v to %v", s.cfg.Name, from, s.state.NewPosition)

	if s.observer != nil {
		s.observer.StepBegan(Event{
			Foot: s.cfg.Name,
			From: from,
			To:   s.state.NewPosition,
		})
	}
}

// blend moves the foot along the arc from the old position to the new one, or
// commits the new position if the foot is planted.
func (s *Stepper) blend(dt float64) {
	st := &s.state

	if !st.Moving() {
		st.OldPosition = st.NewPosition
		st.OldNormal = st.NewNormal
		st.CurrentPosition = st.NewPosition
		st.CurrentNormal = st.NewNormal
		return
	}

	f := s.cfg.Profile.Frame(utils.Clamp(st.Progress, 0, 1))

	pos := math3d.Lerp(st.OldPosition, st.NewPosition, f.XZ)
	pos.Y += f.Y * s.cfg.StepHeight

	st.CurrentPosition = pos
	st.CurrentNormal = math3d.Lerp(st.OldNormal, st.NewNormal, f.XZ)
	st.Progress += dt * s.cfg.Speed

	if !st.Moving() {
		s.land()
	}
}

// land finishes the current step. The foot snaps exactly onto its target, so
// the next step starts from where this one ended.
func (s *Stepper) land() {
	st := &s.state
	from := st.OldPosition
	st.OldPosition = st.NewPosition
	st.OldNormal = st.NewNormal
	st.CurrentPosition = st.NewPosition
	st.CurrentNormal = st.NewNormal

	log.Debugf("%s: landed at %v", s.cfg.Name, st.NewPosition)

	if s.observer != nil {
		s.observer.StepLanded(Event{
			Foot: s.cfg.Name,
			From: from,
			To:   st.NewPosition,
		})
	}
}
