// Package recorder keeps a history of foot poses and step events, which the
// CLI turns into tables, plots and pictures.
package recorder

import (
	"sort"

	"github.com/adammck/footstep/components/feet"
	"github.com/adammck/footstep/math3d"
)

type Sample struct {
	Time float64
	Pose math3d.FootPose
}

type Kind string

const (
	Began  Kind = "began"
	Landed Kind = "landed"
)

type Event struct {
	Time float64
	Kind Kind
	feet.Event
}

// Recorder is a pose sink and step observer. It must be added to the rig after
// the feet, so that the clock advances after the poses for a frame are in.
type Recorder struct {
	now     float64
	limit   int
	samples map[string][]Sample
	events  []Event
}

// New returns a recorder which keeps the most recent limit samples per foot.
// A limit of zero keeps everything.
func New(limit int) *Recorder {
	return &Recorder{
		limit:   limit,
		samples: map[string][]Sample{},
	}
}

func (r *Recorder) SetPose(name string, pose math3d.FootPose) {
	s := append(r.samples[name], Sample{r.now, pose})
	if r.limit > 0 && len(s) > r.limit {
		s = s[len(s)-r.limit:]
	}

	r.samples[name] = s
}

func (r *Recorder) StepBegan(e feet.Event) {
	r.events = append(r.events, Event{r.now, Began, e})
}

func (r *Recorder) StepLanded(e feet.Event) {
	r.events = append(r.events, Event{r.now, Landed, e})
}

func (r *Recorder) Boot() error {
	return nil
}

func (r *Recorder) Tick(dt float64) error {
	r.now += dt
	return nil
}

// Feet returns the names of every foot which has reported a pose, sorted.
func (r *Recorder) Feet() []string {
	names := make([]string, 0, len(r.samples))
	for n := range r.samples {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}

func (r *Recorder) Samples(name string) []Sample {
	return r.samples[name]
}

func (r *Recorder) Events() []Event {
	return r.events
}

// Heights returns the Y position of the named foot in each sample.
func (r *Recorder) Heights(name string) []float64 {
	s := r.samples[name]
	out := make([]float64, len(s))
	for i, x := range s {
		out[i] = x.Pose.Position.Y
	}

	return out
}

// Steps returns the number of steps which the named foot has begun.
func (r *Recorder) Steps(name string) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == Began && e.Foot == name {
			n += 1
		}
	}

	return n
}
