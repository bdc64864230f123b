package watchdog

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "watchdog",
})

const (

	// The number of seconds between status reports.
	defaultInterval = 5.0

	// The most feet which may be off the ground at once. This is a biped, so
	// one of the two must always be planted.
	maxMoving = 1
)

type Foot interface {
	Name() string
	Moving() bool
}

// Watchdog checks, every frame, that no more than one foot is mid-step, and
// returns an error the moment that isn't true. Every so often it logs how many
// steps each foot has taken.
type Watchdog struct {
	feet     []Foot
	latches  []Latch
	steps    []int
	interval float64
	elapsed  float64
}

func New(interval float64, feet ...Foot) *Watchdog {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Watchdog{
		feet:     feet,
		latches:  make([]Latch, len(feet)),
		steps:    make([]int, len(feet)),
		interval: interval,
	}
}

func (w *Watchdog) Boot() error {
	if len(w.feet) == 0 {
		return fmt.Errorf("watchdog has no feet to watch")
	}

	return nil
}

func (w *Watchdog) Tick(dt float64) error {
	var moving []string

	for i, f := range w.feet {
		m := f.Moving()
		if w.latches[i].Run(m) {
			w.steps[i] += 1
		}

		if m {
			moving = append(moving, f.Name())
		}
	}

	if len(moving) > maxMoving {
		return fmt.Errorf("%d feet moving at once: %s", len(moving), strings.Join(moving, ", "))
	}

	w.elapsed += dt
	if w.NeedsReport() {
		w.Report()
	}

	return nil
}

// NeedsReport returns true if it's been a while since the last report.
func (w *Watchdog) NeedsReport() bool {
	return w.elapsed >= w.interval
}

// Report logs the step counts, and resets the report timer.
func (w *Watchdog) Report() {
	w.elapsed = 0

	fields := logrus.Fields{}
	for i, f := range w.feet {
		fields[f.Name()] = w.steps[i]
	}

	log.WithFields(fields).Info("steps")
}

// Steps returns the number of steps that the i'th foot has started.
func (w *Watchdog) Steps(i int) int {
	return w.steps[i]
}
