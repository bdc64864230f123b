package feet

import (
	"errors"
	"fmt"
)

const (
	Left  = 0
	Right = 1
)

// Pair links two feet so that only one of them steps at a time. Each foot holds
// the other as its partner, which it only ever asks whether it's moving.
type Pair [2]*Stepper

// NewPair links the two feet.
func NewPair(left *Stepper, right *Stepper) (*Pair, error) {
	if left == nil || right == nil {
		return nil, errors.New("pair needs two feet")
	}

	if left == right {
		return nil, fmt.Errorf("foot %q can't be its own partner", left.Name())
	}

	left.SetPartner(right)
	right.SetPartner(left)

	return &Pair{left, right}, nil
}

// Partner returns the other foot.
func (p *Pair) Partner(i int) *Stepper {
	return p[1-i]
}

// Moving returns the number of feet which are mid-step. It's never more than
// one.
func (p *Pair) Moving() int {
	n := 0
	for _, s := range p {
		if s.Moving() {
			n += 1
		}
	}

	return n
}

func (p *Pair) Boot() error {
	return nil
}

// Tick advances both feet, left first. The right foot sees the left foot's
// state as of this frame, so if the left foot starts a step, the right waits.
func (p *Pair) Tick(dt float64) error {
	for _, s := range p {
		s.Advance(dt)
	}

	return nil
}
