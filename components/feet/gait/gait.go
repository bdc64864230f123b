package gait

import (
	"fmt"
	"sort"
)

// Frame holds the two ratios which place a foot at some point through a step.
// XZ is how far (from zero to one) the foot has travelled from its old position
// towards its new one, and Y is how high it is lifted, as a multiple of the
// step height.
type Frame struct {
	XZ float64
	Y  float64
}

type Frames []Frame

// Profile maps step progress (from zero to one) to a frame.
type Profile interface {
	Name() string
	Frame(progress float64) Frame
}

var profiles = map[string]Profile{}

func register(p Profile) {
	profiles[p.Name()] = p
}

// ByName returns the registered profile with the given name. The empty string
// is the default profile.
func ByName(name string) (Profile, error) {
	if name == "" {
		return Default, nil
	}

	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown gait profile: %q (available: %v)", name, Names())
	}

	return p, nil
}

// Names returns the names of all registered profiles, sorted.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}

// Sample precomputes n+1 evenly spaced frames of the profile, from progress
// zero to one inclusive. This is just for plotting; feet evaluate the profile
// directly, since their progress isn't quantized.
func Sample(p Profile, n int) Frames {
	if n < 1 {
		n = 1
	}

	frames := make(Frames, n+1)
	for i := 0; i <= n; i += 1 {
		frames[i] = p.Frame(float64(i) / float64(n))
	}

	return frames
}
