package feet

import (
	"errors"
	"fmt"

	"github.com/adammck/footstep/components/feet/gait"
	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
)

const (

	// How far below the body the probe looks for ground. Anything further down
	// than this is treated as a drop, and the foot stays where it is.
	defaultProbeDistance = 10.0

	defaultSpeed        = 1.0
	defaultStepDistance = 4.0
	defaultStepLength   = 4.0
	defaultStepHeight   = 1.0
)

// Config is fixed when the foot is created. Nothing in here changes at runtime.
type Config struct {
	Name string

	// Only surfaces on these layers are stepped on.
	Terrain terrain.LayerMask

	// How much progress is made per second. A speed of two means that each
	// step takes half a second.
	Speed float64

	// The minimum distance between the current target and the point under the
	// stance line which causes a new step.
	StepDistance float64

	// How far past the probed point the foot is placed, along the body's
	// forward axis, in the direction that the body is moving.
	StepLength float64

	// The peak height of the arc which the foot travels along.
	StepHeight float64

	// Added (in world space) to every new target.
	FootOffset math3d.Vector3

	// Rotation applied to the foot target in local space, to compensate for
	// the orientation of the foot bone in the rig.
	RotationOffset math3d.EulerAngles

	// Maximum length of the probe ray.
	ProbeDistance float64

	Profile gait.Profile
}

// DefaultConfig returns the config of a human-sized foot.
func DefaultConfig(name string) Config {
	return Config{
		Name:          name,
		Terrain:       terrain.AllLayers,
		Speed:         defaultSpeed,
		StepDistance:  defaultStepDistance,
		StepLength:    defaultStepLength,
		StepHeight:    defaultStepHeight,
		ProbeDistance: defaultProbeDistance,
		Profile:       gait.Default,
	}
}

// Validate returns an error describing everything wrong with the config, or nil
// if the foot can be created with it.
func (c Config) Validate() error {
	var errs []error

	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive, got %v", c.Speed))
	}

	if c.StepDistance < 0 {
		errs = append(errs, fmt.Errorf("step distance must not be negative, got %v", c.StepDistance))
	}

	if c.StepHeight < 0 {
		errs = append(errs, fmt.Errorf("step height must not be negative, got %v", c.StepHeight))
	}

	if c.ProbeDistance <= 0 {
		errs = append(errs, fmt.Errorf("probe distance must be positive, got %v", c.ProbeDistance))
	}

	if c.Terrain == terrain.NoLayers {
		errs = append(errs, errors.New("terrain mask is empty, so the foot can never step"))
	}

	if c.Profile == nil {
		errs = append(errs, errors.New("profile is nil"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config for foot %q: %w", c.Name, err)
	}

	return nil
}
