package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adammck/footstep/components/feet"
	"github.com/adammck/footstep/components/feet/gait"
	"github.com/adammck/footstep/math3d"
	"github.com/adammck/footstep/terrain"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 1.0 / 60
	DefaultDuration = 10.0
	DefaultLogLevel = "info"

	defaultBodySpeed     = 1.5
	defaultBodyClearance = 1.0
	defaultStanceWidth   = 0.25
	defaultReport        = 5.0
)

type Config struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	LogLevel string  `yaml:"log_level"`

	Body     BodyConfig      `yaml:"body"`
	Terrain  []TerrainConfig `yaml:"terrain"`
	Feet     []FootConfig    `yaml:"feet"`
	Watchdog WatchdogConfig  `yaml:"watchdog"`
}

type BodyConfig struct {
	Start    math3d.Vector3 `yaml:"start"`
	Heading  float64        `yaml:"heading"`
	Speed    float64        `yaml:"speed"`
	TurnRate float64        `yaml:"turn_rate"`
	Distance float64        `yaml:"distance"`

	// Height of the body above the ground. Zero means the body doesn't follow
	// the ground at all, and stays at its start height.
	Clearance float64 `yaml:"clearance"`
}

// TerrainConfig describes one surface. Which fields matter depends on Kind.
type TerrainConfig struct {
	Kind       string         `yaml:"kind"`
	Layer      terrain.Layer  `yaml:"layer"`
	Height     float64        `yaml:"height"`
	Grade      float64        `yaml:"grade"`
	Rise       float64        `yaml:"rise"`
	Run        float64        `yaml:"run"`
	Amplitude  float64        `yaml:"amplitude"`
	Wavelength float64        `yaml:"wavelength"`
	Min        math3d.Vector3 `yaml:"min"`
	Max        math3d.Vector3 `yaml:"max"`
}

// Degrees is a rotation as written in config files.
type Degrees struct {
	Heading float64 `yaml:"heading"`
	Pitch   float64 `yaml:"pitch"`
	Bank    float64 `yaml:"bank"`
}

type FootConfig struct {
	Name string `yaml:"name"`

	// Start position, relative to the body start. The X component becomes the
	// stance offset.
	Start math3d.Vector3 `yaml:"start"`

	// Which terrain layers the foot steps on. Empty means all.
	Layers []terrain.Layer `yaml:"layers,omitempty"`

	Speed          float64        `yaml:"speed"`
	StepDistance   float64        `yaml:"step_distance"`
	StepLength     float64        `yaml:"step_length"`
	StepHeight     float64        `yaml:"step_height"`
	ProbeDistance  float64        `yaml:"probe_distance"`
	FootOffset     math3d.Vector3 `yaml:"foot_offset"`
	RotationOffset Degrees        `yaml:"rotation_offset"`
	Profile        string         `yaml:"profile"`
}

type WatchdogConfig struct {
	Interval float64 `yaml:"interval"`
}

// DefaultConfig returns a biped walking forwards across flat ground.
func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		LogLevel: DefaultLogLevel,
		Body: BodyConfig{
			Start:     math3d.Vector3{X: 0, Y: defaultBodyClearance, Z: 0},
			Speed:     defaultBodySpeed,
			Clearance: defaultBodyClearance,
		},
		Terrain: []TerrainConfig{
			{Kind: "flat"},
		},
		Feet: []FootConfig{
			DefaultFoot("left", -defaultStanceWidth),
			DefaultFoot("right", defaultStanceWidth),
		},
		Watchdog: WatchdogConfig{
			Interval: defaultReport,
		},
	}
}

// DefaultFoot returns a foot whose stride suits the default body speed.
func DefaultFoot(name string, stance float64) FootConfig {
	return FootConfig{
		Name:          name,
		Start:         math3d.Vector3{X: stance, Y: -defaultBodyClearance, Z: 0},
		Speed:         3,
		StepDistance:  0.8,
		StepLength:    0.3,
		StepHeight:    0.25,
		ProbeDistance: 10,
	}
}

// Load reads a YAML config file. Anything not set in the file keeps its
// default, and then environment variables override the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Parse is Load without the file.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.fillDefaults()

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Env holds the settings which can be overridden from the environment, which
// is handy for sweeping a parameter from a shell loop.
type Env struct {
	Dt       float64 `env:"FOOTSTEP_DT"`
	Duration float64 `env:"FOOTSTEP_DURATION"`
	LogLevel string  `env:"FOOTSTEP_LOG_LEVEL"`
	Speed    float64 `env:"FOOTSTEP_SPEED"`
	TurnRate float64 `env:"FOOTSTEP_TURN_RATE"`
}

// ApplyEnv overrides fields from FOOTSTEP_* environment variables. Variables
// which aren't set leave the config alone.
func (c *Config) ApplyEnv() error {
	e := Env{
		Dt:       c.Dt,
		Duration: c.Duration,
		LogLevel: c.LogLevel,
		Speed:    c.Body.Speed,
		TurnRate: c.Body.TurnRate,
	}

	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parsing env: %w", err)
	}

	c.Dt = e.Dt
	c.Duration = e.Duration
	c.LogLevel = e.LogLevel
	c.Body.Speed = e.Speed
	c.Body.TurnRate = e.TurnRate
	return nil
}

// fillDefaults sets foot fields which the file left out to their defaults. Only
// fields where zero is useless are filled; a zero step length or height is a
// perfectly good (if odd) gait.
func (c *Config) fillDefaults() {
	for i := range c.Feet {
		f := &c.Feet[i]
		d := DefaultFoot(f.Name, 0)

		if f.Speed == 0 {
			f.Speed = d.Speed
		}

		if f.StepDistance == 0 {
			f.StepDistance = d.StepDistance
		}

		if f.ProbeDistance == 0 {
			f.ProbeDistance = d.ProbeDistance
		}
	}
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate returns everything wrong with the config, or nil.
func (c *Config) Validate() error {
	var errs []error

	if c.Dt <= 0 {
		errs = append(errs, fmt.Errorf("dt must be positive, got %v", c.Dt))
	}

	if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %v", c.Duration))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if c.Body.Speed < 0 {
		errs = append(errs, fmt.Errorf("body speed must not be negative, got %v", c.Body.Speed))
	}

	if len(c.Terrain) == 0 {
		errs = append(errs, errors.New("no terrain"))
	}

	for i, t := range c.Terrain {
		if _, err := t.Surface(); err != nil {
			errs = append(errs, fmt.Errorf("terrain #%d: %w", i, err))
		}
	}

	if len(c.Feet) != 2 {
		errs = append(errs, fmt.Errorf("need exactly two feet, got %d", len(c.Feet)))
	}

	for i, f := range c.Feet {
		fc, err := f.Foot()
		if err == nil {
			err = fc.Validate()
		}

		if err != nil {
			errs = append(errs, fmt.Errorf("foot #%d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Surface builds the terrain described by the config.
func (c *Config) Surface() (terrain.Surface, error) {
	l := terrain.Layered{}
	for i, t := range c.Terrain {
		s, err := t.Surface()
		if err != nil {
			return nil, fmt.Errorf("terrain #%d: %w", i, err)
		}

		l = append(l, s)
	}

	if len(l) == 1 {
		return l[0], nil
	}

	return l, nil
}

func (t TerrainConfig) Surface() (terrain.Surface, error) {
	switch t.Kind {
	case "flat":
		p := terrain.NewFlat(t.Height)
		p.Layer = t.Layer
		return p, nil

	case "slope":
		p := terrain.NewSlope(t.Height, t.Grade)
		p.Layer = t.Layer
		return p, nil

	case "stairs":
		if t.Run <= 0 {
			return nil, fmt.Errorf("stairs need a positive run, got %v", t.Run)
		}
		f := terrain.NewStairs(t.Rise, t.Run)
		f.Layer = t.Layer
		return f, nil

	case "waves":
		if t.Wavelength <= 0 {
			return nil, fmt.Errorf("waves need a positive wavelength, got %v", t.Wavelength)
		}
		f := terrain.NewWaves(t.Amplitude, t.Wavelength)
		f.Layer = t.Layer
		return f, nil

	case "platform":
		return &terrain.Platform{Min: t.Min, Max: t.Max, Height: t.Height, Layer: t.Layer}, nil

	default:
		return nil, fmt.Errorf("unknown terrain kind: %q", t.Kind)
	}
}

// Foot converts the YAML form into the config which feet are built with.
func (f FootConfig) Foot() (feet.Config, error) {
	p, err := gait.ByName(f.Profile)
	if err != nil {
		return feet.Config{}, err
	}

	mask := terrain.AllLayers
	if len(f.Layers) > 0 {
		mask = terrain.Mask(f.Layers...)
	}

	return feet.Config{
		Name:           f.Name,
		Terrain:        mask,
		Speed:          f.Speed,
		StepDistance:   f.StepDistance,
		StepLength:     f.StepLength,
		StepHeight:     f.StepHeight,
		FootOffset:     f.FootOffset,
		RotationOffset: math3d.Euler(f.RotationOffset.Heading, f.RotationOffset.Pitch, f.RotationOffset.Bank),
		ProbeDistance:  f.ProbeDistance,
		Profile:        p,
	}, nil
}
