// Package config loads window, seeding, timing and audio settings.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	// Button dimensions
	ButtonWidth  = 200
	ButtonHeight = 56

	SmallButtonWidth  = 140
	SmallButtonHeight = 44

	// Visualization parameters
	SparkleCount    = 20
	FloatOrbCount   = 8
	GlowOrbCount    = 6
	HeartCount      = 30
	SurpriseOrbs    = 8
	RotationSpeed   = 0.02
	ColorShiftSpeed = 0.01
)

// Config holds every tunable of the two pages.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Landing  LandingConfig  `yaml:"landing"`
	Surprise SurpriseConfig `yaml:"surprise"`
	Audio    AudioConfig    `yaml:"audio"`

	Derived DerivedConfig `yaml:"-"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LandingConfig struct {
	HoverBurst     int           `yaml:"hover_burst"`      // particles per hover enter
	ClicksToReveal int           `yaml:"clicks_to_reveal"` // clicks before navigating
	RevealDelay    time.Duration `yaml:"reveal_delay"`
	RippleTTL      time.Duration `yaml:"ripple_ttl"`
	Palette        []string      `yaml:"palette"`
}

type SurpriseConfig struct {
	Confetti      int      `yaml:"confetti"`
	ConfettiStart float64  `yaml:"confetti_start"` // y of the first confetti row
	Palette       []string `yaml:"palette"`
}

type AudioConfig struct {
	File       string  `yaml:"file"`   // empty plays the generated melody
	Melody     bool    `yaml:"melody"` // play the melody when no file is set
	Tempo      float64 `yaml:"tempo"`  // melody beats per minute
	Volume     float64 `yaml:"volume"` // beep effects.Volume base-2 exponent
	RingSize   int     `yaml:"ring_size"`
	Smoothing  float64 `yaml:"smoothing"`
	SampleRate int     `yaml:"sample_rate"` // melody sample rate
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	LandingPalette  []color.RGBA
	SurprisePalette []color.RGBA
}

// Load reads the embedded defaults and overlays the YAML file at path.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the pages cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Landing.HoverBurst < 0 {
		errs = append(errs, fmt.Errorf("landing.hover_burst %d is negative", c.Landing.HoverBurst))
	}
	if c.Landing.ClicksToReveal <= 0 {
		errs = append(errs, fmt.Errorf("landing.clicks_to_reveal %d must be positive", c.Landing.ClicksToReveal))
	}
	if c.Landing.RippleTTL <= 0 {
		errs = append(errs, fmt.Errorf("landing.ripple_ttl %v must be positive", c.Landing.RippleTTL))
	}
	if c.Surprise.Confetti < 0 {
		errs = append(errs, fmt.Errorf("surprise.confetti %d is negative", c.Surprise.Confetti))
	}
	if c.Audio.RingSize <= 0 {
		errs = append(errs, fmt.Errorf("audio.ring_size %d must be positive", c.Audio.RingSize))
	}
	if c.Audio.Smoothing < 0 || c.Audio.Smoothing >= 1 {
		errs = append(errs, fmt.Errorf("audio.smoothing %v must be in [0, 1)", c.Audio.Smoothing))
	}
	if c.Audio.Melody && (c.Audio.Tempo <= 0 || c.Audio.SampleRate <= 0) {
		errs = append(errs, errors.New("audio.tempo and audio.sample_rate must be positive when melody is enabled"))
	}
	return errors.Join(errs...)
}

func (c *Config) computeDerived() error {
	var err error
	if c.Derived.LandingPalette, err = ParsePalette(c.Landing.Palette); err != nil {
		return fmt.Errorf("landing.palette: %w", err)
	}
	if c.Derived.SurprisePalette, err = ParsePalette(c.Surprise.Palette); err != nil {
		return fmt.Errorf("surprise.palette: %w", err)
	}
	return nil
}

// WriteYAML saves the effective configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ParsePalette parses "#rrggbb" (or "rrggbb") colours.
func ParsePalette(hex []string) ([]color.RGBA, error) {
	if len(hex) == 0 {
		return nil, errors.New("palette is empty")
	}
	out := make([]color.RGBA, 0, len(hex))
	for _, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
