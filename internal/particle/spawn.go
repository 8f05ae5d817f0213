package particle

import (
	"image/color"
	"math/rand/v2"
)

// Trigger identifies the event that seeds a batch.
type Trigger int

const (
	TriggerHover Trigger = iota // pointer entered the button
	TriggerMount                // page became active
)

func (t Trigger) String() string {
	switch t {
	case TriggerHover:
		return "hover"
	case TriggerMount:
		return "mount"
	default:
		return "unknown"
	}
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min, Max float64
}

func (r Range) Random(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// Seeding ranges, in units per frame.
var (
	HoverVelocity    = Range{-2, 2}
	HoverSize        = Range{2, 5}
	ConfettiDriftX   = Range{-1, 1}
	ConfettiFall     = Range{2, 5}
	ConfettiSize     = Range{5, 15}
	ConfettiRotation = Range{0, 360}
	ConfettiSpin     = Range{-5, 5}
)

func pick(rng *rand.Rand, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{A: 255}
	}
	return palette[rng.IntN(len(palette))]
}

// HoverBurst builds n particles at origin with full life.
func HoverBurst(rng *rand.Rand, origin Point, n int, palette []color.RGBA) []Particle {
	out := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Particle{
			X:     origin.X,
			Y:     origin.Y,
			VX:    HoverVelocity.Random(rng),
			VY:    HoverVelocity.Random(rng),
			Size:  HoverSize.Random(rng),
			Color: pick(rng, palette),
			Life:  1,
		})
	}
	return out
}

// ConfettiShower builds n confetti spread across the viewport width at origin.Y.
func ConfettiShower(rng *rand.Rand, origin Point, vp Viewport, n int, palette []color.RGBA) []Confetti {
	out := make([]Confetti, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Confetti{
			X:        rng.Float64() * vp.Width,
			Y:        origin.Y,
			VX:       ConfettiDriftX.Random(rng),
			VY:       ConfettiFall.Random(rng),
			Size:     ConfettiSize.Random(rng),
			Color:    pick(rng, palette),
			Rotation: ConfettiRotation.Random(rng),
			Spin:     ConfettiSpin.Random(rng),
		})
	}
	return out
}

// Spawner maps triggers to batches using a shared random source.
type Spawner struct {
	Rng             *rand.Rand
	HoverCount      int
	ConfettiCount   int
	HoverPalette    []color.RGBA
	ConfettiPalette []color.RGBA
}

// Particles returns the hover batch for t, or nil when t does not produce particles.
func (s *Spawner) Particles(t Trigger, origin Point) []Particle {
	if t != TriggerHover {
		return nil
	}
	return HoverBurst(s.Rng, origin, s.HoverCount, s.HoverPalette)
}

// Confetti returns the mount batch for t, or nil when t does not produce confetti.
func (s *Spawner) Confetti(t Trigger, origin Point, vp Viewport) []Confetti {
	if t != TriggerMount {
		return nil
	}
	return ConfettiShower(s.Rng, origin, vp, s.ConfettiCount, s.ConfettiPalette)
}
