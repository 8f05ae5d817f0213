// Package particle simulates the short-lived hover particles and confetti
// drawn over both pages, plus the click ripples on the landing button.
package particle

import "image/color"

const (
	// Gravity is added to vertical velocity once per frame.
	Gravity = 0.1
	// Decay is subtracted from a hover particle's life once per frame.
	Decay = 0.02
	// ConfettiMargin lets confetti fall slightly past the bottom edge before it expires.
	ConfettiMargin = 20.0
)

// Point is a position on the viewport.
type Point struct {
	X, Y float64
}

// Viewport is the last known drawable area.
type Viewport struct {
	Width, Height float64
}

// Entity is a transient visual object advanced once per frame.
type Entity[E any] interface {
	// Advance returns the entity one frame later.
	Advance() E
	// Expired reports whether the entity should be dropped.
	Expired(vp Viewport) bool
	// Draw paints the entity on s using the current draw state.
	Draw(s Surface)
}

// Particle is a fading dot emitted when the pointer enters the button.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
	Life   float64
}

func (p Particle) Advance() Particle {
	p.VY += Gravity
	p.X += p.VX
	p.Y += p.VY
	p.Life -= Decay
	return p
}

func (p Particle) Expired(vp Viewport) bool {
	return p.Life <= 0 || p.X < 0 || p.X >= vp.Width || p.Y >= vp.Height
}

func (p Particle) Draw(s Surface) {
	s.SetAlpha(clamp01(p.Life))
	s.SetFill(p.Color)
	s.FillCircle(p.X, p.Y, p.Size)
}

// Confetti is a spinning square that falls until it leaves the bottom of the viewport.
type Confetti struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Color    color.RGBA
	Rotation float64 // degrees
	Spin     float64 // degrees per frame
}

func (c Confetti) Advance() Confetti {
	c.VY += Gravity
	c.X += c.VX
	c.Y += c.VY
	c.Rotation += c.Spin
	return c
}

// Expired ignores x; confetti drifting sideways stays alive until it falls out.
func (c Confetti) Expired(vp Viewport) bool {
	return c.Y >= vp.Height+ConfettiMargin
}

func (c Confetti) Draw(s Surface) {
	s.SetFill(c.Color)
	s.FillRotatedSquare(c.X, c.Y, c.Size/2, c.Rotation)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
