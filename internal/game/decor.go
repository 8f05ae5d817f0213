package game

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/birthday-surprise/internal/particle"
)

var (
	amber = color.RGBA{R: 0xd9, G: 0x77, B: 0x06, A: 0xff}
	rust  = color.RGBA{R: 0xea, G: 0x58, B: 0x0c, A: 0xff}
	tan   = color.RGBA{R: 0x8b, G: 0x6f, B: 0x5e, A: 0xff}
	cream = color.RGBA{R: 0xf5, G: 0xf1, B: 0xe8, A: 0xff}
)

// orb is a soft blob drifting around a fixed anchor. Positions are fractions
// of the viewport so orbs follow resizes.
type orb struct {
	x, y   float64
	radius float64
	period float64 // seconds per drift cycle
	delay  float64
}

func newOrbs(rng *rand.Rand, n int, minR, spread, minPeriod, periodSpread float64) []orb {
	out := make([]orb, n)
	for i := range out {
		out[i] = orb{
			x:      rng.Float64(),
			y:      rng.Float64(),
			radius: minR + rng.Float64()*spread,
			period: minPeriod + rng.Float64()*periodSpread,
			delay:  rng.Float64() * 5,
		}
	}
	return out
}

func (o orb) draw(dst *ebiten.Image, vp particle.Viewport, now float64, c color.RGBA, alpha float64) {
	phase := 2 * math.Pi * (now + o.delay) / o.period
	x := o.x*vp.Width + math.Sin(phase)*30
	y := o.y*vp.Height + math.Cos(phase)*20
	// Concentric rings fake a radial gradient.
	for i := 4; i >= 1; i-- {
		r := o.radius * float64(i) / 4
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), withAlpha(c, alpha/4), true)
	}
}

// sparkle is a tiny twinkling dot.
type sparkle struct {
	x, y    float64
	twinkle float64
	drift   float64
	delay   float64
}

func newSparkles(rng *rand.Rand, n int) []sparkle {
	out := make([]sparkle, n)
	for i := range out {
		out[i] = sparkle{
			x:       rng.Float64(),
			y:       rng.Float64(),
			twinkle: 2 + rng.Float64()*2,
			drift:   10 + rng.Float64()*10,
			delay:   rng.Float64() * 2,
		}
	}
	return out
}

func (s sparkle) draw(dst *ebiten.Image, vp particle.Viewport, now float64) {
	t := now + s.delay
	alpha := 0.5 + 0.5*math.Sin(2*math.Pi*t/s.twinkle)
	x := s.x*vp.Width + math.Sin(2*math.Pi*t/s.drift)*20
	y := s.y*vp.Height + math.Cos(2*math.Pi*t/s.drift)*20
	vector.DrawFilledCircle(dst, float32(x), float32(y), 4, withAlpha(amber, alpha*0.3), true)
	vector.DrawFilledCircle(dst, float32(x), float32(y), 1.5, withAlpha(amber, alpha), true)
}

// heart floats up and down while pulsing.
type heart struct {
	x, y   float64
	float  float64
	pulse  float64
	delay  float64
	colour color.RGBA
}

func newHearts(rng *rand.Rand, n int) []heart {
	colours := []color.RGBA{
		{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff},
		{R: 0xf4, G: 0x72, B: 0xb6, A: 0xff},
		amber,
		rust,
	}
	out := make([]heart, n)
	for i := range out {
		out[i] = heart{
			x:      rng.Float64(),
			y:      rng.Float64(),
			float:  3 + rng.Float64()*3,
			pulse:  2 + rng.Float64()*2,
			delay:  rng.Float64() * 2,
			colour: colours[rng.IntN(len(colours))],
		}
	}
	return out
}

func (h heart) draw(dst *ebiten.Image, vp particle.Viewport, now float64) {
	t := now + h.delay
	y := h.y*vp.Height + math.Sin(2*math.Pi*t/h.float)*15
	size := 8 * (1 + 0.15*math.Sin(2*math.Pi*t/h.pulse))
	drawHeart(dst, h.x*vp.Width, y, size, h.colour, 0.6)
}

// drawSpinningRing strokes a circle with a dot orbiting its rim.
func drawSpinningRing(dst *ebiten.Image, x, y, r, speed, now float64, c color.RGBA, alpha float64) {
	vector.StrokeCircle(dst, float32(x), float32(y), float32(r), 4, withAlpha(c, alpha), true)
	a := now * 2 * math.Pi / speed
	dx, dy := math.Cos(a)*r, math.Sin(a)*r
	vector.DrawFilledCircle(dst, float32(x+dx), float32(y+dy), 5, withAlpha(c, alpha*2), true)
}

// drawCorners draws the slowly spinning rings in the top-left and bottom-right corners.
func drawCorners(dst *ebiten.Image, vp particle.Viewport, now float64) {
	drawSpinningRing(dst, 72, 72, 64, 20, now, amber, 0.1)
	drawSpinningRing(dst, 96, 96, 32, -15, now, rust, 0.1)
	drawSpinningRing(dst, vp.Width-72, vp.Height-72, 64, -25, now, amber, 0.1)
	drawSpinningRing(dst, vp.Width-96, vp.Height-96, 32, 18, now, rust, 0.1)
}

// drawShapes draws the six outlined geometric shapes spread across the page.
func drawShapes(dst *ebiten.Image, vp particle.Viewport, now float64) {
	colours := []color.RGBA{amber, rust, {R: 0xf9, G: 0x73, B: 0x16, A: 0xff}}
	for i := 0; i < 6; i++ {
		x := vp.Width * (0.2 + float64(i)*0.15)
		y := vp.Height * (0.1 + float64(i%3)*0.3)
		deg := float64(i)*30 + now*360/(15+float64(i)*3)
		c := withAlpha(colours[i%3], 0.2)
		if i%2 == 0 {
			vector.StrokeCircle(dst, float32(x), float32(y), 30, 3, c, true)
			continue
		}
		pts := squareCorners(x, y, 30, deg)
		for j := range pts {
			a, b := pts[j], pts[(j+1)%len(pts)]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, c, true)
		}
	}
}

// mascot is a round party creature that bounces harder when the music is loud.
type mascot struct {
	x     float64 // fraction of viewport width
	body  color.RGBA
	phase float64
}

var mascots = []mascot{
	{x: 0.15, body: amber, phase: 0},
	{x: 0.85, body: rust, phase: math.Pi / 2},
}

func (m mascot) draw(dst *ebiten.Image, vp particle.Viewport, now, level, colorPhase float64) {
	const r = 40.0
	bounce := math.Abs(math.Sin(now*4+m.phase)) * (10 + 40*clamp01(level))
	x := m.x * vp.Width
	y := vp.Height*0.7 - bounce
	squash := 1 + 0.08*math.Sin(now*8+m.phase)

	vector.DrawFilledCircle(dst, float32(x), float32(vp.Height*0.7+r), float32(r*0.8), withAlpha(tan, 0.15), true)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r*squash), m.body, true)

	// face
	vector.DrawFilledCircle(dst, float32(x-14), float32(y-8), 7, cream, true)
	vector.DrawFilledCircle(dst, float32(x+14), float32(y-8), 7, cream, true)
	vector.DrawFilledCircle(dst, float32(x-13), float32(y-7), 3, tan, true)
	vector.DrawFilledCircle(dst, float32(x+15), float32(y-7), 3, tan, true)
	vector.StrokeLine(dst, float32(x-10), float32(y+14), float32(x+10), float32(y+14), 3, tan, true)

	// party hat
	hr, hg, hb := hsvToRgb((colorPhase+m.phase)*360, 0.7, 0.95)
	hat := color.RGBA{R: hr, G: hg, B: hb, A: 0xff}
	top := y - r*squash
	fillPolygon(dst, []particle.Point{
		{X: x - 18, Y: top + 6},
		{X: x + 18, Y: top + 6},
		{X: x + 4, Y: top - 40},
	}, hat, 1)
	vector.DrawFilledCircle(dst, float32(x+4), float32(top-40), 5, cream, true)
}
