package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/birthday-surprise/internal/config"
	"github.com/iburimskiy/birthday-surprise/internal/particle"
)

const rippleMaxRadius = 140

// landingPage shows the "Click here" button. Hovering bursts particles, and
// enough clicks open the surprise page.
type landingPage struct {
	env
	spawn   *particle.Spawner
	button  button
	loop    *particle.Loop[particle.Particle]
	driver  *particle.Driver[particle.Particle]
	visible []particle.Particle
	surface *layerSurface
	ripples *particle.Ripples
	clicks  clickTracker

	revealAt  time.Time
	enteredAt time.Time
	vp        particle.Viewport

	floatOrbs []orb
	glowOrbs  []orb
	sparkles  []sparkle
}

func newLandingPage(e env) *landingPage {
	return &landingPage{
		env:   e,
		spawn: e.spawner(),
		button: button{
			label:  "Click here",
			normal: amber,
			hover:  rust,
			press:  color.RGBA{R: 0xc2, G: 0x41, B: 0x0c, A: 0xff},
		},
	}
}

func (p *landingPage) enter(vp particle.Viewport) {
	p.vp = vp
	p.layout()
	p.button.reset()
	p.loop = particle.NewLoop[particle.Particle](vp)
	p.driver = particle.Start(p.frames, p.loop, func(items []particle.Particle) {
		p.visible = items
	})
	p.visible = nil
	p.surface = newLayerSurface(vp)
	p.ripples = particle.NewRipples(p.cfg.Landing.RippleTTL)
	p.ripples.Now = p.now
	p.clicks = clickTracker{threshold: p.cfg.Landing.ClicksToReveal}
	p.revealAt = time.Time{}
	p.enteredAt = p.now()

	p.floatOrbs = newOrbs(p.rng, config.FloatOrbCount, 25, 50, 15, 10)
	p.glowOrbs = newOrbs(p.rng, config.GlowOrbCount, 50, 100, 15, 15)
	p.sparkles = newSparkles(p.rng, config.SparkleCount)
}

func (p *landingPage) layout() {
	p.button.place(
		(p.vp.Width-config.ButtonWidth)/2,
		(p.vp.Height-config.ButtonHeight)/2,
		config.ButtonWidth,
		config.ButtonHeight,
	)
}

func (p *landingPage) resize(vp particle.Viewport) {
	p.vp = vp
	p.layout()
	p.loop.Resize(vp)
	p.surface.Resize(int(vp.Width), int(vp.Height))
}

func (p *landingPage) update(in input) error {
	entered, clicked := p.button.update(in)
	if entered {
		p.burst()
	}
	if clicked {
		p.click(in.x, in.y)
	}

	if !p.revealAt.IsZero() && !p.now().Before(p.revealAt) {
		p.revealAt = time.Time{}
		p.nav.navigate(PageSurprise)
	}
	return nil
}

// burst seeds a hover batch at the centre of the viewport.
func (p *landingPage) burst() {
	origin := particle.Point{X: p.vp.Width / 2, Y: p.vp.Height / 2}
	batch := p.spawn.Particles(particle.TriggerHover, origin)
	p.driver.Seed(batch...)
	p.log.Debug("hover burst", "count", len(batch), "live", p.loop.Len())
}

func (p *landingPage) click(x, y float64) {
	p.ripples.Add(x-p.button.x, y-p.button.y)
	if p.clicks.click() && p.revealAt.IsZero() {
		p.revealAt = p.now().Add(p.cfg.Landing.RevealDelay)
		p.log.Info("surprise unlocked", "clicks", p.clicks.count, "delay", p.cfg.Landing.RevealDelay)
	}
}

func (p *landingPage) leave() {
	p.driver.Stop()
	p.ripples.Clear()
	p.visible = nil
	p.surface.release()
}

func (p *landingPage) draw(screen *ebiten.Image) {
	now := p.now()
	t := now.Sub(p.enteredAt).Seconds()

	drawBackground(screen, p.vp, t)
	drawCorners(screen, p.vp, t)
	drawShapes(screen, p.vp, t)
	for _, o := range p.floatOrbs {
		o.draw(screen, p.vp, t, tan, 0.2)
	}
	for _, s := range p.sparkles {
		s.draw(screen, p.vp, t)
	}
	for _, o := range p.glowOrbs {
		o.draw(screen, p.vp, t, amber, 0.1)
	}

	particle.Render(p.surface, p.visible)
	p.surface.DrawTo(screen)

	p.drawButton(screen, now, t)
	p.drawHeading(screen, t)
}

func (p *landingPage) drawButton(screen *ebiten.Image, now time.Time, t float64) {
	cx := p.button.x + p.button.w/2
	cy := p.button.y + p.button.h/2

	rings := []struct {
		r, period, delay, alpha float64
		c                       color.RGBA
	}{
		{64, 2, 0, 0.3, amber},
		{80, 2.5, 0.3, 0.2, rust},
		{96, 3, 0.6, 0.1, color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff}},
	}
	for _, r := range rings {
		pulse := 1 + 0.1*math.Sin(2*math.Pi*(t-r.delay)/r.period)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r.r*pulse), 2, withAlpha(r.c, r.alpha), true)
	}

	scale := 1 + 0.02*math.Sin(t*2*math.Pi/3)
	if p.button.hovered {
		scale = 1.05
	}
	if p.button.pressed {
		scale = 0.95
	}
	p.button.draw(screen, p.text, scale)

	clip := screen.SubImage(p.button.rect()).(*ebiten.Image)
	for _, r := range p.ripples.List() {
		prog := r.Progress(now, p.cfg.Landing.RippleTTL)
		eased := 1 - (1-prog)*(1-prog)
		vector.DrawFilledCircle(clip,
			float32(p.button.x+r.X), float32(p.button.y+r.Y),
			float32(eased*rippleMaxRadius),
			withAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.3*(1-prog)), true)
	}

	if hint := p.clicks.hint(); hint != "" {
		alpha := 0.6 + 0.4*math.Sin(t*2*math.Pi)
		p.text.drawCentered(screen, hint, cx, p.button.y+p.button.h+24, 1.5, tan, alpha)
	}
}

func (p *landingPage) drawHeading(screen *ebiten.Image, t float64) {
	cx := p.vp.Width / 2
	fade := clamp01(t)
	p.text.drawWave(screen, "Hey !babe", cx, 48+20*(1-fade), 6, t, tan)
	sub := clamp01(t - 0.5)
	p.text.drawCentered(screen, "I got something for you *", cx, 160-10*(1-sub), 2, tan, 0.7*sub)
}
