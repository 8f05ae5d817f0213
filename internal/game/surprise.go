package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/birthday-surprise/internal/config"
	"github.com/iburimskiy/birthday-surprise/internal/particle"
)

// musicPlayer plays the surprise page soundtrack.
type musicPlayer interface {
	PlayFile(path string) error
	PlayMelody() error
	TogglePause()
	Paused() bool
	Stop()
	// Level is the current loudness in [0, 1].
	Level() float64
	// Status describes what is playing.
	Status() string
}

// surprisePage rains confetti over the birthday message while music plays.
type surprisePage struct {
	env
	spawn   *particle.Spawner
	player  musicPlayer
	pick    func() (string, error)
	loop    *particle.Loop[particle.Confetti]
	driver  *particle.Driver[particle.Confetti]
	visible []particle.Confetti
	surface *layerSurface

	back, reload, song button

	vp         particle.Viewport
	enteredAt  time.Time
	hearts     []heart
	orbs       []orb
	level      float64
	colorPhase float64
	lastErr    error
}

func newSurprisePage(e env, player musicPlayer, pick func() (string, error)) *surprisePage {
	return &surprisePage{
		env:    e,
		spawn:  e.spawner(),
		player: player,
		pick:   pick,
		back: button{
			label:  "Go Back",
			normal: amber,
			hover:  rust,
			press:  color.RGBA{R: 0xc2, G: 0x41, B: 0x0c, A: 0xff},
		},
		reload: button{
			label:  "Reload",
			normal: tan,
			hover:  color.RGBA{R: 0x6b, G: 0x56, B: 0x48, A: 0xff},
			press:  color.RGBA{R: 0x57, G: 0x45, B: 0x3a, A: 0xff},
		},
		song: button{
			label:  "Pick song",
			normal: color.RGBA{R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
			hover:  amber,
			press:  rust,
		},
	}
}

func (p *surprisePage) enter(vp particle.Viewport) {
	p.vp = vp
	p.layout()
	for _, b := range []*button{&p.back, &p.reload, &p.song} {
		b.reset()
	}
	p.loop = particle.NewLoop[particle.Confetti](vp)
	p.driver = particle.Start(p.frames, p.loop, func(items []particle.Confetti) {
		p.visible = items
	})
	p.surface = newLayerSurface(vp)
	p.enteredAt = p.now()
	p.lastErr = nil
	p.level = 0

	origin := particle.Point{Y: p.cfg.Surprise.ConfettiStart}
	batch := p.spawn.Confetti(particle.TriggerMount, origin, vp)
	p.driver.Seed(batch...)
	p.visible = p.loop.Items()
	p.log.Info("confetti", "count", len(batch))

	p.hearts = newHearts(p.rng, config.HeartCount)
	p.orbs = newOrbs(p.rng, config.SurpriseOrbs, 75, 125, 20, 20)

	p.startMusic()
}

func (p *surprisePage) startMusic() {
	var err error
	switch {
	case p.cfg.Audio.File != "":
		err = p.player.PlayFile(p.cfg.Audio.File)
	case p.cfg.Audio.Melody:
		err = p.player.PlayMelody()
	}
	if err != nil {
		p.lastErr = err
		p.log.Error("starting music", "error", err)
	}
}

func (p *surprisePage) layout() {
	y := p.vp.Height*0.62 + 20
	gap := 16.0
	total := 3*config.SmallButtonWidth + 2*gap
	x := (p.vp.Width - total) / 2
	for _, b := range []*button{&p.back, &p.reload, &p.song} {
		b.place(x, y, config.SmallButtonWidth, config.SmallButtonHeight)
		x += config.SmallButtonWidth + gap
	}
}

func (p *surprisePage) resize(vp particle.Viewport) {
	p.vp = vp
	p.layout()
	p.loop.Resize(vp)
	p.surface.Resize(int(vp.Width), int(vp.Height))
}

func (p *surprisePage) update(in input) error {
	if _, clicked := p.back.update(in); clicked || in.hit(ebiten.KeyBackspace) {
		p.nav.navigate(PageLanding)
	}
	if _, clicked := p.reload.update(in); clicked || in.hit(ebiten.KeyR) {
		p.nav.navigate(PageSurprise)
	}
	if _, clicked := p.song.update(in); clicked || in.hit(ebiten.KeyP) {
		p.pickSong()
	}
	if in.hit(ebiten.KeySpace) {
		p.player.TogglePause()
	}

	p.colorPhase += config.ColorShiftSpeed
	p.level = p.player.Level()
	return nil
}

func (p *surprisePage) pickSong() {
	path, err := p.pick()
	if err != nil {
		p.lastErr = err
		p.log.Error("song dialog", "error", err)
		return
	}
	if path == "" {
		return
	}
	if err := p.player.PlayFile(path); err != nil {
		p.lastErr = err
		p.log.Error("playing song", "path", path, "error", err)
		return
	}
	p.lastErr = nil
	p.cfg.Audio.File = path
	p.log.Info("song picked", "path", path)
}

func (p *surprisePage) leave() {
	p.driver.Stop()
	p.player.Stop()
	p.visible = nil
	p.surface.release()
}

func (p *surprisePage) draw(screen *ebiten.Image) {
	t := p.now().Sub(p.enteredAt).Seconds()

	drawBackground(screen, p.vp, t)
	for _, o := range p.orbs {
		o.draw(screen, p.vp, t, amber, 0.15)
	}

	particle.Render(p.surface, p.visible)
	p.surface.DrawTo(screen)

	for _, h := range p.hearts {
		h.draw(screen, p.vp, t)
	}
	for _, m := range mascots {
		m.draw(screen, p.vp, t, p.level, p.colorPhase)
	}

	p.drawContent(screen, t)

	status := p.player.Status()
	if p.lastErr != nil {
		status += " | Error: " + p.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (p *surprisePage) drawContent(screen *ebiten.Image, t float64) {
	cx := p.vp.Width / 2
	show := clamp01(t)
	top := p.vp.Height*0.2 + 40*(1-show)

	// Title bounces in, then its colour drifts between amber and rust.
	bounce := math.Max(0, 1-t) * math.Abs(math.Sin(t*3*math.Pi)) * 30
	titleColor := lerpColor(amber, rust, 0.5+0.5*math.Sin(t*2*math.Pi/3))
	p.text.drawCentered(screen, "* Surprise! *", cx, top-bounce, 8, titleColor, show)

	line := clamp01((t - 0.5) * 2)
	lineW := 128 * line
	drawPill(screen, cx-lineW/2, top+140, lineW, 4, withAlpha(amber, 0.8))

	p.text.drawCentered(screen, "You've discovered the secret!", cx, top+170, 3, tan, clamp01(t-0.8))
	p.text.drawCentered(screen, "This is your special moment. Enjoy every second of it!", cx, top+230, 2, tan, 0.8*clamp01(t-1))

	breathe := 1 + 0.02*math.Sin(t*2*math.Pi/3)
	for _, b := range []*button{&p.back, &p.reload, &p.song} {
		scale := breathe
		if b.hovered {
			scale = 1.05
		}
		if b.pressed {
			scale = 0.95
		}
		b.draw(screen, p.text, scale)
	}
}
