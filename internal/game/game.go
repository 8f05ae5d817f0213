// Package game hosts the landing and surprise pages on ebiten.
package game

import (
	"image/color"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/birthday-surprise/internal/config"
	"github.com/iburimskiy/birthday-surprise/internal/particle"
)

// PageID names a page the router can show.
type PageID string

const (
	PageLanding  PageID = "landing"
	PageSurprise PageID = "surprise"
)

// page is one screen. enter and leave bracket its lifetime; leave must
// release everything enter acquired.
type page interface {
	enter(vp particle.Viewport)
	update(in input) error
	draw(screen *ebiten.Image)
	resize(vp particle.Viewport)
	leave()
}

type navigator interface {
	navigate(id PageID)
}

// input is the pointer and keyboard state read once per tick.
type input struct {
	x, y     float64
	pressed  bool // left button went down this tick
	released bool // left button went up this tick
	keys     []ebiten.Key
}

func (in input) hit(k ebiten.Key) bool {
	for _, key := range in.keys {
		if key == k {
			return true
		}
	}
	return false
}

// env is what every page shares with the game.
type env struct {
	cfg    *config.Config
	rng    *rand.Rand
	frames particle.Scheduler
	nav    navigator
	now    func() time.Time
	log    *slog.Logger
	text   *textCache
}

func (e env) spawner() *particle.Spawner {
	return &particle.Spawner{
		Rng:             e.rng,
		HoverCount:      e.cfg.Landing.HoverBurst,
		ConfettiCount:   e.cfg.Surprise.Confetti,
		HoverPalette:    e.cfg.Derived.LandingPalette,
		ConfettiPalette: e.cfg.Derived.SurprisePalette,
	}
}

// Options configures a Game.
type Options struct {
	Config *config.Config
	Seed   int64  // 0 = time based
	Music  string // overrides audio.file
	Start  PageID
	Logger *slog.Logger
}

// Game implements ebiten.Game.
type Game struct {
	env
	queue *particle.FrameQueue
	pages map[PageID]page
	cur   PageID
	next  PageID
	vp    particle.Viewport

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// deps are the pieces of the host environment pages reach outside the process for.
type deps struct {
	player musicPlayer
	pick   func() (string, error)
	now    func() time.Time
}

func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return newGame(opts, deps{
		player: newPlayer(opts.Config.Audio, logger),
		pick:   pickSong,
		now:    time.Now,
	})
}

func newGame(opts Options, d deps) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config
	if opts.Music != "" {
		cfg.Audio.File = opts.Music
	}

	g := &Game{
		queue:   particle.NewFrameQueue(),
		prevKey: map[ebiten.Key]bool{},
		vp: particle.Viewport{
			Width:  float64(cfg.Window.Width),
			Height: float64(cfg.Window.Height),
		},
	}
	g.env = env{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1))),
		frames: g.queue,
		nav:    g,
		now:    d.now,
		log:    logger,
		text:   newTextCache(),
	}
	g.pages = map[PageID]page{
		PageLanding:  newLandingPage(g.env),
		PageSurprise: newSurprisePage(g.env, d.player, d.pick),
	}

	start := opts.Start
	if _, ok := g.pages[start]; !ok {
		start = PageLanding
	}
	logger.Info("starting", "page", start, "seed", seed)
	g.cur = start
	g.pages[start].enter(g.vp)
	return g
}

// navigate switches pages at the start of the next tick. Navigating to the
// current page reloads it.
func (g *Game) navigate(id PageID) {
	if _, ok := g.pages[id]; !ok {
		g.log.Warn("unknown page", "page", id)
		return
	}
	g.next = id
}

func (g *Game) switchPage() {
	if g.next == "" {
		return
	}
	from, to := g.cur, g.next
	g.next = ""
	g.pages[from].leave()
	g.cur = to
	g.pages[to].enter(g.vp)
	g.log.Info("navigated", "from", from, "to", to)
}

// Current returns the page being shown.
func (g *Game) Current() PageID { return g.cur }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	var keys []ebiten.Key
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyP, ebiten.KeyR, ebiten.KeyBackspace, ebiten.KeyEscape, ebiten.KeyQ} {
		if justPressed(k) {
			keys = append(keys, k)
		}
	}
	in := input{
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		keys:     keys,
	}
	mouseX, mouseY := ebiten.CursorPosition()
	in.x, in.y = float64(mouseX), float64(mouseY)

	if in.hit(ebiten.KeyEscape) || in.hit(ebiten.KeyQ) {
		g.pages[g.cur].leave()
		return ebiten.Termination
	}
	return g.tick(in)
}

// tick runs one frame of page logic followed by the frame callbacks.
func (g *Game) tick(in input) error {
	g.switchPage()
	if err := g.pages[g.cur].update(in); err != nil {
		return err
	}
	g.queue.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0xf5, G: 0xf1, B: 0xe8, A: 0xff})
	g.pages[g.cur].draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := particle.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if vp != g.vp && vp.Width > 0 && vp.Height > 0 {
		g.vp = vp
		g.pages[g.cur].resize(vp)
	}
	return outsideWidth, outsideHeight
}
