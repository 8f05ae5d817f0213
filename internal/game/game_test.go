package game

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/birthday-surprise/internal/config"
	"github.com/iburimskiy/birthday-surprise/internal/particle"
)

type fakePlayer struct {
	files   []string
	melody  int
	stops   int
	paused  bool
	failErr error
}

func (f *fakePlayer) PlayFile(path string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.files = append(f.files, path)
	return nil
}

func (f *fakePlayer) PlayMelody() error { f.melody++; return nil }
func (f *fakePlayer) TogglePause()      { f.paused = !f.paused }
func (f *fakePlayer) Paused() bool      { return f.paused }
func (f *fakePlayer) Stop()             { f.stops++ }
func (f *fakePlayer) Level() float64    { return 0.5 }
func (f *fakePlayer) Status() string    { return "fake" }

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type harness struct {
	g      *Game
	clock  *fakeClock
	player *fakePlayer
	picked string
}

func newHarness(t *testing.T, start PageID) *harness {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	h := &harness{
		clock:  &fakeClock{t: time.Unix(1700000000, 0)},
		player: &fakePlayer{},
	}
	h.g = newGame(Options{
		Config: cfg,
		Seed:   42,
		Start:  start,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, deps{
		player: h.player,
		pick:   func() (string, error) { return h.picked, nil },
		now:    h.clock.now,
	})
	t.Cleanup(func() { h.g.pages[h.g.cur].leave() })
	return h
}

func (h *harness) landing() *landingPage   { return h.g.pages[PageLanding].(*landingPage) }
func (h *harness) surprise() *surprisePage { return h.g.pages[PageSurprise].(*surprisePage) }

func (h *harness) tick(t *testing.T, in input) {
	t.Helper()
	if err := h.g.tick(in); err != nil {
		t.Fatalf("tick: %v", err)
	}
}

// click presses and releases the left button at (x, y) over two ticks.
func (h *harness) click(t *testing.T, x, y float64) {
	h.tick(t, input{x: x, y: y, pressed: true})
	h.tick(t, input{x: x, y: y, released: true})
}

func (h *harness) buttonCentre() (float64, float64) {
	b := h.landing().button
	return b.x + b.w/2, b.y + b.h/2
}

func TestHoverEnterSeedsBurst(t *testing.T) {
	h := newHarness(t, PageLanding)
	l := h.landing()
	x, y := h.buttonCentre()

	h.tick(t, input{x: 0, y: 0})
	if l.loop.Len() != 0 {
		t.Fatalf("particles before hover = %d, want 0", l.loop.Len())
	}

	// The burst is seeded during update and stepped once by the frame queue.
	h.tick(t, input{x: x, y: y})
	if l.loop.Len() != 15 {
		t.Fatalf("particles after hover = %d, want 15", l.loop.Len())
	}
	if len(l.visible) != 15 {
		t.Fatalf("visible = %d, want 15", len(l.visible))
	}

	h.tick(t, input{x: x, y: y})
	if l.loop.Len() != 15 {
		t.Fatalf("particles while still hovering = %d, want 15", l.loop.Len())
	}

	h.tick(t, input{x: 0, y: 0})
	h.tick(t, input{x: x, y: y})
	if l.loop.Len() != 30 {
		t.Fatalf("particles after second hover = %d, want 30", l.loop.Len())
	}

	for i := 0; i < 60; i++ {
		h.tick(t, input{x: x, y: y})
	}
	if l.loop.Len() != 0 || l.driver.Running() {
		t.Fatalf("particles after 60 frames = %d running=%v, want drained", l.loop.Len(), l.driver.Running())
	}
}

func TestThirdClickRevealsSurpriseAfterDelay(t *testing.T) {
	h := newHarness(t, PageLanding)
	l := h.landing()
	x, y := h.buttonCentre()

	h.click(t, x, y)
	if got := l.clicks.hint(); got != "2 more clicks to reveal the surprise!" {
		t.Fatalf("hint = %q", got)
	}
	if l.ripples.Len() != 1 {
		t.Fatalf("ripples = %d, want 1", l.ripples.Len())
	}
	rp := l.ripples.List()[0]
	if rp.X != x-l.button.x || rp.Y != y-l.button.y {
		t.Fatalf("ripple at %v,%v, want button-relative %v,%v", rp.X, rp.Y, x-l.button.x, y-l.button.y)
	}

	h.click(t, x, y)
	if got := l.clicks.hint(); got != "1 more click to reveal the surprise!" {
		t.Fatalf("hint = %q", got)
	}
	h.click(t, x, y)
	if got := l.clicks.hint(); got != "" {
		t.Fatalf("hint after reveal = %q, want empty", got)
	}

	h.clock.advance(400 * time.Millisecond)
	h.tick(t, input{x: x, y: y})
	h.tick(t, input{x: x, y: y})
	if h.g.Current() != PageLanding {
		t.Fatalf("page = %v before reveal delay, want landing", h.g.Current())
	}

	h.clock.advance(100 * time.Millisecond)
	h.tick(t, input{x: x, y: y})
	h.tick(t, input{x: x, y: y})
	if h.g.Current() != PageSurprise {
		t.Fatalf("page = %v after reveal delay, want surprise", h.g.Current())
	}
	if l.ripples.Len() != 0 {
		t.Fatalf("ripples after leaving = %d, want 0", l.ripples.Len())
	}
}

func TestClickOffButtonIsIgnored(t *testing.T) {
	h := newHarness(t, PageLanding)
	x, y := h.buttonCentre()

	h.tick(t, input{x: x, y: y, pressed: true})
	h.tick(t, input{x: 1, y: 1, released: true})
	if h.landing().clicks.count != 0 {
		t.Fatalf("clicks = %d, want 0 for a press dragged off the button", h.landing().clicks.count)
	}
}

func TestSurpriseMountSeedsConfettiAndMusic(t *testing.T) {
	h := newHarness(t, PageSurprise)
	s := h.surprise()

	if s.loop.Len() != 100 {
		t.Fatalf("confetti = %d, want 100", s.loop.Len())
	}
	for _, c := range s.loop.Items() {
		if c.Y != -10 {
			t.Fatalf("confetti y = %v, want -10", c.Y)
		}
	}
	if h.player.melody != 1 {
		t.Fatalf("melody plays = %d, want 1", h.player.melody)
	}

	for i := 0; i < 120; i++ {
		h.tick(t, input{})
	}
	if s.loop.Len() != 0 {
		t.Fatalf("confetti after 120 frames = %d, want 0", s.loop.Len())
	}
	if s.driver.Running() {
		t.Fatal("confetti driver still running on empty loop")
	}
}

func TestSurpriseButtons(t *testing.T) {
	h := newHarness(t, PageSurprise)
	s := h.surprise()

	h.click(t, s.reload.x+5, s.reload.y+5)
	h.tick(t, input{})
	if h.g.Current() != PageSurprise {
		t.Fatalf("page = %v after reload, want surprise", h.g.Current())
	}
	if h.player.stops != 1 || h.player.melody != 2 {
		t.Fatalf("stops=%d melody=%d after reload, want 1/2", h.player.stops, h.player.melody)
	}
	if s.loop.Len() != 100 {
		t.Fatalf("confetti after reload = %d, want 100", s.loop.Len())
	}

	first := s.driver
	h.click(t, s.back.x+5, s.back.y+5)
	h.tick(t, input{})
	if h.g.Current() != PageLanding {
		t.Fatalf("page = %v after back, want landing", h.g.Current())
	}
	if !first.Stopped() {
		t.Fatal("confetti driver not stopped when leaving the page")
	}
	if h.player.stops != 2 {
		t.Fatalf("stops = %d, want 2", h.player.stops)
	}
	if q := h.g.queue.Pending(); q != 0 {
		t.Fatalf("pending frames after teardown = %d, want 0", q)
	}
}

func TestSurprisePickSong(t *testing.T) {
	h := newHarness(t, PageSurprise)
	s := h.surprise()

	h.tick(t, input{keys: []ebiten.Key{ebiten.KeyP}})
	if len(h.player.files) != 0 {
		t.Fatalf("files = %v after cancelled dialog, want none", h.player.files)
	}

	h.picked = "/music/song.mp3"
	h.tick(t, input{keys: []ebiten.Key{ebiten.KeyP}})
	if len(h.player.files) != 1 || h.player.files[0] != h.picked {
		t.Fatalf("files = %v, want [%s]", h.player.files, h.picked)
	}
	if h.g.cfg.Audio.File != h.picked {
		t.Fatalf("audio.file = %q, want picked song", h.g.cfg.Audio.File)
	}

	h.player.failErr = errors.New("boom")
	h.tick(t, input{keys: []ebiten.Key{ebiten.KeyP}})
	if s.lastErr == nil {
		t.Fatal("playback error not recorded")
	}

	h.tick(t, input{keys: []ebiten.Key{ebiten.KeySpace}})
	if !h.player.paused {
		t.Fatal("space did not pause")
	}
}

func TestLayoutResizesCurrentPage(t *testing.T) {
	h := newHarness(t, PageLanding)
	w, hh := h.g.Layout(640, 480)
	if w != 640 || hh != 480 {
		t.Fatalf("layout = %dx%d, want 640x480", w, hh)
	}
	l := h.landing()
	if got := l.loop.Viewport(); got != (particle.Viewport{Width: 640, Height: 480}) {
		t.Fatalf("loop viewport = %+v, want 640x480", got)
	}
	if l.button.x != (640-l.button.w)/2 {
		t.Fatalf("button x = %v, want centred", l.button.x)
	}
}

func TestUnknownStartPageFallsBackToLanding(t *testing.T) {
	h := newHarness(t, PageID("nope"))
	if h.g.Current() != PageLanding {
		t.Fatalf("page = %v, want landing", h.g.Current())
	}
}
