package particle

import "testing"

func TestHoverBurstRanges(t *testing.T) {
	origin := Point{X: 400, Y: 300}
	items := HoverBurst(testRng(), origin, 15, testPalette)
	if len(items) != 15 {
		t.Fatalf("len = %d, want 15", len(items))
	}
	for i, p := range items {
		if p.X != origin.X || p.Y != origin.Y {
			t.Errorf("particle %d at %v,%v, want origin", i, p.X, p.Y)
		}
		if !HoverVelocity.Contains(p.VX) || !HoverVelocity.Contains(p.VY) {
			t.Errorf("particle %d velocity %v,%v out of %v", i, p.VX, p.VY, HoverVelocity)
		}
		if !HoverSize.Contains(p.Size) {
			t.Errorf("particle %d size %v out of %v", i, p.Size, HoverSize)
		}
		if p.Life != 1 {
			t.Errorf("particle %d life = %v, want 1", i, p.Life)
		}
		if p.Color != testPalette[0] && p.Color != testPalette[1] {
			t.Errorf("particle %d color %v not in palette", i, p.Color)
		}
	}
}

func TestConfettiShowerRanges(t *testing.T) {
	items := ConfettiShower(testRng(), Point{Y: -10}, testViewport, 100, testPalette)
	if len(items) != 100 {
		t.Fatalf("len = %d, want 100", len(items))
	}
	for i, c := range items {
		if c.X < 0 || c.X >= testViewport.Width {
			t.Errorf("confetti %d x = %v outside viewport", i, c.X)
		}
		if c.Y != -10 {
			t.Errorf("confetti %d y = %v, want -10", i, c.Y)
		}
		if !ConfettiDriftX.Contains(c.VX) || !ConfettiFall.Contains(c.VY) {
			t.Errorf("confetti %d velocity %v,%v out of range", i, c.VX, c.VY)
		}
		if !ConfettiSize.Contains(c.Size) || !ConfettiRotation.Contains(c.Rotation) || !ConfettiSpin.Contains(c.Spin) {
			t.Errorf("confetti %d shape out of range: %+v", i, c)
		}
	}
}

func TestSeedingIsDeterministicForSeed(t *testing.T) {
	a := HoverBurst(testRng(), Point{X: 1, Y: 1}, 5, testPalette)
	b := HoverBurst(testRng(), Point{X: 1, Y: 1}, 5, testPalette)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnerRoutesTriggers(t *testing.T) {
	s := &Spawner{
		Rng:             testRng(),
		HoverCount:      15,
		ConfettiCount:   100,
		HoverPalette:    testPalette,
		ConfettiPalette: testPalette,
	}
	if got := len(s.Particles(TriggerHover, Point{X: 1, Y: 1})); got != 15 {
		t.Fatalf("hover particles = %d, want 15", got)
	}
	if got := s.Particles(TriggerMount, Point{}); got != nil {
		t.Fatalf("mount particles = %v, want nil", got)
	}
	if got := len(s.Confetti(TriggerMount, Point{Y: -10}, testViewport)); got != 100 {
		t.Fatalf("mount confetti = %d, want 100", got)
	}
	if got := s.Confetti(TriggerHover, Point{}, testViewport); got != nil {
		t.Fatalf("hover confetti = %v, want nil", got)
	}
}

func TestPickEmptyPalette(t *testing.T) {
	items := HoverBurst(testRng(), Point{}, 1, nil)
	if items[0].Color.A != 255 {
		t.Fatalf("color = %v, want opaque fallback", items[0].Color)
	}
}
