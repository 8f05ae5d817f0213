package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Landing.HoverBurst != 15 {
		t.Errorf("hover_burst = %d, want 15", cfg.Landing.HoverBurst)
	}
	if cfg.Landing.ClicksToReveal != 3 {
		t.Errorf("clicks_to_reveal = %d, want 3", cfg.Landing.ClicksToReveal)
	}
	if cfg.Landing.RevealDelay != 500*time.Millisecond {
		t.Errorf("reveal_delay = %v, want 500ms", cfg.Landing.RevealDelay)
	}
	if cfg.Landing.RippleTTL != 600*time.Millisecond {
		t.Errorf("ripple_ttl = %v, want 600ms", cfg.Landing.RippleTTL)
	}
	if cfg.Surprise.Confetti != 100 || cfg.Surprise.ConfettiStart != -10 {
		t.Errorf("surprise = %+v, want 100 confetti from y=-10", cfg.Surprise)
	}
	if len(cfg.Derived.LandingPalette) != 4 || len(cfg.Derived.SurprisePalette) != 6 {
		t.Errorf("palettes = %d/%d, want 4/6", len(cfg.Derived.LandingPalette), len(cfg.Derived.SurprisePalette))
	}
	want := color.RGBA{R: 0xd9, G: 0x77, B: 0x06, A: 0xff}
	if cfg.Derived.LandingPalette[0] != want {
		t.Errorf("first landing colour = %v, want %v", cfg.Derived.LandingPalette[0], want)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "landing:\n  hover_burst: 30\naudio:\n  file: song.mp3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Landing.HoverBurst != 30 {
		t.Errorf("hover_burst = %d, want 30", cfg.Landing.HoverBurst)
	}
	if cfg.Landing.ClicksToReveal != 3 {
		t.Errorf("clicks_to_reveal = %d, want default 3", cfg.Landing.ClicksToReveal)
	}
	if cfg.Audio.File != "song.mp3" {
		t.Errorf("audio.file = %q, want song.mp3", cfg.Audio.File)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config file") {
		t.Fatalf("err = %v, want reading config file error", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := "landing:\n  clicks_to_reveal: 0\n  palette: [\"#zzzzzz\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "clicks_to_reveal") {
		t.Fatalf("err = %v, want clicks_to_reveal error", err)
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#f5f1e8", color.RGBA{R: 0xf5, G: 0xf1, B: 0xe8, A: 0xff}, true},
		{"8b6f5e", color.RGBA{R: 0x8b, G: 0x6f, B: 0x5e, A: 0xff}, true},
		{"#fff", color.RGBA{}, false},
		{"#gggggg", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseHex(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseHex(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "effective.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if again.Landing.RevealDelay != cfg.Landing.RevealDelay || again.Window != cfg.Window {
		t.Fatalf("round trip changed config: %+v vs %+v", again, cfg)
	}
}
