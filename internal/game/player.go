package game

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/birthday-surprise/internal/audio"
	"github.com/iburimskiy/birthday-surprise/internal/config"
)

// player drives the speaker with a single looping source:
// source -> tap -> volume -> ctrl.
type player struct {
	cfg config.AudioConfig
	log *slog.Logger

	track  *audio.Track
	format beep.Format
	ctrl   *beep.Ctrl
	tap    *audio.Tap
	meter  *audio.Meter
	title  string

	paused   bool
	initDone bool
}

func newPlayer(cfg config.AudioConfig, log *slog.Logger) *player {
	return &player{
		cfg:   cfg,
		log:   log,
		meter: audio.NewMeter(64, cfg.Smoothing),
	}
}

// PlayFile loops the audio file at path.
func (p *player) PlayFile(path string) error {
	track, err := audio.Open(path)
	if err != nil {
		return err
	}
	if err := p.play(beep.Loop(-1, track), track.Format); err != nil {
		_ = track.Close()
		return err
	}
	p.track = track
	p.title = fmt.Sprintf("%s (%s)", filepath.Base(path), formatDuration(track.Duration()))
	p.log.Info("playing file", "path", path, "duration", track.Duration())
	return nil
}

// PlayMelody loops the generated birthday song.
func (p *player) PlayMelody() error {
	sr := beep.SampleRate(p.cfg.SampleRate)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := p.play(audio.Repeat(sr, p.cfg.Tempo, audio.BirthdaySong), format); err != nil {
		return err
	}
	p.title = "Happy Birthday"
	return nil
}

func (p *player) play(src beep.Streamer, format beep.Format) error {
	// Stop any previous playback
	p.Stop()

	tap := audio.NewTap(src, p.cfg.RingSize)
	vol := &effects.Volume{Streamer: tap, Base: 2, Volume: p.cfg.Volume}
	ctrl := &beep.Ctrl{Streamer: vol, Paused: false}

	// (Re)initialize speaker if needed
	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("initialising speaker: %w", err)
		}
		p.initDone = true
	}

	p.format = format
	p.ctrl = ctrl
	p.tap = tap
	p.paused = false
	speaker.Play(ctrl)
	return nil
}

func (p *player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

func (p *player) Paused() bool { return p.paused }

// Stop clears the speaker and closes the current file, if any.
func (p *player) Stop() {
	if p.initDone {
		speaker.Clear()
	}
	if p.track != nil {
		_ = p.track.Close()
		p.track = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.title = ""
}

func (p *player) Level() float64 {
	p.meter.Update(p.tap)
	return p.meter.Level()
}

func (p *player) Status() string {
	switch {
	case p.ctrl == nil:
		return "No music - P to pick a song, Backspace: back, R: reload"
	case p.paused:
		return "Paused: " + p.title + " - Space to play, P to pick a song"
	default:
		return "Playing: " + p.title + " - Space to pause, P to pick a song"
	}
}
