package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Amplitude is the peak sample value of generated tones.
const Amplitude = 0.3

const (
	attack  = 10 * time.Millisecond
	release = 60 * time.Millisecond
)

// Note is a pitch held for a number of beats. Zero frequency is a rest.
type Note struct {
	Freq  float64
	Beats float64
}

// Pitches used by the birthday song.
const (
	G4 = 392.00
	A4 = 440.00
	B4 = 493.88
	C5 = 523.25
	D5 = 587.33
	E5 = 659.25
	F5 = 698.46
	G5 = 783.99
)

// BirthdaySong is "Happy Birthday" in C major followed by a bar of rest.
var BirthdaySong = []Note{
	{G4, 0.75}, {G4, 0.25}, {A4, 1}, {G4, 1}, {C5, 1}, {B4, 2},
	{G4, 0.75}, {G4, 0.25}, {A4, 1}, {G4, 1}, {D5, 1}, {C5, 2},
	{G4, 0.75}, {G4, 0.25}, {G5, 1}, {E5, 1}, {C5, 1}, {B4, 1}, {A4, 2},
	{F5, 0.75}, {F5, 0.25}, {E5, 1}, {C5, 1}, {D5, 1}, {C5, 2},
	{0, 3},
}

func beat(tempo float64) time.Duration {
	return time.Duration(float64(time.Minute) / tempo)
}

// Tone is a sine wave at freq lasting d, shaped by a short attack and release.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	if freq <= 0 {
		return beep.Silence(total)
	}
	rise := min(sr.N(attack), total/2)
	fall := min(sr.N(release), total/2)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1.0
			if rise > 0 && pos < rise {
				env = float64(pos) / float64(rise)
			}
			if left := total - pos; fall > 0 && left < fall {
				env = math.Min(env, float64(left)/float64(fall))
			}
			v := Amplitude * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Melody renders notes at tempo beats per minute.
func Melody(sr beep.SampleRate, tempo float64, notes []Note) beep.Streamer {
	b := beat(tempo)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, Tone(sr, n.Freq, time.Duration(n.Beats*float64(b))))
	}
	return beep.Seq(parts...)
}

// MelodyLen is the number of samples Melody produces.
func MelodyLen(sr beep.SampleRate, tempo float64, notes []Note) int {
	b := beat(tempo)
	total := 0
	for _, n := range notes {
		total += sr.N(time.Duration(n.Beats * float64(b)))
	}
	return total
}

// Repeat plays the melody forever.
func Repeat(sr beep.SampleRate, tempo float64, notes []Note) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		return Melody(sr, tempo, notes)
	})
}
