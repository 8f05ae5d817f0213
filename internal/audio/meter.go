package audio

import "math"

// Meter folds tap snapshots into smoothed per-band loudness values in [0, 1].
type Meter struct {
	Bands     []float64
	Smoothing float64
	Window    int // samples read per update
}

func NewMeter(bands int, smoothing float64) *Meter {
	return &Meter{
		Bands:     make([]float64, bands),
		Smoothing: smoothing,
		Window:    2048,
	}
}

// Update reads the latest samples from t. A nil tap decays every band toward zero.
func (m *Meter) Update(t *Tap) {
	var samples [][2]float64
	if t != nil {
		samples = t.Snapshot(m.Window)
	}
	if len(samples) == 0 {
		for i := range m.Bands {
			m.Bands[i] *= m.Smoothing
		}
		return
	}

	nBands := len(m.Bands)
	segmentSize := max(1, len(samples)/nBands)
	for i := 0; i < nBands; i++ {
		start := i * segmentSize
		end := start + segmentSize
		if start >= len(samples) {
			break
		}
		if end > len(samples) {
			end = len(samples)
		}

		var sumSquares float64
		for s := start; s < end; s++ {
			mono := (samples[s][0] + samples[s][1]) * 0.5
			sumSquares += mono * mono
		}

		rms := math.Sqrt(sumSquares / float64(end-start))
		mag := math.Min(1, math.Pow(rms, 0.3)) // compress for visual effect

		m.Bands[i] = m.Smoothing*m.Bands[i] + (1-m.Smoothing)*mag
	}
}

// Level is the mean of all bands.
func (m *Meter) Level() float64 {
	if len(m.Bands) == 0 {
		return 0
	}
	var sum float64
	for _, b := range m.Bands {
		sum += b
	}
	return sum / float64(len(m.Bands))
}
