package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const toneAmplitude = 0.3

// ToneGenerator is a sine wave with linear attack and release
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
	fade    int
}

// NewToneGenerator creates a tone lasting d
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	samples := sr.N(d)
	fade := sr.N(5 * time.Millisecond)
	if fade > samples/2 {
		fade = samples / 2
	}
	return &ToneGenerator{sr: sr, freq: freq, samples: samples, fade: fade}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		sample := toneAmplitude * envelope(g.pos, g.samples, g.fade) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator glides linearly from one frequency to another
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	samples  int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Square-ish buzz with a decaying tail
		sample := toneAmplitude * (1 - progress) * math.Tanh(3*math.Sin(g.phase))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

func envelope(pos, total, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	switch {
	case pos < fade:
		return float64(pos) / float64(fade)
	case pos >= total-fade:
		return float64(total-pos) / float64(fade)
	}
	return 1
}
