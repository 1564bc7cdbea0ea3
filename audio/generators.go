package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked harmonics for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Envelope to fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a rising two-tone pickup chime
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 90)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// First tone then a fifth above
		freq := 660.0
		if g.pos >= half {
			freq = 990.0
		}

		envelope := math.Exp(-t * 6)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// DescentGenerator generates a falling sweep for the death sound
type DescentGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewDescentGenerator creates a descent sound generator
func NewDescentGenerator(sr beep.SampleRate) *DescentGenerator {
	return &DescentGenerator{sr: sr}
}

func (g *DescentGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Frequency falls from 440Hz toward 60Hz over ~0.6s
		freq := 60 + 380*math.Exp(-t*5)
		envelope := math.Exp(-t * 3)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DescentGenerator) Err() error {
	return nil
}

// ArpeggioGenerator generates a short ascending victory arpeggio
type ArpeggioGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewArpeggioGenerator creates an arpeggio sound generator
func NewArpeggioGenerator(sr beep.SampleRate) *ArpeggioGenerator {
	return &ArpeggioGenerator{sr: sr}
}

// Major triad plus the octave, one note per step.
var arpeggioNotes = []float64{523.25, 659.25, 783.99, 1046.50}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	step := g.sr.N(time.Millisecond * 160)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		idx := g.pos / step
		if idx >= len(arpeggioNotes) {
			idx = len(arpeggioNotes) - 1
		}
		freq := arpeggioNotes[idx]

		// Per-note envelope so the steps stay distinct
		noteT := float64(g.pos%step) / float64(g.sr)
		envelope := math.Exp(-noteT * 10)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// SweepGenerator generates a quick upward frequency sweep
type SweepGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewSweepGenerator creates a sweep sound generator
func NewSweepGenerator(sr beep.SampleRate) *SweepGenerator {
	return &SweepGenerator{sr: sr}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Frequency rises from 200Hz to ~1kHz over 0.25s
		freq := 200 + 3200*t
		envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*4)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
