// Package cue plays short synthesized sounds for direction and lock changes.
package cue

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cue sounds onto the speaker. Until Init succeeds every Play
// method is a no-op.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *zap.Logger
}

// NewPlayer creates an uninitialised player.
func NewPlayer(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{mixer: &beep.Mixer{}, log: log}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Reverse plays a short click.
func (p *Player) Reverse() {
	p.play(NewTone(sampleRate, 1200, 40*time.Millisecond, 0.2))
}

// Lock plays a rising pair of notes when locking and a falling pair when
// unlocking.
func (p *Player) Lock(on bool) {
	lo := NewTone(sampleRate, 660, 70*time.Millisecond, 0.15)
	hi := NewTone(sampleRate, 990, 90*time.Millisecond, 0.15)
	if on {
		p.play(beep.Seq(lo, hi))
	} else {
		p.play(beep.Seq(hi, lo))
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Tone is a sine wave with a linear fade-out.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	amp    float64
	pos    int
	length int
}

// NewTone returns a tone of the given frequency, duration and peak amplitude.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, amp float64) *Tone {
	return &Tone{sr: sr, freq: freq, amp: amp, length: sr.N(d)}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}
		env := 1 - float64(t.pos)/float64(t.length)
		v := t.amp * env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// Len is the total number of samples the tone produces.
func (t *Tone) Len() int { return t.length }
