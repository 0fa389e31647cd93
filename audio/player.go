package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/arena/parameter"
)

// Cues is the feedback interface the game plays into
type Cues interface {
	Fire()
	Hit()
}

// Silent discards every cue
type Silent struct{}

func (Silent) Fire() {}
func (Silent) Hit()  {}

// Player plays cues through the system speaker
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	muted  bool
	closed bool
}

// NewPlayer opens the speaker and starts the cue mixer
func NewPlayer(volume float64) (*Player, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := &Player{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	log.Printf("[audio] speaker ready at %d Hz", parameter.AudioSampleRate)
	return p, nil
}

// Open returns a speaker-backed player, or Silent when the device cannot be opened
func Open(enabled bool, volume float64) Cues {
	if !enabled {
		return Silent{}
	}
	p, err := NewPlayer(volume)
	if err != nil {
		log.Printf("[audio] disabled: %v", err)
		return Silent{}
	}
	return p
}

// Fire plays the launch cue
func (p *Player) Fire() {
	p.play(NewFireSound(p.rate, p.volume))
}

// Hit plays the impact cue
func (p *Player) Hit() {
	p.play(NewHitSound(p.rate, p.volume))
}

// SetMuted toggles output without closing the device
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.muted {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
