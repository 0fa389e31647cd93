package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/arena/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping linearly between two frequencies
type oscillator struct {
	from, to float64
	phase    float64
	length   int
	pos      int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:   from,
		to:     to,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.length)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with attack and release ramps across duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}

		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if e.release > 0 && e.pos >= releaseStart {
			gain = math.Max(0, float64(e.total-e.pos)/float64(e.release))
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewFireSound builds the cue for a projectile launch
func NewFireSound(rate beep.SampleRate, vol float64) beep.Streamer {
	chirp := NewSweep(parameter.FireSoundStartFreq, parameter.FireSoundEndFreq, parameter.FireSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(chirp, parameter.FireSoundDuration, parameter.FireSoundAttack, parameter.FireSoundRelease, rate)
	return newVolume(shaped, vol*0.6)
}

// NewHitSound builds the cue for a projectile striking the enemy
func NewHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	d := parameter.HitSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	thump := NewEnvelope(NewOscillator(parameter.HitSoundFreq, d, WaveSquare, rate), d, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(thump, 0.5),
	)
	return newVolume(mixed, vol)
}
