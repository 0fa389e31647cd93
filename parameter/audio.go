package parameter

import "time"

// Audio output
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 50 * time.Millisecond
	AudioVolume         = 0.5 // Master volume in [0, 1]
)

// Fire cue: short downward chirp
const (
	FireSoundDuration  = 90 * time.Millisecond
	FireSoundAttack    = 3 * time.Millisecond
	FireSoundRelease   = 40 * time.Millisecond
	FireSoundStartFreq = 1400.0
	FireSoundEndFreq   = 500.0
)

// Hit cue: noise burst over a low square thump
const (
	HitSoundDuration = 140 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 90 * time.Millisecond
	HitSoundFreq     = 90.0
)
