package engine

import (
	"time"

	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/status"
)

// Resource holds singleton world resources, initialized by NewWorld
type Resource struct {
	Time   *TimeResource
	Status *status.Registry

	// Events is the per-tick collision event buffer
	Events *event.Buffer

	// Audio plays feedback cues; silent unless replaced
	Audio AudioPlayer
}

// TimeResource wraps time data for systems
// It is updated by World.Tick at the start of a tick
type TimeResource struct {
	// DeltaTime is the simulated duration of this tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count, starting at 1
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
func (tr *TimeResource) Update(deltaTime time.Duration, frameNumber int64) {
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// Seconds returns the delta time in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Fire()
	Hit()
}

type silentAudio struct{}

func (silentAudio) Fire() {}
func (silentAudio) Hit()  {}
