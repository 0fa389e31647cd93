package component

import "time"

// CooldownTimer is a repeating timer that reports each period elapse
type CooldownTimer struct {
	Elapsed time.Duration
	Period  time.Duration
}

// Tick advances the timer by dt and reports whether a period finished
// Overshoot carries into the next period; several periods in one tick still report once
func (t *CooldownTimer) Tick(dt time.Duration) bool {
	if t.Period <= 0 || dt < 0 {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed %= t.Period
	return true
}
