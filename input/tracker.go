package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Tracker turns terminal key events into held-key state
// Terminals report presses and auto-repeats but no releases, so a key counts as held
// until the hold window passes without a new press or repeat
type Tracker struct {
	mu       sync.Mutex
	table    *KeyTable
	window   time.Duration
	now      func() time.Time
	lastSeen [keyCount]time.Time
}

// NewTracker creates a tracker over the given key table
// A nil table uses DefaultKeyTable
func NewTracker(table *KeyTable, window time.Duration) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Tracker{
		table:  table,
		window: window,
		now:    time.Now,
	}
}

// SetClock replaces the time source
func (t *Tracker) SetClock(now func() time.Time) {
	t.mu.Lock()
	t.now = now
	t.mu.Unlock()
}

// HandleEvent records a key press and returns any process command it carries
func (t *Tracker) HandleEvent(ev *tcell.EventKey) Command {
	k, ok, cmd := t.table.lookup(ev)
	if cmd != CommandNone || !ok {
		return cmd
	}

	t.mu.Lock()
	t.lastSeen[k] = t.now()
	t.mu.Unlock()
	return CommandNone
}

// IsPressed reports whether k was pressed or repeated within the hold window
func (t *Tracker) IsPressed(k Key) bool {
	if k >= keyCount {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	seen := t.lastSeen[k]
	if seen.IsZero() {
		return false
	}
	return t.now().Sub(seen) <= t.window
}

// Release clears a key immediately
func (t *Tracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	t.mu.Lock()
	t.lastSeen[k] = time.Time{}
	t.mu.Unlock()
}

// Reset clears all held keys
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.lastSeen = [keyCount]time.Time{}
	t.mu.Unlock()
}
