// Package status provides a thread-safe status tracker for the control loop.
// The loop writes a Reading each iteration; the heartbeat logger, the
// -print-state command and the simulator overlay read Snapshots.
package status

import (
	"sync"
	"time"

	"github.com/sweeney/joypanel/internal/logic"
)

// Config contains loop configuration for display.
type Config struct {
	DebounceMs  int64
	DelayUs     int64
	HeartbeatMs int64
	Target      string // "host", "pico" or "sim"
}

// Reading is what one loop iteration observed and produced.
type Reading struct {
	Flags    logic.Flags
	Sample   logic.Sample
	Cursor   logic.Point
	RedDuty  uint32
	BlueDuty uint32
	Presses  logic.PressCounts
}

// Snapshot is a point-in-time view of loop state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	Reading
	Iterations uint64
	StartTime  time.Time
	Now        time.Time
	Config     Config
}

// Uptime returns the duration since the loop started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable loop state behind an RWMutex.
// It must not be touched from the edge handler.
type Tracker struct {
	mu            sync.RWMutex
	snap          Snapshot
	lastHeartbeat time.Time
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
		lastHeartbeat: startTime,
	}
}

// Update records one iteration.
func (t *Tracker) Update(r Reading) {
	t.mu.Lock()
	t.snap.Reading = r
	t.snap.Iterations++
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the loop state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}

// CheckHeartbeat returns a snapshot stamped with now if interval has elapsed
// since the last heartbeat (or start). It reports false if the interval has
// not elapsed or is <= 0 (disabled).
func (t *Tracker) CheckHeartbeat(now time.Time, interval time.Duration) (Snapshot, bool) {
	if interval <= 0 {
		return Snapshot{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if now.Sub(t.lastHeartbeat) < interval {
		return Snapshot{}, false
	}
	t.lastHeartbeat = now

	s := t.snap
	s.Now = now
	return s, true
}
