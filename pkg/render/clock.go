package render

import (
	"sync"
	"time"
)

// Clock reports monotonic seconds since the visualiser started.
type Clock interface {
	Elapsed() float64
}

type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (w *WallClock) Elapsed() float64 {
	return time.Since(w.start).Seconds()
}

// ManualClock only moves when told to. It pins the animation to a fixed
// instant for snapshots and tests.
type ManualClock struct {
	mu      sync.Mutex
	elapsed float64
}

func NewManualClock(elapsed float64) *ManualClock {
	return &ManualClock{elapsed: elapsed}
}

func (m *ManualClock) Elapsed() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

func (m *ManualClock) Set(elapsed float64) {
	m.mu.Lock()
	m.elapsed = elapsed
	m.mu.Unlock()
}

func (m *ManualClock) Advance(seconds float64) {
	m.mu.Lock()
	m.elapsed += seconds
	m.mu.Unlock()
}
