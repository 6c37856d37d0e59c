package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. It starts at the configured instant and keeps
// ticking from there.
type Time struct {
	mu               sync.Mutex
	currentStartTime time.Time
	updatedAt        time.Time
}

func NewTime() *Time {
	return &Time{
		currentStartTime: time.Now().UTC(),
		updatedAt:        time.Now(),
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	elapsed := time.Since(t.updatedAt)
	return t.currentStartTime.Add(elapsed)
}
