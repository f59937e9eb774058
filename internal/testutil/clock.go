package testutil

import (
	"sync"
	"time"
)

// StepClock is a fake clock that advances by a fixed step on every reading.
//
// Two consecutive readings are always exactly one step apart, which makes
// measured durations deterministic.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock creates a clock starting at start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

// Now returns the current time and then advances the clock by one step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Reset moves the clock back to start.
func (c *StepClock) Reset(start time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = start
}
