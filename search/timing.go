package search

import (
	"sync"
	"time"

	"github.com/sparktsao/WebSearchPup/models"
)

// Collector records per-step elapsed durations. It is a passive observer: the
// orchestrator works identically with a nil collector, and nothing reads the
// timings back into control flow.
type Collector struct {
	mu      sync.Mutex
	timings models.Timings
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{timings: models.Timings{}}
}

// Track starts timing a step and returns the function that stops it. Nil
// collectors yield a no-op so call sites never branch.
func (c *Collector) Track(step string) func() {
	if c == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.timings[step] = time.Since(start)
	}
}

// Snapshot returns a copy of the recorded timings.
func (c *Collector) Snapshot() models.Timings {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(models.Timings, len(c.timings))
	for k, v := range c.timings {
		out[k] = v
	}
	return out
}
