// Package loop drives a simulation at a fixed tick rate from whatever frame
// rate the host manages to deliver.
package loop

import "time"

// Stats counts what a Clock has done since it was created or reset.
type Stats struct {
	Frames    uint64 // Advance calls after the anchoring one
	Ticks     uint64 // ticks handed out
	Dropped   uint64 // whole ticks discarded by the per-frame cap
	LastTicks int    // ticks handed out by the latest Advance
}

// TicksPerFrame is the average number of ticks per frame.
func (s Stats) TicksPerFrame() float64 {
	if s.Frames == 0 {
		return 0
	}
	return float64(s.Ticks) / float64(s.Frames)
}

// Clock is a fixed-timestep accumulator. Each Advance turns the wall time
// elapsed since the time base into whole ticks and moves the base forward
// by exactly those ticks, so the fractional remainder carries into the next
// frame. When more than MaxTicks are due, only MaxTicks run and the excess
// whole ticks are dropped; the remainder is still kept.
//
// Under the cap the carried remainder is elapsed - raw*Tick, not
// elapsed - ticks*Tick: the dropped ticks advance the time base without
// being simulated. Without that, a long stall would replay itself as
// MaxTicks on every following frame. Below the cap raw == ticks and both
// forms agree.
type Clock struct {
	Tick     time.Duration
	MaxTicks int

	base    time.Time
	started bool
	stats   Stats
}

// NewClock creates a clock. maxTicks <= 0 disables the cap.
func NewClock(tick time.Duration, maxTicks int) *Clock {
	return &Clock{Tick: tick, MaxTicks: maxTicks}
}

// Advance reports how many ticks to run for a frame observed at now.
// The first call only anchors the time base and returns 0. Time going
// backwards, or less than one tick elapsing, also yields 0.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.base = now
		c.started = true
		c.stats.LastTicks = 0
		return 0
	}
	c.stats.Frames++
	c.stats.LastTicks = 0

	elapsed := now.Sub(c.base)
	if c.Tick <= 0 || elapsed < c.Tick {
		return 0
	}

	raw := int64(elapsed / c.Tick)
	ticks := raw
	if c.MaxTicks > 0 && ticks > int64(c.MaxTicks) {
		ticks = int64(c.MaxTicks)
		c.stats.Dropped += uint64(raw - ticks) //#nosec G115 -- raw >= ticks
	}
	c.base = c.base.Add(time.Duration(raw) * c.Tick)

	c.stats.Ticks += uint64(ticks) //#nosec G115 -- ticks is positive
	c.stats.LastTicks = int(ticks)
	return int(ticks)
}

// Residual returns the time accumulated toward the next tick as of now.
func (c *Clock) Residual(now time.Time) time.Duration {
	if !c.started {
		return 0
	}
	return max(now.Sub(c.base), 0)
}

// Stats returns the counters.
func (c *Clock) Stats() Stats {
	return c.stats
}

// Reset forgets the time base; the next Advance anchors again.
func (c *Clock) Reset() {
	c.started = false
	c.stats = Stats{}
}
