// Package retry provides exponential backoff for resilient network
// operations, primarily the accept loop's handling of temporary
// errors (e.g. fd exhaustion).
package retry

import (
	"math"
	"math/rand"
	"time"
)

// Backoff computes an exponentially increasing delay sequence with
// optional jitter.  It is a simple value type: call Next for each
// consecutive failure and Reset after a success.
type Backoff struct {
	// Initial is the delay after the first failure (default 5ms).
	Initial time.Duration
	// Max caps the delay (default 1s).
	Max time.Duration
	// Multiplier increases the delay each failure (default 2.0).
	Multiplier float64
	// Jitter adds ±25% randomisation to prevent thundering herd.
	Jitter bool

	current time.Duration
}

// DefaultBackoff returns the configuration used by the accept loop:
// 5ms doubling to a 1s cap, matching the conventional retry curve for
// temporary accept errors.
func DefaultBackoff() *Backoff {
	return &Backoff{
		Initial:    5 * time.Millisecond,
		Max:        time.Second,
		Multiplier: 2.0,
	}
}

// Next returns the delay to wait before the next attempt, advancing
// the internal sequence.
func (b *Backoff) Next() time.Duration {
	initial := b.Initial
	if initial <= 0 {
		initial = 5 * time.Millisecond
	}
	multiplier := b.Multiplier
	if multiplier <= 1 {
		multiplier = 2.0
	}
	max := b.Max
	if max <= 0 {
		max = time.Second
	}

	if b.current == 0 {
		b.current = initial
	} else {
		b.current = time.Duration(float64(b.current) * multiplier)
	}
	if b.current > max {
		b.current = max
	}

	if b.Jitter {
		return addJitter(b.current)
	}
	return b.current
}

// Reset rewinds the sequence to its initial delay.
func (b *Backoff) Reset() { b.current = 0 }

// addJitter adds ±25% randomisation to a duration.
func addJitter(d time.Duration) time.Duration {
	quarter := float64(d) * 0.25
	delta := (rand.Float64() * 2 * quarter) - quarter
	return time.Duration(math.Max(float64(d)+delta, float64(time.Millisecond)))
}
