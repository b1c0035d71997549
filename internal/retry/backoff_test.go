package retry

import (
	"testing"
	"time"
)

func TestBackoff_Sequence(t *testing.T) {
	b := &Backoff{Initial: 10 * time.Millisecond, Max: 80 * time.Millisecond, Multiplier: 2}

	want := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		40 * time.Millisecond,
		80 * time.Millisecond,
		80 * time.Millisecond, // capped
	}
	for i, w := range want {
		if got := b.Next(); got != w {
			t.Errorf("Next() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestBackoff_Reset(t *testing.T) {
	b := &Backoff{Initial: 10 * time.Millisecond, Max: time.Second, Multiplier: 2}

	b.Next()
	b.Next()
	b.Reset()

	if got := b.Next(); got != 10*time.Millisecond {
		t.Errorf("after Reset: Next() = %v, want 10ms", got)
	}
}

func TestBackoff_Defaults(t *testing.T) {
	var b Backoff // zero value picks sane defaults

	first := b.Next()
	if first != 5*time.Millisecond {
		t.Errorf("first delay = %v, want 5ms", first)
	}

	// The cap must hold no matter how many failures accumulate.
	for i := 0; i < 20; i++ {
		if got := b.Next(); got > time.Second {
			t.Fatalf("delay %v exceeds 1s cap", got)
		}
	}
}

func TestBackoff_JitterBounds(t *testing.T) {
	b := &Backoff{Initial: 100 * time.Millisecond, Max: time.Second, Multiplier: 2, Jitter: true}

	for i := 0; i < 50; i++ {
		b.Reset()
		d := b.Next()
		if d < 75*time.Millisecond || d > 125*time.Millisecond {
			t.Fatalf("jittered delay %v outside ±25%% of 100ms", d)
		}
	}
}
