package process

// DefaultCounterRate is the counter's increment rate when the
// deployment config does not set one.
const DefaultCounterRate = 1.0

// Counter is the reference process: a single variable that grows
// linearly with elapsed time,
//
//	counter(t+dt) = counter(t) + rate*dt
type Counter struct {
	rate float64
}

// NewCounter returns a Counter with the given rate.
func NewCounter(rate float64) *Counter {
	return &Counter{rate: rate}
}

// Inputs declares the single tracked variable.
func (c *Counter) Inputs() Schema {
	return Schema{
		"counter": {Type: "number"},
	}
}

// Outputs declares the updated variable; "set" overwrites the previous
// value on merge.
func (c *Counter) Outputs() Schema {
	return Schema{
		"counter": {Type: "number", Apply: "set"},
	}
}

// Step advances the counter.  A missing or non-numeric counter reads
// as 0.
func (c *Counter) Step(state State, interval float64) State {
	current := NumberField(state, "counter", 0)
	return State{"counter": current + c.rate*interval}
}
