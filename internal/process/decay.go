package process

// DefaultDecayRate is the decay constant when the deployment config
// does not set one.
const DefaultDecayRate = 0.1

// Decay models a variable that shrinks toward zero, using the first
// order approximation
//
//	value(t+dt) = value(t) - value(t)*rate*dt
//
// clamped at zero so a large interval cannot overshoot into negative
// territory.
type Decay struct {
	rate float64
}

// NewDecay returns a Decay process with the given decay constant.
func NewDecay(rate float64) *Decay {
	return &Decay{rate: rate}
}

func (d *Decay) Inputs() Schema {
	return Schema{
		"value": {Type: "number"},
	}
}

func (d *Decay) Outputs() Schema {
	return Schema{
		"value": {Type: "number", Apply: "set"},
	}
}

// Step applies one decay increment.  A missing or non-numeric value
// reads as 0, which is already the fixed point.
func (d *Decay) Step(state State, interval float64) State {
	current := NumberField(state, "value", 0)
	next := current - current*d.rate*interval
	if current >= 0 && next < 0 {
		next = 0
	}
	return State{"value": next}
}
