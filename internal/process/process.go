// Package process defines the pluggable simulation-step component
// served over the wire protocol.  Each Process encapsulates a single
// state-update behaviour and operates on plain JSON-shaped values
// rather than the connection, which keeps processes testable and
// decoupled from transport details.
package process

// State is one snapshot of simulation variables, as decoded from the
// request's `state` argument.  Values are whatever encoding/json
// produced: float64 for numbers, string, bool, nested maps/slices.
type State = map[string]interface{}

// Descriptor is the static metadata for one state variable.
type Descriptor struct {
	// Type tags the variable's JSON type, e.g. "number".
	Type string `json:"_type"`
	// Apply describes how an output value merges into the state
	// ("set" = overwrite).  Empty for input descriptors.
	Apply string `json:"_apply,omitempty"`
}

// Schema maps variable names to their descriptors.  Schemas are static
// per process variant and safe to serve verbatim any number of times.
type Schema map[string]Descriptor

// Process computes discrete state updates.  Implementations must be
// deterministic given identical (state, interval) and construction
// parameters, and must never fail on malformed state entries —
// unreadable fields substitute a documented default instead.
//
// A Process instance is owned by exactly one connection worker and is
// never shared, so implementations need no internal locking.
type Process interface {
	// Inputs returns the static schema of variables the process reads.
	Inputs() Schema

	// Outputs returns the static schema of variables the process
	// writes, including each variable's merge-apply strategy.
	Outputs() Schema

	// Step computes one update for the given state snapshot and
	// elapsed time, returning only the variables it changed.
	Step(state State, interval float64) State
}

// NumberField reads state[key] as a float64, substituting def when the
// key is absent or holds a non-numeric value.  This is the permissive
// read every process uses instead of failing on malformed input.
func NumberField(state State, key string, def float64) float64 {
	v, ok := state[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}
