package process

// registry.go - name-keyed process construction.
//
// Variants register a Builder under their config name; Build selects
// one from the deployment config.  Configuration is read permissively:
// a missing, unknown, or wrong-typed field falls back to a default
// rather than failing, so the server always boots with a usable
// process.

// DefaultVariant is the process built when the config names no
// variant, or names one that is not registered.
const DefaultVariant = "counter"

// Builder constructs one process instance from the deployment config.
// Builders must tolerate arbitrary config shapes and default every
// parameter they cannot read.
type Builder func(cfg map[string]interface{}) Process

var builders = map[string]Builder{
	"counter": func(cfg map[string]interface{}) Process {
		return NewCounter(NumberField(cfg, "rate", DefaultCounterRate))
	},
	"decay": func(cfg map[string]interface{}) Process {
		return NewDecay(NumberField(cfg, "rate", DefaultDecayRate))
	},
}

// Register adds a variant builder under the given name, overriding any
// existing registration.  Call during program initialisation, before
// the server starts accepting; the registry is not locked.
func Register(name string, b Builder) {
	builders[name] = b
}

// Variants returns the registered variant names.
func Variants() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	return names
}

// Build constructs a process instance from the deployment config.
// The variant is chosen by the config's "process" field; an absent,
// non-string, or unrecognised name silently selects DefaultVariant.
// Build never fails.
//
// Each call returns an independent instance: the server invokes Build
// once per accepted connection so that connections never share
// process state.
func Build(cfg map[string]interface{}) Process {
	name := DefaultVariant
	if v, ok := cfg["process"].(string); ok && v != "" {
		name = v
	}

	b, ok := builders[name]
	if !ok {
		b = builders[DefaultVariant]
	}
	return b(cfg)
}
