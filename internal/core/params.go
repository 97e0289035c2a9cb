package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form or enumerated text parameters.
	ParamTypeString ParamType = "string"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that expose a parameter snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, group := range s.Groups {
		for _, p := range group.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
