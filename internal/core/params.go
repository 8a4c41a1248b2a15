package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes enumerated or free-form string parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single configuration value exposed by a simulation.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the resolved configuration of a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, v int, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
}

// StringParam builds a string parameter entry.
func StringParam(key, label, v, desc string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: v, Description: desc}
}

// ParseInt reads cfg[key] as an int accepted by valid, falling back to def.
// A present but unparsable or rejected value is a ConfigError.
func ParseInt(op string, cfg map[string]string, key string, def int, valid func(int) bool) (int, error) {
	v, ok := cfg[key]
	if !ok || v == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def, Configf(op, "%s: %q is not an integer", key, v)
	}
	if valid != nil && !valid(parsed) {
		return def, Configf(op, "%s: %d out of range", key, parsed)
	}
	return parsed, nil
}
