package domain

// Preset is a named execution context for one unit, e.g. a worn rail.
type Preset struct {
	Name        string  `json:"name" yaml:"name"`
	Unit        string  `json:"unit" yaml:"unit"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Params      Context `json:"params" yaml:"params"`
}
