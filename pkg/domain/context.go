package domain

// Context is the execution context of a unit run: parameter name to value.
// Units only read it; missing keys fall back to defaults and unknown keys are
// ignored.
type Context map[string]any

// Clone returns a shallow copy. A nil context clones to an empty one.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Merge returns a copy of c overlaid with the entries of over.
func (c Context) Merge(over Context) Context {
	out := c.Clone()
	for k, v := range over {
		out[k] = v
	}
	return out
}
