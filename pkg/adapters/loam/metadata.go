package loam

// PresetMetadata is the frontmatter of a preset document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type PresetMetadata struct {
	// ID overrides the file name as the preset name.
	ID          string         `json:"id" mapstructure:"id"`
	Unit        string         `json:"unit" mapstructure:"unit"`
	Description string         `json:"description" mapstructure:"description"`
	Params      map[string]any `json:"params" mapstructure:"params"`
}
