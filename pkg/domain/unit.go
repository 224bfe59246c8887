package domain

import "github.com/aretw0/extrude/pkg/schema"

// Unit describes a registered generator for catalogs (CLI, HTTP, MCP).
type Unit struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Params      []schema.Param `json:"params" yaml:"params"`
	// Schema is the type of every parameter, for clients validating input.
	Schema schema.Schema `json:"schema" yaml:"schema"`
}
