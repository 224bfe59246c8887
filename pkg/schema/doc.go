// Package schema validates the dynamically typed parameter maps handed to
// generator units.
//
// A Schema maps field names to types. Parameters are numeric, so the
// built-in type is Number, which accepts every Go integer and float kind as
// well as json.Number:
//
//	params := []schema.Param{
//	    {Name: "extrusion_length", Default: 150},
//	    {Name: "profile_scale", Default: 1},
//	}
//
//	if err := schema.ValidateParams(params, map[string]any{"profile_scale": "big"}); err != nil {
//	    // err is an *AggregateError holding one *ValidationError
//	}
//
// Only fields present in the data are checked; missing fields fall back to
// their defaults and unknown fields are ignored.
//
// A Schema serializes as a field name -> type name map, which is how unit
// catalogs publish it:
//
//	{"extrusion_length": "number", "profile_scale": "number"}
//
// The package depends only on the standard library.
package schema
