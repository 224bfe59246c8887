// Package generator implements the parametric units: Frame, Track and Rail.
//
// Every unit runs the same four stages. Parameters are resolved from the
// execution context over named defaults, dimensions are derived by plain
// arithmetic, the solid is built with a fixed pkg/geom pipeline, and the
// solid is bound to the "result" slot of the returned Output.
//
// Units do not validate dimensions. A request the geometry cannot realize
// fails inside pkg/geom and the error is returned unchanged.
package generator
