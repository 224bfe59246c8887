/*
Package domain contains the core models shared by the extrude engine, its
generator units and its adapters.

It defines what flows between a caller and a unit run: the execution
context handed in, and the published result handed back. This package is
kept pure and free of external dependencies like I/O, persistence or
geometry, following Hexagonal Architecture principles.

# Key Entities

  - Context: the read-only parameter map supplied to a unit run.
  - Result: the publication record bound to the "result" output slot.
  - SolidSummary: a serializable description of the produced solid.
  - Preset: a named, reusable execution context for one unit.
  - GenerateEvent: emitted around every unit run for observability.
*/
package domain
