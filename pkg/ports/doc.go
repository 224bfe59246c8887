/*
Package ports defines the driven ports (interfaces) for the extrude engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to publish results to various storage backends and to
read presets from different sources.

# Key Interfaces

  - ResultStore: persists published results (memory, file, redis).
  - PresetLoader: resolves named presets (memory, loam).
  - Engine: what the transports (HTTP, MCP, job runner) drive.

The contract suites in this package (RunResultStoreContract,
RunPresetLoaderContract) are shared by every adapter's tests.
*/
package ports
