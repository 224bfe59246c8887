/*
Package observability turns engine lifecycle events into logs and metrics.

Both LoggingHooks and Metrics.Hooks return domain.LifecycleHooks, so they can
be combined with domain.ChainHooks and passed to extrude.WithLifecycleHooks.
*/
package observability
