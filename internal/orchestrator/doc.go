// Package orchestrator drives the round-based discovery protocol. The host
// supplies one pass at a time; the driver runs the aggregators over it and
// reports whether another pass is required. Once a pass discovers nothing
// new and an application declaration exists, the finalizer writes the
// composition artifact and the driver enters its terminal phase, after
// which any further discovery is a protocol violation.
package orchestrator
