// Package decl defines the format-agnostic model of contribution
// declarations, along with the Loader interface for reading one pass worth
// of declarations from a configuration source.
//
// A Pass is the unit the orchestrator consumes: a snapshot of the
// declarations that became visible since the previous pass. The aggregators
// and the round driver operate exclusively on this model; concrete loaders,
// such as for HCL, are provided in separate packages.
package decl
