// Package modkit defines the public contracts of the modweld ecosystem: the
// interfaces contribution declarations must satisfy and the base types that
// generated source embeds. Manifests reference these contracts by name
// (e.g. `extends = "modkit.Module"`), and the generator validates
// declarations against them before emitting anything.
package modkit

// Registry is the surface a contribution wires itself into when the
// generated composition runs.
type Registry interface {
	// Provide registers a named value with the host application.
	Provide(name string, value any)
}

// Module is the contract every library contribution must satisfy.
type Module interface {
	Register(reg Registry)
}

// AppModule is the contract the single application contribution satisfies.
// Configure runs after every library module has registered.
type AppModule interface {
	Module
	Configure(reg Registry)
}

// ModuleName is the qualified contract name library manifests must declare.
const ModuleName = "modkit.Module"

// AppModuleName is the qualified contract name the application manifest must
// declare.
const AppModuleName = "modkit.AppModule"
