// Package contract maps declaration roles to the modkit contract a
// declaration with that role must extend. The registry is populated once
// during application startup and consulted by the aggregators when they
// validate conformance.
package contract

import (
	"fmt"

	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/modkit"
)

// Registry holds the required contract name for each declaration role.
type Registry struct {
	required map[decl.Role]string
}

// New creates an empty contract registry.
func New() *Registry {
	return &Registry{required: make(map[decl.Role]string)}
}

// Require registers the contract declarations of the given role must
// extend. Registering a role twice is a programmer error.
func (r *Registry) Require(role decl.Role, contractName string) {
	if _, exists := r.required[role]; exists {
		panic(fmt.Sprintf("contract for role '%s' already registered", role))
	}
	r.required[role] = contractName
}

// Required returns the contract name registered for the role.
func (r *Registry) Required(role decl.Role) (string, bool) {
	name, ok := r.required[role]
	return name, ok
}

// Default returns a registry populated with the standard modkit contracts.
func Default() *Registry {
	r := New()
	r.Require(decl.RoleLibrary, modkit.ModuleName)
	r.Require(decl.RoleApplication, modkit.AppModuleName)
	return r
}
