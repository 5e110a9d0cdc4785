// Package schema defines the HCL block structures for contribution
// manifests. These types carry gohcl struct tags and nothing else; the hcl
// package translates them into the format-agnostic decl model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// ModuleDecl represents a `module` block: one library- or application-role
// contribution declaration.
type ModuleDecl struct {
	Role        string `hcl:"role,label"`
	Name        string `hcl:"qualified_name,label"`
	Description string `hcl:"description,optional"`
	Extends     string `hcl:"extends"`
}

// ParamDecl defines a single parameter of a contributed builder method.
type ParamDecl struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
}

// MethodDecl represents a `method` block inside an extension declaration.
// Returns is either the literal "builder" or the qualified name of the type
// the method produces.
type MethodDecl struct {
	Name    string       `hcl:"name,label"`
	Params  []*ParamDecl `hcl:"param,block"`
	Returns string       `hcl:"returns,optional"`
}

// ExtensionDecl represents an `extension` block contributing builder
// methods to the generated API surface.
type ExtensionDecl struct {
	Name    string        `hcl:"qualified_name,label"`
	Methods []*MethodDecl `hcl:"method,block"`
}

// ManifestConfig represents the top-level structure of a manifest file.
type ManifestConfig struct {
	Modules    []*ModuleDecl    `hcl:"module,block"`
	Extensions []*ExtensionDecl `hcl:"extension,block"`
	Body       hcl.Body         `hcl:",remain"`
}
