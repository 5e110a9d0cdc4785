package decl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"
)

// Role distinguishes the kinds of contribution a declaration can make.
type Role string

const (
	// RoleLibrary marks a reusable module contribution shipped by a library.
	RoleLibrary Role = "library"
	// RoleApplication marks the single application-level contribution.
	RoleApplication Role = "application"
)

// Module is one library- or application-role declaration.
type Module struct {
	// Role is the declared contribution role.
	Role Role
	// Name is the qualified name of the contributing Go symbol, e.g.
	// "github.com/acme/clickstream.Module".
	Name string
	// Description is optional human-readable text from the manifest.
	Description string
	// Extends names the modkit contract the declaration claims to satisfy.
	Extends string
	// File is the manifest file the declaration was read from, for
	// diagnostics.
	File string
}

// Extension is one extension-role declaration contributing builder methods.
type Extension struct {
	// Name is the qualified name of the extension symbol.
	Name string
	// Methods is the ordered list of contributed builder methods.
	Methods []*Method
	// File is the manifest file the declaration was read from.
	File string
}

// ReturnKind classifies what a contributed builder method returns.
type ReturnKind int

const (
	// ReturnsBuilder means the method returns the builder itself for
	// chaining.
	ReturnsBuilder ReturnKind = iota
	// ReturnsType means the method produces a request for a specific type
	// and feeds generation of the manager artifact.
	ReturnsType
)

// Method is one contributed builder method.
type Method struct {
	// Name is the manifest-declared method name, e.g. "centerCrop".
	Name string
	// Params is the ordered parameter list.
	Params []*Param
	// Kind classifies the return contract.
	Kind ReturnKind
	// Type is the produced type's qualified name when Kind is ReturnsType.
	Type string
}

// Param is one method parameter.
type Param struct {
	Name string
	Type cty.Type
}

// Signature is the identity of a method for conflict detection: the name
// plus the ordered parameter types. Return kind is deliberately excluded so
// that two extensions cannot contribute the same call shape with different
// return contracts.
func (m *Method) Signature() string {
	var sb strings.Builder
	sb.WriteString(m.Name)
	sb.WriteByte('(')
	for i, p := range m.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.FriendlyName())
	}
	sb.WriteByte(')')
	return sb.String()
}

// ExportName derives the exported Go identifier a method contribution
// generates: "centerCrop" becomes "CenterCrop". Two contributions whose
// names differ only in the first rune's case generate the same identifier.
func ExportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// SplitName splits a qualified symbol name into its import path and symbol
// parts. "github.com/acme/clickstream.Module" yields
// ("github.com/acme/clickstream", "Module"). A name without a dot after the
// last slash is returned as a bare symbol with an empty import path.
func SplitName(qualified string) (importPath, symbol string) {
	slash := strings.LastIndex(qualified, "/")
	dot := strings.Index(qualified[slash+1:], ".")
	if dot < 0 {
		return "", qualified
	}
	dot += slash + 1
	return qualified[:dot], qualified[dot+1:]
}

// Pass is one discrete snapshot of newly visible declarations.
type Pass struct {
	Modules    []*Module
	Extensions []*Extension
}

// Empty reports whether the pass carries no declarations at all.
func (p *Pass) Empty() bool {
	return len(p.Modules) == 0 && len(p.Extensions) == 0
}

// EmptyPass returns a pass with no declarations, used by hosts to signal a
// quiescent round.
func EmptyPass() *Pass {
	return &Pass{}
}
