// This file contains the logic for translating HCL schema structs into the
// format-agnostic declaration model defined in the decl package.

package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/schema"
)

// returnsBuilder is the manifest keyword for chainable builder methods. Any
// other non-empty value names the type a method produces.
const returnsBuilder = "builder"

// translateModule converts an HCL module block into the agnostic model.
func (l *Loader) translateModule(m *schema.ModuleDecl, filePath string) (*decl.Module, error) {
	role := decl.Role(m.Role)
	switch role {
	case decl.RoleLibrary, decl.RoleApplication:
		// valid
	default:
		return nil, fmt.Errorf("in %s: unknown module role %q for '%s' (expected 'library' or 'application')", filePath, m.Role, m.Name)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("in %s: module block is missing a qualified name", filePath)
	}

	return &decl.Module{
		Role:        role,
		Name:        m.Name,
		Description: m.Description,
		Extends:     m.Extends,
		File:        filePath,
	}, nil
}

// translateExtension converts an HCL extension block into the agnostic model.
func (l *Loader) translateExtension(ctx context.Context, e *schema.ExtensionDecl, filePath string) (*decl.Extension, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("in %s: extension block is missing a qualified name", filePath)
	}
	if len(e.Methods) == 0 {
		return nil, fmt.Errorf("in %s: extension '%s' declares no methods", filePath, e.Name)
	}

	ext := &decl.Extension{
		Name: e.Name,
		File: filePath,
	}
	for _, m := range e.Methods {
		translated, err := l.translateMethod(ctx, m, e.Name)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filePath, err)
		}
		ext.Methods = append(ext.Methods, translated)
	}
	return ext, nil
}

// translateMethod converts a single method block, parsing each parameter's
// type expression and classifying the return contract.
func (l *Loader) translateMethod(ctx context.Context, m *schema.MethodDecl, owner string) (*decl.Method, error) {
	method := &decl.Method{Name: m.Name}

	if m.Name == "" {
		return nil, fmt.Errorf("extension '%s' declares a method without a name", owner)
	}

	seen := make(map[string]struct{}, len(m.Params))
	for _, p := range m.Params {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("extension '%s', method '%s': duplicate parameter '%s'", owner, m.Name, p.Name)
		}
		seen[p.Name] = struct{}{}

		paramType, err := typeExprToCtyType(ctx, p.Type)
		if err != nil {
			return nil, fmt.Errorf("extension '%s', method '%s', param '%s': %w", owner, m.Name, p.Name, err)
		}
		method.Params = append(method.Params, &decl.Param{Name: p.Name, Type: paramType})
	}

	switch m.Returns {
	case "", returnsBuilder:
		method.Kind = decl.ReturnsBuilder
	default:
		method.Kind = decl.ReturnsType
		method.Type = m.Returns
	}
	return method, nil
}
