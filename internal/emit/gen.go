package emit

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
)

// Generator renders artifact descriptions into gofmt'd Go source and hands
// the result to its Writer.
type Generator struct {
	w       Writer
	pkg     string
	kitPath string
}

// NewGenerator creates a generator emitting into the given package name,
// with generated code importing the modkit contracts from kitPath.
func NewGenerator(w Writer, pkg, kitPath string) *Generator {
	return &Generator{w: w, pkg: pkg, kitPath: kitPath}
}

// Composition emits the application-composition artifact.
func (g *Generator) Composition(ctx context.Context, desc *CompositionDesc) error {
	imports := newImportSet()
	model := compositionModel{
		Package:  g.pkg,
		KitAlias: imports.add(g.kitPath),
	}
	for _, lib := range desc.Libraries {
		model.Libraries = append(model.Libraries, symbolRef(lib, imports))
	}
	model.App = symbolRef(desc.App, imports)
	model.Imports = imports.imports()

	return g.render(ctx, FileComposition, tmplComposition, model)
}

// BuilderOptions emits the merged builder-options artifact.
func (g *Generator) BuilderOptions(ctx context.Context, desc *OptionsDesc) error {
	imports := newImportSet()
	model := apiModel{
		Package:  g.pkg,
		KitAlias: imports.add(g.kitPath),
		Methods:  g.methodModels(desc.Methods, imports),
	}
	model.Imports = imports.imports()

	return g.render(ctx, FileOptions, tmplOptions, model)
}

// Manager emits the generated manager artifact.
func (g *Generator) Manager(ctx context.Context, desc *ManagerDesc) error {
	imports := newImportSet()
	model := apiModel{
		Package:  g.pkg,
		KitAlias: imports.add(g.kitPath),
		Methods:  g.methodModels(desc.Methods, imports),
	}
	model.Imports = imports.imports()

	return g.render(ctx, FileManager, tmplManager, model)
}

// ManagerFactory emits the factory artifact producing the generated manager.
func (g *Generator) ManagerFactory(ctx context.Context) error {
	imports := newImportSet()
	model := apiModel{
		Package:  g.pkg,
		KitAlias: imports.add(g.kitPath),
	}
	model.Imports = imports.imports()

	return g.render(ctx, FileManagerFactory, tmplManagerFactory, model)
}

// Facade emits the facade artifact re-exposing the manager's entry points
// as package-level functions. The facade only delegates, so extension
// imports are resolved against a scratch set and never emitted.
func (g *Generator) Facade(ctx context.Context, desc *FacadeDesc) error {
	imports := newImportSet()
	model := apiModel{
		Package:  g.pkg,
		KitAlias: imports.add(g.kitPath),
		Methods:  g.methodModels(desc.Methods, newImportSet()),
	}
	model.Imports = imports.imports()

	return g.render(ctx, FileFacade, tmplFacade, model)
}

// render executes the template, gofmts the result, and writes the artifact.
// A formatting failure means the template produced invalid Go and is always
// a bug, never a user error.
func (g *Generator) render(ctx context.Context, file string, tmpl *template.Template, data any) error {
	logger := ctxlog.FromContext(ctx)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render artifact %s: %w", file, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("artifact %s is not valid Go source: %w", file, err)
	}

	logger.Debug("Artifact rendered.", "file", file)
	return g.w.WriteArtifact(ctx, file, src)
}

// --- render models ---

type compositionModel struct {
	Package   string
	KitAlias  string
	Imports   []importSpec
	Libraries []string
	App       string
}

type apiModel struct {
	Package  string
	KitAlias string
	Imports  []importSpec
	Methods  []methodModel
}

type methodModel struct {
	GoName       string
	RawName      string
	Extension    string
	ExtensionRef string
	Target       string
	Args         string
	ArgNames     string
	CallArgs     string
}

// methodModels converts method descriptions into render models, sorted by
// name so artifacts are reproducible regardless of discovery order. The
// merge stage guarantees names are unique, so the name is a total order.
func (g *Generator) methodModels(methods []MethodDesc, imports *importSet) []methodModel {
	sorted := make([]MethodDesc, len(methods))
	copy(sorted, methods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	models := make([]methodModel, 0, len(sorted))
	for _, m := range sorted {
		var args, names []string
		for _, p := range m.Params {
			args = append(args, p.Name+" "+goTypeFor(p.Type))
			names = append(names, p.Name)
		}

		model := methodModel{
			GoName:       decl.ExportName(m.Name),
			RawName:      m.Name,
			Extension:    m.Extension,
			ExtensionRef: symbolRef(m.Extension, imports),
			Target:       m.Returns,
			Args:         strings.Join(args, ", "),
			ArgNames:     strings.Join(names, ", "),
		}
		if len(names) > 0 {
			model.CallArgs = ", " + strings.Join(names, ", ")
		}
		models = append(models, model)
	}
	return models
}

// symbolRef renders a qualified name as a Go reference, registering the
// import when the name carries a path. Bare names are assumed to live in
// the generated package itself.
func symbolRef(qualified string, imports *importSet) string {
	path, symbol := decl.SplitName(qualified)
	if path == "" {
		return symbol
	}
	return imports.add(path) + "." + symbol
}
