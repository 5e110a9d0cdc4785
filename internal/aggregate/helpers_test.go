package aggregate

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/emit"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func libraryDecl(name string) *decl.Module {
	return &decl.Module{
		Role:    decl.RoleLibrary,
		Name:    name,
		Extends: "modkit.Module",
		File:    "manifest.hcl",
	}
}

func appDecl(name string) *decl.Module {
	return &decl.Module{
		Role:    decl.RoleApplication,
		Name:    name,
		Extends: "modkit.AppModule",
		File:    "manifest.hcl",
	}
}

// recordingEmitter captures emission calls in order so tests can assert on
// the artifact set and its sequencing without rendering Go source.
type recordingEmitter struct {
	calls       []string
	composition *emit.CompositionDesc
	options     *emit.OptionsDesc
	manager     *emit.ManagerDesc
	facade      *emit.FacadeDesc
}

func (r *recordingEmitter) Composition(ctx context.Context, desc *emit.CompositionDesc) error {
	r.calls = append(r.calls, "composition")
	r.composition = desc
	return nil
}

func (r *recordingEmitter) BuilderOptions(ctx context.Context, desc *emit.OptionsDesc) error {
	r.calls = append(r.calls, "options")
	r.options = desc
	return nil
}

func (r *recordingEmitter) Manager(ctx context.Context, desc *emit.ManagerDesc) error {
	r.calls = append(r.calls, "manager")
	r.manager = desc
	return nil
}

func (r *recordingEmitter) ManagerFactory(ctx context.Context) error {
	r.calls = append(r.calls, "factory")
	return nil
}

func (r *recordingEmitter) Facade(ctx context.Context, desc *emit.FacadeDesc) error {
	r.calls = append(r.calls, "facade")
	r.facade = desc
	return nil
}
