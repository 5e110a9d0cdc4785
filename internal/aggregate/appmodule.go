package aggregate

import (
	"context"

	"github.com/specialistvlad/modweld/internal/contract"
	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/emit"
	"github.com/specialistvlad/modweld/internal/index"
)

// Emitter is the surface the finalizer drives to write generated artifacts.
// The concrete implementation lives in the emit package; tests substitute
// their own.
type Emitter interface {
	Composition(ctx context.Context, desc *emit.CompositionDesc) error
	BuilderOptions(ctx context.Context, desc *emit.OptionsDesc) error
	Manager(ctx context.Context, desc *emit.ManagerDesc) error
	ManagerFactory(ctx context.Context) error
	Facade(ctx context.Context, desc *emit.FacadeDesc) error
}

// AppFinalizer tracks the single application-role declaration and, once
// discovery has settled, emits the composition artifact together with the
// merged extension artifacts.
type AppFinalizer struct {
	state     *State
	contracts *contract.Registry
	index     index.Store
	emitter   Emitter
}

// NewAppFinalizer wires a finalizer to the shared run state.
func NewAppFinalizer(state *State, contracts *contract.Registry, store index.Store, emitter Emitter) *AppFinalizer {
	return &AppFinalizer{state: state, contracts: contracts, index: store, emitter: emitter}
}

// ProcessModules records application-role declarations from the pass. A
// second distinct application declaration, in this pass or any later one,
// is a fatal configuration error.
func (f *AppFinalizer) ProcessModules(ctx context.Context, pass *decl.Pass) error {
	logger := ctxlog.FromContext(ctx)
	want, _ := f.contracts.Required(decl.RoleApplication)

	for _, m := range pass.Modules {
		if m.Role != decl.RoleApplication {
			continue
		}
		if m.Extends != want {
			return &ConformanceError{Name: m.Name, File: m.File, Extends: m.Extends, Want: want}
		}
		if f.seen(m.Name) {
			logger.Debug("Application declaration re-seen, skipping.", "name", m.Name)
			continue
		}
		f.state.Apps = append(f.state.Apps, m)
		logger.Debug("Application declaration recorded.", "name", m.Name)
	}

	if len(f.state.Apps) > 1 {
		return &DuplicateRoleError{Role: decl.RoleApplication, Names: f.appNames()}
	}
	return nil
}

// MaybeWriteAppModule emits the composition artifact when exactly one
// application declaration exists. The caller must only invoke it after a
// pass that discovered nothing new. With zero application declarations it
// silently does nothing: a library-only build is valid and simply leaves
// its facts behind for a later application build.
func (f *AppFinalizer) MaybeWriteAppModule(ctx context.Context) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	switch {
	case len(f.state.Apps) == 0:
		logger.Debug("No application declaration discovered, nothing to finalize.")
		return false, nil
	case len(f.state.Apps) > 1:
		return false, &DuplicateRoleError{Role: decl.RoleApplication, Names: f.appNames()}
	}
	app := f.state.Apps[0]

	// The fact set covers this run's writes and any index artifacts left by
	// upstream builds; the reader returns it already sorted, which fixes
	// the invocation order.
	libraries, err := f.index.Facts(ctx, index.NamespaceModules)
	if err != nil {
		return false, err
	}

	// Extension artifacts precede the composition so that the existence of
	// the composition artifact implies a complete artifact set.
	if err := f.writeExtensionArtifacts(ctx); err != nil {
		return false, err
	}

	desc := &emit.CompositionDesc{Libraries: libraries, App: app.Name}
	if err := f.emitter.Composition(ctx, desc); err != nil {
		return false, err
	}

	logger.Info("Composition artifact written.",
		"libraries", len(libraries),
		"application", app.Name,
	)
	return true, nil
}

// writeExtensionArtifacts emits the merged builder API exactly once, from
// the final merge state. Intermediate per-pass writes are deliberately
// avoided; only the finalization-time artifact is authoritative.
func (f *AppFinalizer) writeExtensionArtifacts(ctx context.Context) error {
	merged := f.state.Merged
	if merged.Empty() {
		return nil
	}

	var all, typed []emit.MethodDesc
	for _, m := range merged.Methods() {
		desc := toMethodDesc(m)
		all = append(all, desc)
		if m.Kind == decl.ReturnsType {
			typed = append(typed, desc)
		}
	}

	if err := f.emitter.BuilderOptions(ctx, &emit.OptionsDesc{Methods: all}); err != nil {
		return err
	}
	if len(typed) == 0 {
		return nil
	}
	if err := f.emitter.Manager(ctx, &emit.ManagerDesc{Methods: typed}); err != nil {
		return err
	}
	if err := f.emitter.ManagerFactory(ctx); err != nil {
		return err
	}
	return f.emitter.Facade(ctx, &emit.FacadeDesc{Methods: typed})
}

func (f *AppFinalizer) seen(name string) bool {
	for _, app := range f.state.Apps {
		if app.Name == name {
			return true
		}
	}
	return false
}

func (f *AppFinalizer) appNames() []string {
	names := make([]string, 0, len(f.state.Apps))
	for _, app := range f.state.Apps {
		names = append(names, app.Name)
	}
	return names
}

// toMethodDesc converts a merged method into its emission description.
func toMethodDesc(m *MergedMethod) emit.MethodDesc {
	desc := emit.MethodDesc{
		Name:      m.Name,
		Extension: m.Extension,
	}
	for _, p := range m.Params {
		desc.Params = append(desc.Params, emit.ParamDesc{Name: p.Name, Type: p.Type})
	}
	if m.Kind == decl.ReturnsType {
		desc.Returns = m.Type
	}
	return desc
}
