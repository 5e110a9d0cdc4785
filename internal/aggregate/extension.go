package aggregate

import (
	"context"

	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
)

// MergedMethod is one method contribution together with the extension that
// contributed it.
type MergedMethod struct {
	*decl.Method
	Extension string
}

// MergedAPI is the union of every extension method contribution seen across
// all passes of one run, keyed by the exported name each method generates.
type MergedAPI struct {
	methods []*MergedMethod
	byName  map[string]*MergedMethod
	seen    map[string]struct{}
}

// NewMergedAPI creates an empty merged API.
func NewMergedAPI() *MergedAPI {
	return &MergedAPI{
		byName: make(map[string]*MergedMethod),
		seen:   make(map[string]struct{}),
	}
}

// Methods returns the merged contributions in discovery order. Emission
// sorts them itself, so discovery order never leaks into artifacts.
func (api *MergedAPI) Methods() []*MergedMethod {
	return api.methods
}

// Empty reports whether no methods have been merged.
func (api *MergedAPI) Empty() bool {
	return len(api.methods) == 0
}

// HasTypedMethods reports whether any merged method is type-returning,
// which decides whether the manager artifacts are generated.
func (api *MergedAPI) HasTypedMethods() bool {
	for _, m := range api.methods {
		if m.Kind == decl.ReturnsType {
			return true
		}
	}
	return false
}

// merge folds one extension declaration into the API. Generated Go exposes
// exactly one entry point per exported name, so any second contribution of
// the same name is a fatal conflict: an identical signature is an ambiguous
// override, and an overload or first-rune case variant cannot be expressed
// in the artifacts at all.
func (api *MergedAPI) merge(ext *decl.Extension) (int, error) {
	api.seen[ext.Name] = struct{}{}

	merged := 0
	for _, m := range ext.Methods {
		goName := decl.ExportName(m.Name)
		if prior, exists := api.byName[goName]; exists {
			return 0, &ConflictingContributionError{
				Prior:     prior.Signature(),
				Signature: m.Signature(),
				First:     prior.Extension,
				Second:    ext.Name,
			}
		}
		mm := &MergedMethod{Method: m, Extension: ext.Name}
		api.byName[goName] = mm
		api.methods = append(api.methods, mm)
		merged++
	}
	return merged, nil
}

// ExtensionAggregator folds extension-role declarations into the run's
// merged builder API.
type ExtensionAggregator struct {
	state *State
}

// NewExtensionAggregator wires an extension aggregator to the shared run state.
func NewExtensionAggregator(state *State) *ExtensionAggregator {
	return &ExtensionAggregator{state: state}
}

// ProcessExtensions merges every extension declaration newly visible in the
// pass. It returns true if it merged at least one method, signaling the
// driver that another pass may be needed. An extension re-seen under the
// same qualified name is a no-op; the store contract says this should not
// happen, but rediscovery must stay harmless.
func (a *ExtensionAggregator) ProcessExtensions(ctx context.Context, pass *decl.Pass) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	var fresh []*decl.Extension
	for _, ext := range pass.Extensions {
		if _, dup := a.state.Merged.seen[ext.Name]; dup {
			logger.Debug("Extension already merged this run, skipping.", "name", ext.Name)
			continue
		}
		fresh = append(fresh, ext)
	}

	if len(fresh) == 0 {
		return false, nil
	}
	if a.state.FinalizationDone {
		return false, &ProtocolViolationError{Activity: "extension declarations"}
	}

	mergedAny := false
	for _, ext := range fresh {
		n, err := a.state.Merged.merge(ext)
		if err != nil {
			return false, err
		}
		if n > 0 {
			mergedAny = true
		}
		logger.Debug("Extension contribution merged.", "name", ext.Name, "methods", n)
	}

	return mergedAny, nil
}
