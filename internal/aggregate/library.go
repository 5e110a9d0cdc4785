package aggregate

import (
	"context"

	"github.com/specialistvlad/modweld/internal/contract"
	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/index"
)

// LibraryAggregator records one durable index fact per library-role
// declaration, so later independent builds can rediscover the contribution
// without re-reading its manifest.
type LibraryAggregator struct {
	state     *State
	contracts *contract.Registry
	index     index.Store
}

// NewLibraryAggregator wires a library aggregator to the shared run state.
func NewLibraryAggregator(state *State, contracts *contract.Registry, store index.Store) *LibraryAggregator {
	return &LibraryAggregator{state: state, contracts: contracts, index: store}
}

// ProcessModules validates every library declaration newly visible in the
// pass and writes one index fact per declaration. It returns true if any
// new fact was written. Declarations already indexed in an earlier pass of
// this run are skipped, keeping rediscovery idempotent.
func (a *LibraryAggregator) ProcessModules(ctx context.Context, pass *decl.Pass) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	var fresh []*decl.Module
	for _, m := range pass.Modules {
		if m.Role != decl.RoleLibrary {
			continue
		}
		if a.state.alreadyIndexed(m.Name) {
			logger.Debug("Library already indexed this run, skipping.", "name", m.Name)
			continue
		}
		fresh = append(fresh, m)
	}

	if len(fresh) == 0 {
		return false, nil
	}
	if a.state.FinalizationDone {
		return false, &ProtocolViolationError{Activity: "library declarations"}
	}

	// Validate the whole pass before writing anything, so a conformance
	// failure never leaves a partial fact set behind.
	want, _ := a.contracts.Required(decl.RoleLibrary)
	for _, m := range fresh {
		if m.Extends != want {
			return false, &ConformanceError{Name: m.Name, File: m.File, Extends: m.Extends, Want: want}
		}
	}

	for _, m := range fresh {
		if err := a.index.WriteFact(ctx, index.NamespaceModules, m.Name); err != nil {
			return false, err
		}
		a.state.markIndexed(m.Name)
		logger.Debug("Library contribution indexed.", "name", m.Name)
	}

	logger.Info("Library contributions indexed.", "count", len(fresh))
	return true, nil
}
