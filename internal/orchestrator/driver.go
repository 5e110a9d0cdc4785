package orchestrator

import (
	"context"

	"github.com/specialistvlad/modweld/internal/aggregate"
	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
)

// Phase is the driver's position in the discovery protocol.
type Phase int

const (
	// PhaseDiscovering means passes are still being aggregated.
	PhaseDiscovering Phase = iota
	// PhaseFinalized means the composition artifact has been written; the
	// phase is terminal.
	PhaseFinalized
)

// String returns the phase name for logs.
func (p Phase) String() string {
	if p == PhaseFinalized {
		return "finalized"
	}
	return "discovering"
}

// Driver sequences the aggregators over discrete passes.
type Driver struct {
	state     *aggregate.State
	libraries *aggregate.LibraryAggregator
	exts      *aggregate.ExtensionAggregator
	finalizer *aggregate.AppFinalizer
}

// New creates a driver over the shared run state and its aggregators.
func New(state *aggregate.State, libraries *aggregate.LibraryAggregator, exts *aggregate.ExtensionAggregator, finalizer *aggregate.AppFinalizer) *Driver {
	return &Driver{state: state, libraries: libraries, exts: exts, finalizer: finalizer}
}

// Phase reports the driver's current phase.
func (d *Driver) Phase() Phase {
	if d.state.FinalizationDone {
		return PhaseFinalized
	}
	return PhaseDiscovering
}

// RunPass aggregates one pass. The returned boolean tells the host whether
// another pass is required: true after any pass that recorded new facts,
// false once the run has settled. Any fatal error aborts the whole build;
// there is no partial recovery.
func (d *Driver) RunPass(ctx context.Context, pass *decl.Pass) (bool, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Pass started.",
		"phase", d.Phase().String(),
		"modules", len(pass.Modules),
		"extensions", len(pass.Extensions),
	)

	newModules, err := d.libraries.ProcessModules(ctx, pass)
	if err != nil {
		return false, err
	}
	newMethods, err := d.exts.ProcessExtensions(ctx, pass)
	if err != nil {
		return false, err
	}
	if err := d.finalizer.ProcessModules(ctx, pass); err != nil {
		return false, err
	}

	if newModules || newMethods {
		logger.Debug("Pass recorded new facts, requesting another pass.")
		return true, nil
	}

	if d.state.FinalizationDone {
		return false, nil
	}

	wrote, err := d.finalizer.MaybeWriteAppModule(ctx)
	if err != nil {
		return false, err
	}
	if wrote {
		d.state.FinalizationDone = true
		logger.Info("Run finalized, no further generation allowed.")
	}
	return false, nil
}
