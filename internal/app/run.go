package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/orchestrator"
)

// Run feeds each configured manifest path to the driver as one pass, then
// supplies quiescent passes until the driver settles. The run either
// completes fully or fails fatally; there is no partial recovery.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "passes", len(a.config.PassPaths))

	for i, path := range a.config.PassPaths {
		pass, err := a.loader.Load(ctx, path)
		if err != nil {
			return fmt.Errorf("pass %d (%s): %w", i+1, path, err)
		}
		more, err := a.driver.RunPass(ctx, pass)
		if err != nil {
			return fmt.Errorf("pass %d (%s): %w", i+1, path, err)
		}
		a.logger.Debug("Pass completed.", "pass", i+1, "more_needed", more)
	}

	// The supplied passes are exhausted; feed empty passes until the driver
	// stops asking for more. This mirrors the empty final round a compiler
	// host would deliver and is what triggers finalization.
	for {
		more, err := a.driver.RunPass(ctx, decl.EmptyPass())
		if err != nil {
			return fmt.Errorf("final pass: %w", err)
		}
		if !more {
			break
		}
	}

	if a.driver.Phase() == orchestrator.PhaseFinalized {
		a.logger.Info("Generation complete, composition artifact emitted.", "out_dir", a.config.OutDir)
	} else {
		a.logger.Info("Library-only build, index facts recorded for a later application build.", "index_dir", a.config.IndexDir)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
