package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/modweld/internal/aggregate"
	"github.com/specialistvlad/modweld/internal/contract"
	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/emit"
	"github.com/specialistvlad/modweld/internal/index"
	"github.com/specialistvlad/modweld/internal/orchestrator"
)

// App encapsulates the generator's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader decl.Loader
	driver *orchestrator.Driver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, a fresh run state,
// and the filesystem-backed index and artifact writer described by the
// configuration.
func NewApp(outW io.Writer, cfg *Config, loader decl.Loader) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.")

	contracts := contract.Default()
	store := index.NewFSStore(cfg.IndexDir)
	generator := emit.NewGenerator(emit.NewFSWriter(cfg.OutDir), cfg.Package, cfg.KitPackage)

	state := aggregate.NewState()
	driver := orchestrator.New(
		state,
		aggregate.NewLibraryAggregator(state, contracts, store),
		aggregate.NewExtensionAggregator(state),
		aggregate.NewAppFinalizer(state, contracts, store, generator),
	)
	logger.Debug("Run state and aggregators wired.",
		"index_dir", cfg.IndexDir,
		"out_dir", cfg.OutDir,
	)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		driver: driver,
	}
}

// Driver returns the application's round driver. This is primarily for
// testing.
func (a *App) Driver() *orchestrator.Driver {
	return a.driver
}
