package orchestrator

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/modweld/internal/aggregate"
	"github.com/specialistvlad/modweld/internal/contract"
	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/emit"
	"github.com/specialistvlad/modweld/internal/index"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// newDriver assembles a driver over in-memory stores, writing artifacts
// through the real generator so finalization exercises actual emission.
func newDriver(t *testing.T) (*Driver, *index.MemStore, *emit.MemWriter) {
	t.Helper()
	state := aggregate.NewState()
	contracts := contract.Default()
	store := index.NewMemStore()
	writer := emit.NewMemWriter()
	gen := emit.NewGenerator(writer, "weld", "github.com/specialistvlad/modweld/modkit")

	driver := New(state,
		aggregate.NewLibraryAggregator(state, contracts, store),
		aggregate.NewExtensionAggregator(state),
		aggregate.NewAppFinalizer(state, contracts, store, gen),
	)
	return driver, store, writer
}

func library(name string) *decl.Module {
	return &decl.Module{Role: decl.RoleLibrary, Name: name, Extends: "modkit.Module"}
}

func application(name string) *decl.Module {
	return &decl.Module{Role: decl.RoleApplication, Name: name, Extends: "modkit.AppModule"}
}

func TestDriver_SettlesAfterQuiescentPass(t *testing.T) {
	t.Parallel()
	ctx := testContext()
	driver, _, writer := newDriver(t)

	// Pass 1: a library and the application become visible.
	more, err := driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{
		library("github.com/acme/analytics.Module"),
		application("github.com/acme/photoapp.App"),
	}})
	require.NoError(t, err)
	assert.True(t, more, "a pass that wrote facts must request another pass")
	assert.Equal(t, PhaseDiscovering, driver.Phase())
	assert.Empty(t, writer.Names(), "nothing is emitted while discovery is live")

	// Pass 2: nothing new, the run settles and emits.
	more, err = driver.RunPass(ctx, decl.EmptyPass())
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, PhaseFinalized, driver.Phase())

	artifact, ok := writer.Artifact("weld_modules.go")
	require.True(t, ok)
	assert.Contains(t, string(artifact), "github.com/acme/analytics")
	assert.Contains(t, string(artifact), "photoapp")
}

func TestDriver_MultiPassDiscovery(t *testing.T) {
	t.Parallel()
	ctx := testContext()
	driver, _, writer := newDriver(t)

	more, err := driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{library("a.LibraryModuleA")}})
	require.NoError(t, err)
	assert.True(t, more)

	more, err = driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{application("a.AppModule")}})
	require.NoError(t, err)
	assert.False(t, more, "an application declaration alone writes no new discovery facts")
	assert.Equal(t, PhaseFinalized, driver.Phase())
	assert.Contains(t, writer.Names(), "weld_modules.go")
}

func TestDriver_LibraryOnlyRunNeverFinalizes(t *testing.T) {
	t.Parallel()
	ctx := testContext()
	driver, store, writer := newDriver(t)

	more, err := driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{library("a.Module")}})
	require.NoError(t, err)
	assert.True(t, more)

	more, err = driver.RunPass(ctx, decl.EmptyPass())
	require.NoError(t, err)
	assert.False(t, more)
	assert.Equal(t, PhaseDiscovering, driver.Phase())
	assert.Empty(t, writer.Names())

	// The durable facts are still behind for a later application build.
	facts, err := store.Facts(ctx, index.NamespaceModules)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Module"}, facts)
}

func TestDriver_DiscoveryAfterFinalizationIsFatal(t *testing.T) {
	t.Parallel()
	ctx := testContext()
	driver, _, _ := newDriver(t)

	_, err := driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{application("a.App")}})
	require.NoError(t, err)
	require.Equal(t, PhaseFinalized, driver.Phase())

	_, err = driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{library("late.Module")}})
	var protoErr *aggregate.ProtocolViolationError
	require.ErrorAs(t, err, &protoErr)
}

func TestDriver_EmptyPassAfterFinalizationIsHarmless(t *testing.T) {
	t.Parallel()
	ctx := testContext()
	driver, _, _ := newDriver(t)

	_, err := driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{application("a.App")}})
	require.NoError(t, err)
	require.Equal(t, PhaseFinalized, driver.Phase())

	more, err := driver.RunPass(ctx, decl.EmptyPass())
	require.NoError(t, err)
	assert.False(t, more)
}

func TestDriver_CompositionOrderIsIndependentOfDiscoveryOrder(t *testing.T) {
	t.Parallel()
	ctx := testContext()

	run := func(order []*decl.Module) string {
		driver, _, writer := newDriver(t)
		_, err := driver.RunPass(ctx, &decl.Pass{Modules: order})
		require.NoError(t, err)
		_, err = driver.RunPass(ctx, decl.EmptyPass())
		require.NoError(t, err)
		artifact, ok := writer.Artifact("weld_modules.go")
		require.True(t, ok)
		return string(artifact)
	}

	forward := run([]*decl.Module{
		library("github.com/acme/a.Module"),
		library("github.com/acme/b.Module"),
		application("github.com/acme/app.App"),
	})
	reversed := run([]*decl.Module{
		application("github.com/acme/app.App"),
		library("github.com/acme/b.Module"),
		library("github.com/acme/a.Module"),
	})

	assert.Equal(t, forward, reversed)
}

func TestDriver_DuplicateApplicationAbortsTheRun(t *testing.T) {
	t.Parallel()
	ctx := testContext()
	driver, _, writer := newDriver(t)

	_, err := driver.RunPass(ctx, &decl.Pass{Modules: []*decl.Module{
		application("a.First"),
		application("a.Second"),
	}})
	var dupErr *aggregate.DuplicateRoleError
	require.ErrorAs(t, err, &dupErr)
	assert.Empty(t, writer.Names())
}
