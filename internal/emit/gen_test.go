package emit

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/modweld/internal/ctxlog"
)

const kitPath = "github.com/specialistvlad/modweld/modkit"

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func newTestGenerator() (*Generator, *MemWriter) {
	w := NewMemWriter()
	return NewGenerator(w, "weld", kitPath), w
}

func artifact(t *testing.T, w *MemWriter, name string) string {
	t.Helper()
	data, ok := w.Artifact(name)
	require.True(t, ok, "artifact %s was not written", name)
	return string(data)
}

func TestGenerator_Composition(t *testing.T) {
	t.Parallel()
	gen, w := newTestGenerator()

	err := gen.Composition(testContext(), &CompositionDesc{
		Libraries: []string{
			"github.com/acme/analytics.Module",
			"github.com/acme/cache.Module",
		},
		App: "github.com/acme/photoapp.App",
	})
	require.NoError(t, err)

	src := artifact(t, w, FileComposition)
	assert.Contains(t, src, "// Code generated by modweld; DO NOT EDIT.")
	assert.Contains(t, src, "package weld")
	assert.Contains(t, src, `modkit "`+kitPath+`"`)
	assert.Contains(t, src, "func Init(reg modkit.Registry)")
	assert.Contains(t, src, "new(analytics.Module).Register(reg)")
	assert.Contains(t, src, "new(cache.Module).Register(reg)")
	assert.Contains(t, src, "app := new(photoapp.App)")
	assert.Contains(t, src, "app.Configure(reg)")

	// Libraries are invoked in the order the description fixed.
	assert.Less(t,
		strings.Index(src, "analytics.Module"),
		strings.Index(src, "cache.Module"),
	)
}

func TestGenerator_Composition_BareSymbols(t *testing.T) {
	t.Parallel()
	gen, w := newTestGenerator()

	err := gen.Composition(testContext(), &CompositionDesc{
		Libraries: []string{"LibraryModuleA"},
		App:       "AppModule",
	})
	require.NoError(t, err)

	src := artifact(t, w, FileComposition)
	assert.Contains(t, src, "new(LibraryModuleA).Register(reg)")
	assert.Contains(t, src, "app := new(AppModule)")
}

func TestGenerator_BuilderOptions(t *testing.T) {
	t.Parallel()
	gen, w := newTestGenerator()

	err := gen.BuilderOptions(testContext(), &OptionsDesc{Methods: []MethodDesc{
		{
			Name:      "resize",
			Extension: "github.com/acme/fx.CropExtension",
			Params: []ParamDesc{
				{Name: "width", Type: cty.Number},
				{Name: "labels", Type: cty.List(cty.String)},
			},
		},
		{
			Name:      "centerCrop",
			Extension: "github.com/acme/fx.CropExtension",
		},
	}})
	require.NoError(t, err)

	src := artifact(t, w, FileOptions)
	assert.Contains(t, src, "type Options struct {\n\tmodkit.Options\n}")
	assert.Contains(t, src, "func (o *Options) Resize(width float64, labels []string) *Options")
	assert.Contains(t, src, "fx.CropExtension{}.Resize(&o.Options, width, labels)")
	assert.Contains(t, src, "func WithResize(width float64, labels []string) *Options")
	assert.Contains(t, src, "func (o *Options) CenterCrop() *Options")
	assert.Contains(t, src, "fx.CropExtension{}.CenterCrop(&o.Options)")

	// Methods are emitted in name order, not declaration order.
	assert.Less(t,
		strings.Index(src, "func (o *Options) CenterCrop"),
		strings.Index(src, "func (o *Options) Resize"),
	)
}

func TestGenerator_Manager(t *testing.T) {
	t.Parallel()
	gen, w := newTestGenerator()

	err := gen.Manager(testContext(), &ManagerDesc{Methods: []MethodDesc{
		{
			Name:      "asGif",
			Extension: "github.com/acme/fx.GifExtension",
			Returns:   "github.com/acme/gif.Drawable",
		},
	}})
	require.NoError(t, err)

	src := artifact(t, w, FileManager)
	assert.Contains(t, src, "type Manager struct {\n\tmodkit.Manager\n}")
	assert.Contains(t, src, "func (m *Manager) AsGif() *modkit.Request")
	assert.Contains(t, src, `req := m.NewRequest("github.com/acme/gif.Drawable")`)
	assert.Contains(t, src, "fx.GifExtension{}.AsGif(req.Options)")
}

func TestGenerator_ManagerFactory(t *testing.T) {
	t.Parallel()
	gen, w := newTestGenerator()

	require.NoError(t, gen.ManagerFactory(testContext()))

	src := artifact(t, w, FileManagerFactory)
	assert.Contains(t, src, "func (managerFactory) Build() any")
	assert.Contains(t, src, "return NewManager()")
	assert.Contains(t, src, "func NewManagerFactory() modkit.ManagerFactory")
}

func TestGenerator_Facade(t *testing.T) {
	t.Parallel()
	gen, w := newTestGenerator()

	err := gen.Facade(testContext(), &FacadeDesc{Methods: []MethodDesc{
		{
			Name:      "asGif",
			Extension: "github.com/acme/fx.GifExtension",
			Returns:   "github.com/acme/gif.Drawable",
		},
	}})
	require.NoError(t, err)

	src := artifact(t, w, FileFacade)
	assert.Contains(t, src, "func AsGif() *modkit.Request")
	assert.Contains(t, src, "return NewManager().AsGif()")
	assert.NotContains(t, src, "acme/fx", "the facade only delegates and must not import extensions")
}

func TestGenerator_ImportCollisions(t *testing.T) {
	t.Parallel()
	gen, w := newTestGenerator()

	err := gen.Composition(testContext(), &CompositionDesc{
		Libraries: []string{
			"github.com/acme/fx.Module",
			"github.com/other/fx.Module",
		},
		App: "github.com/acme/app.App",
	})
	require.NoError(t, err)

	src := artifact(t, w, FileComposition)
	assert.Contains(t, src, `fx "github.com/acme/fx"`)
	assert.Contains(t, src, `fx2 "github.com/other/fx"`)
	assert.Contains(t, src, "new(fx2.Module).Register(reg)")
}

func TestGenerator_ArtifactsAreDeterministic(t *testing.T) {
	t.Parallel()

	methods := []MethodDesc{
		{Name: "b", Extension: "fx.Ext"},
		{Name: "a", Extension: "fx.Ext"},
	}
	reversed := []MethodDesc{methods[1], methods[0]}

	genA, wA := newTestGenerator()
	require.NoError(t, genA.BuilderOptions(testContext(), &OptionsDesc{Methods: methods}))

	genB, wB := newTestGenerator()
	require.NoError(t, genB.BuilderOptions(testContext(), &OptionsDesc{Methods: reversed}))

	assert.Equal(t, artifact(t, wA, FileOptions), artifact(t, wB, FileOptions))
}

func TestGenerator_CustomPackageName(t *testing.T) {
	t.Parallel()
	w := NewMemWriter()
	gen := NewGenerator(w, "generated", kitPath)

	require.NoError(t, gen.ManagerFactory(testContext()))
	assert.Contains(t, artifact(t, w, FileManagerFactory), "package generated")
}
