package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestSplitName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		qualified  string
		importPath string
		symbol     string
	}{
		{
			name:       "full import path with symbol",
			qualified:  "github.com/acme/clickstream.Module",
			importPath: "github.com/acme/clickstream",
			symbol:     "Module",
		},
		{
			name:       "short path",
			qualified:  "photofx.CropExtension",
			importPath: "photofx",
			symbol:     "CropExtension",
		},
		{
			name:       "bare symbol",
			qualified:  "LibraryModuleA",
			importPath: "",
			symbol:     "LibraryModuleA",
		},
		{
			name:       "dotted host without symbol dot after slash",
			qualified:  "example.com/mod.Thing",
			importPath: "example.com/mod",
			symbol:     "Thing",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path, symbol := SplitName(tc.qualified)
			assert.Equal(t, tc.importPath, path)
			assert.Equal(t, tc.symbol, symbol)
		})
	}
}

func TestMethodSignature(t *testing.T) {
	t.Parallel()

	m := &Method{
		Name: "centerCrop",
		Params: []*Param{
			{Name: "size", Type: cty.Number},
			{Name: "label", Type: cty.String},
		},
	}
	assert.Equal(t, "centerCrop(number, string)", m.Signature())

	noParams := &Method{Name: "fitCenter"}
	assert.Equal(t, "fitCenter()", noParams.Signature())
}

func TestMethodSignature_IgnoresReturnKind(t *testing.T) {
	t.Parallel()

	builder := &Method{Name: "asGif", Kind: ReturnsBuilder}
	typed := &Method{Name: "asGif", Kind: ReturnsType, Type: "gif.Drawable"}
	assert.Equal(t, builder.Signature(), typed.Signature())
}

func TestExportName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CenterCrop", ExportName("centerCrop"))
	assert.Equal(t, "Resize", ExportName("Resize"))
	assert.Equal(t, "", ExportName(""))
	assert.Equal(t, ExportName("centerCrop"), ExportName("CenterCrop"),
		"first-rune case variants export identically")
}

func TestPassEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, EmptyPass().Empty())
	assert.False(t, (&Pass{Modules: []*Module{{Name: "x"}}}).Empty())
	assert.False(t, (&Pass{Extensions: []*Extension{{Name: "x"}}}).Empty())
}
