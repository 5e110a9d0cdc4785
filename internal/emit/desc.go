package emit

import "github.com/zclconf/go-cty/cty"

// Artifact file names. The weld_ prefix marks files owned by the generator
// regardless of the configured package name.
const (
	FileComposition    = "weld_modules.go"
	FileOptions        = "weld_options.go"
	FileManager        = "weld_manager.go"
	FileManagerFactory = "weld_manager_factory.go"
	FileFacade         = "weld_facade.go"
)

// CompositionDesc describes the application-composition artifact: every
// library contribution plus the single application contribution, by
// qualified name. Libraries must already be in the order they are to be
// invoked.
type CompositionDesc struct {
	Libraries []string
	App       string
}

// ParamDesc is one parameter of a contributed builder method.
type ParamDesc struct {
	Name string
	Type cty.Type
}

// MethodDesc is one contributed builder method, ready for emission.
type MethodDesc struct {
	// Name is the manifest-declared method name, e.g. "centerCrop".
	Name string
	// Extension is the qualified name of the contributing symbol.
	Extension string
	// Params is the ordered parameter list.
	Params []ParamDesc
	// Returns is empty for chainable builder methods, otherwise the
	// qualified name of the produced type.
	Returns string
}

// OptionsDesc describes the merged builder-options artifact.
type OptionsDesc struct {
	Methods []MethodDesc
}

// ManagerDesc describes the generated manager artifact; every method is
// type-returning.
type ManagerDesc struct {
	Methods []MethodDesc
}

// FacadeDesc describes the facade artifact re-exposing the manager's entry
// points as package-level functions.
type FacadeDesc struct {
	Methods []MethodDesc
}
