package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/modweld/internal/ctxlog"
	"github.com/specialistvlad/modweld/internal/decl"
	"github.com/specialistvlad/modweld/internal/fsutil"
	"github.com/specialistvlad/modweld/internal/schema"
)

// Loader is the HCL implementation of the decl.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl manifest under the given paths and translates the
// declarations into one pass. Paths may be single files or directories.
func (l *Loader) Load(ctx context.Context, paths ...string) (*decl.Pass, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading declaration manifests...", "paths", paths)

	var filePaths []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve manifest path %s: %w", path, err)
		}
		filePaths = append(filePaths, found...)
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in paths", "paths", paths)
		return decl.EmptyPass(), nil
	}

	parser := hclparse.NewParser()
	pass := decl.EmptyPass()

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		var manifest schema.ManifestConfig
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
		}

		for _, m := range manifest.Modules {
			translated, err := l.translateModule(m, filePath)
			if err != nil {
				return nil, err
			}
			pass.Modules = append(pass.Modules, translated)
		}
		for _, e := range manifest.Extensions {
			translated, err := l.translateExtension(ctx, e, filePath)
			if err != nil {
				return nil, err
			}
			pass.Extensions = append(pass.Extensions, translated)
		}
		logger.Debug("Loaded declarations from manifest file", "file", filePath)
	}

	logger.Debug("Manifest loading finished.",
		"modules", len(pass.Modules),
		"extensions", len(pass.Extensions),
	)
	return pass, nil
}
