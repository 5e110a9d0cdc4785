package app

import (
	"errors"
	"fmt"
	"unicode"
)

// Defaults for configuration fields left empty by the caller.
const (
	DefaultIndexDir   = ".weld-index"
	DefaultOutDir     = "weld"
	DefaultPackage    = "weld"
	DefaultKitPackage = "github.com/specialistvlad/modweld/modkit"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// PassPaths is the ordered list of manifest paths, one pass each.
	PassPaths []string

	// IndexDir is the root of the shared marker fact index.
	IndexDir string
	// OutDir is where generated artifacts are written.
	OutDir string
	// Package is the package name of generated artifacts.
	Package string
	// KitPackage is the import path generated code uses for the modkit
	// contracts.
	KitPackage string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the configuration and fills defaulted fields.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.PassPaths) == 0 {
		return nil, errors.New("at least one manifest pass path is required")
	}

	if cfg.IndexDir == "" {
		cfg.IndexDir = DefaultIndexDir
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}
	if cfg.Package == "" {
		cfg.Package = DefaultPackage
	}
	if cfg.KitPackage == "" {
		cfg.KitPackage = DefaultKitPackage
	}

	if !isIdentifier(cfg.Package) {
		return nil, fmt.Errorf("package name %q is not a valid Go identifier", cfg.Package)
	}

	return &cfg, nil
}

// isIdentifier reports whether s is usable as a generated package name.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
			// valid anywhere
		case unicode.IsDigit(r):
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
