package app

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the layout of an optional modweld.toml tool
// configuration file. CLI flags always win over file values.
type FileConfig struct {
	Passes     []string `toml:"passes"`
	IndexDir   string   `toml:"index_dir"`
	OutDir     string   `toml:"out_dir"`
	Package    string   `toml:"package"`
	KitPackage string   `toml:"kit_package"`
	LogFormat  string   `toml:"log_format"`
	LogLevel   string   `toml:"log_level"`
}

// LoadFileConfig reads and decodes a TOML tool configuration file. Unknown
// keys are an error so typos fail loudly instead of being ignored.
func LoadFileConfig(path string) (*FileConfig, error) {
	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config file %s has unknown key %q", path, undecoded[0].String())
	}
	return &fc, nil
}

// Apply copies file values into any Config field the caller left empty.
func (fc *FileConfig) Apply(cfg *Config) {
	if len(cfg.PassPaths) == 0 {
		cfg.PassPaths = fc.Passes
	}
	if cfg.IndexDir == "" {
		cfg.IndexDir = fc.IndexDir
	}
	if cfg.OutDir == "" {
		cfg.OutDir = fc.OutDir
	}
	if cfg.Package == "" {
		cfg.Package = fc.Package
	}
	if cfg.KitPackage == "" {
		cfg.KitPackage = fc.KitPackage
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = fc.LogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = fc.LogLevel
	}
}
