package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/modweld/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("modweld", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
modweld - a build-time composition generator for contribution manifests.

Usage:
  modweld [options] PASS_PATH...

Arguments:
  PASS_PATH
    Path to a .hcl manifest file or a directory of manifests. Each path is
    fed to the orchestrator as one discovery pass, in order.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an optional modweld.toml configuration file.")
	indexDirFlag := flagSet.String("index-dir", "", "Root directory of the shared marker fact index.")
	outDirFlag := flagSet.String("out-dir", "", "Directory generated artifacts are written to.")
	packageFlag := flagSet.String("package", "", "Package name for generated artifacts.")
	kitPkgFlag := flagSet.String("kit-pkg", "", "Import path generated code uses for the modkit contracts.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' (default) or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info' (default), 'warn', or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := app.Config{
		PassPaths:  flagSet.Args(),
		IndexDir:   *indexDirFlag,
		OutDir:     *outDirFlag,
		Package:    *packageFlag,
		KitPackage: *kitPkgFlag,
		LogFormat:  *logFormatFlag,
		LogLevel:   *logLevelFlag,
	}

	if *configFlag != "" {
		fileCfg, err := app.LoadFileConfig(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		fileCfg.Apply(&cfg)
		slog.Debug("Configuration file applied.", "path", *configFlag)
	}

	// Logging values are validated on the merged result so a file-provided
	// value is checked the same way a flag is; defaults fill in last.
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if len(cfg.PassPaths) == 0 {
		slog.Debug("No pass paths provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
