package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/partbench/internal/app"
	"github.com/specialistvlad/partbench/internal/profile"
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

// Parse processes command-line arguments. It returns a validated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are layered: defaults, then the profile (if any), then every flag
// that was explicitly given on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("partbench", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
partbench - benchmark input generator for resource-constrained graph partitioning.

Writes a connected random weighted graph (<output>) and a per-partition capacity
file (<output> with .txt replaced by _part.txt). Capacities are either derived
from -ratios and -util-rates, or given explicitly with -capacities and checked
against the generated usage.

Usage:
  partbench [options] [PROFILE]

Arguments:
  PROFILE
    Optional path to an .hcl profile or a directory of profiles. Flags given
    on the command line override profile values.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := app.DefaultConfig()
	var flags flagValues
	flags.bind(flagSet, cfg)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if len(args) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	profilePath := flags.profile
	if profilePath == "" && flagSet.NArg() > 0 {
		profilePath = flagSet.Arg(0)
	}
	if profilePath != "" {
		p, err := profile.Load(context.Background(), profilePath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("failed to load profile: %v", err)}
		}
		if err := p.ApplyTo(&cfg); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Profile applied.", "files", p.Files)
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	overrideMode(explicit, &cfg)
	flagSet.Visit(func(f *flag.Flag) {
		flags.apply(f.Name, &cfg)
	})

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
