package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/matprops/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("matprops", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
matprops - standards-compliant structural material property lookup.

Usage:
  matprops [options] list
  matprops [options] show KEY
  matprops [options] resolve KEY PROPERTY

Commands:
  list                 Print every material key in the loaded documents.
  show KEY             Print a material's identity and property names.
  resolve KEY PROPERTY Resolve a property value. Thickness-banded
                       properties require -thickness; scalar ones
                       reject it. Options come before the command.

Options:
`)
		flagSet.PrintDefaults()
	}

	materialsFlag := flagSet.String("materials", "materials", "Path to a material document file or directory.")
	thicknessFlag := flagSet.Float64("thickness", 0, "Thickness in metres, for banded properties.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	// A thickness of zero is never valid for a banded property, so treat
	// the flag as "supplied" only when it was set explicitly.
	var thickness *float64
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "thickness" {
			thickness = thicknessFlag
		}
	})

	positional := flagSet.Args()
	cfg := app.Config{
		MaterialsPath: *materialsFlag,
		Command:       positional[0],
		Thickness:     thickness,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	}
	if len(positional) > 1 {
		cfg.Key = positional[1]
	}
	if len(positional) > 2 {
		cfg.Property = positional[2]
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
