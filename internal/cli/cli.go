package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/schoolregistry/internal/app"
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

// settingsPaths collects repeated -config flags.
type settingsPaths []string

func (s *settingsPaths) String() string { return strings.Join(*s, ",") }

func (s *settingsPaths) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags that are not given stay empty so settings files can fill them.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("schoolregistry", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
SchoolRegistry - An interactive registry of students, teachers, subjects and sections.

Usage:
  schoolregistry [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	var configFlags settingsPaths
	flagSet.Var(&configFlags, "config", "Path to an .hcl settings file or directory. May be repeated.")
	exportFlag := flagSet.String("export", "", "File the sections are exported to (default \"sections.json\").")
	oFlag := flagSet.String("o", "", "File the sections are exported to (shorthand).")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json' (default \"text\").")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error' (default \"warn\").")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	exportPath := *exportFlag
	if exportPath == "" {
		exportPath = *oFlag
	}

	config, err := app.NewConfig(app.Config{
		SettingsPaths: configFlags,
		ExportPath:    strings.TrimSpace(exportPath),
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
