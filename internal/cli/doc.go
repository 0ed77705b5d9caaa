// Package cli turns the schoolregistry command line into an app.Config.
//
// Supported flags:
//
//	-config PATH        .hcl settings file or directory, may be repeated
//	-export PATH, -o    file the sections are exported to
//	-log-level LEVEL    debug, info, warn or error
//	-log-format FORMAT  text or json
//
// Flags left unset are filled from the settings files and then from the
// defaults. An invalid invocation is reported as an *ExitError with code 2;
// cmd/cli uses code 3 when the settings files cannot be loaded.
package cli
