// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading settings from
// files.
//
// The `config.Model` carries only what the settings files may say; command
// line flags take precedence over it and defaults fill whatever neither
// source sets. Concrete implementations of the Loader, such as for HCL, are
// provided in separate packages.
package config
