// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/template, internal/cmd/config).
package cmdtypes

import (
	"github.com/quandora/grunt-umd-wrapper/internal/config"
	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded config file; never nil after startup.
	Config *config.Config

	// Resolved holds the global values with their sources.
	Resolved *config.ResolvedConfig

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// ConfigFlag is the raw --config flag value.
	ConfigFlag string

	Verbose bool
}

// AnnotationCreatesConfig marks a command that writes the config file, so an
// explicit --config path for it need not exist yet.
const AnnotationCreatesConfig = "umdwrap/creates-config"

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
