package main

import (
	"errors"
	"os"

	"github.com/alnah/go-guwen"
	"github.com/alnah/go-guwen/internal/config"
)

// Exit codes for the guwen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // Source missing or unreadable, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWritePage) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoDays) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidDay) ||
		errors.Is(err, config.ErrInvalidSite) ||
		errors.Is(err, guwen.ErrStyleNotFound) ||
		errors.Is(err, guwen.ErrTemplateNotFound) ||
		errors.Is(err, guwen.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
