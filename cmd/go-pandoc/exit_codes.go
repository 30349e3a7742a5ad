package main

import (
	"errors"
	"os"

	pandoc "github.com/alnah/go-pandoc"
)

// Exit codes for the go-pandoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful conversion
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, profile, or builder misuse
	ExitIO        = 3 // File not found, permission denied, pandoc missing
	ExitConverter = 4 // pandoc ran and failed, or produced undecodable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is/As to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Converter failures (exit 4)
	var exitErr *pandoc.ExitError
	var utf8Err *pandoc.InvalidUTF8Error
	if errors.As(err, &exitErr) || errors.As(err, &utf8Err) {
		return ExitConverter
	}

	// I/O errors (exit 3)
	if errors.Is(err, pandoc.ErrPandocNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/profile/builder errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrNoDumpOutput) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrEmptyProfileName) ||
		errors.Is(err, ErrProfileParse) ||
		errors.Is(err, pandoc.ErrNoInput) ||
		errors.Is(err, pandoc.ErrNoOutput) ||
		errors.Is(err, pandoc.ErrConflictingInput) {
		return ExitUsage
	}

	return ExitGeneral
}
