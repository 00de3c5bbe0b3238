package config

import (
	"errors"
	"fmt"
	"os"

	apperrors "github.com/er336250/fish-test/internal/platform/errors"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// ExitError reports err on stderr and exits with code 1. Domain errors are
// printed with their code so scripts can match on it.
func ExitError(err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		Exitf("Error [%s]: %v", appErr.Code, err)
		return
	}
	Exitf("Error: %v", err)
}
