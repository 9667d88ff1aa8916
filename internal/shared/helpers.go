// Package shared provides common utility functions used across multiple
// packages in the npm-compromise-scan codebase.
package shared

import (
	"fmt"
	"strings"
)

// FormatPackage renders a package identity as name@version.
func FormatPackage(name string, version string) string {
	return fmt.Sprintf("%s@%s", name, version)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
