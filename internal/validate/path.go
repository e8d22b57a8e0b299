// Package validate checks record paths before they are written to disk.
// It rejects paths that would land outside the extraction directory or
// that the host filesystem cannot represent safely.
package validate

import (
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fdir/errors"
)

// PathValidator validates relative record paths read from a container.
type PathValidator struct {
	// AllowHiddenFiles determines whether components starting with "." are allowed.
	AllowHiddenFiles bool
}

// NewPathValidator creates a PathValidator that allows hidden files, since
// dotfiles are ordinary pack input.
func NewPathValidator() *PathValidator {
	return &PathValidator{AllowHiddenFiles: true}
}

// ValidatePath returns a CodeSecurityViolation error if path is empty,
// absolute, escapes its root, or contains control characters.
func (v *PathValidator) ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return violation(path, "empty path")
	}

	if isAbsolutePath(path) {
		return violation(path, "absolute path not allowed")
	}

	if err := detectPathTraversal(path); err != nil {
		return err
	}

	if strings.HasSuffix(path, "/") {
		return violation(path, "path names a directory")
	}

	if filepath.Clean(path) == "." {
		return violation(path, "path resolves to the output directory")
	}

	if err := detectControlCharacters(path); err != nil {
		return err
	}

	if !v.AllowHiddenFiles && isHiddenFile(path) {
		return violation(path, "hidden files not allowed")
	}

	return nil
}

// IsPathSafe reports whether ValidatePath accepts path.
func (v *PathValidator) IsPathSafe(path string) bool {
	return v.ValidatePath(path) == nil
}

func violation(path, msg string) error {
	return errors.WithContext(errors.New(errors.CodeSecurityViolation, msg), "path", path)
}

// detectPathTraversal catches plain and URL-encoded ".." components in both
// slash and backslash form.
func detectPathTraversal(path string) error {
	lower := strings.ToLower(path)
	for _, variant := range []string{
		"..%2f", "..%5c",
		"%2e%2e%2f", "%2e%2e%5c",
		"%2e%2e/", "%2e%2e\\",
		"..%c0%af", "..%c1%9c",
	} {
		if strings.Contains(lower, variant) {
			return violation(path, "encoded path traversal detected")
		}
	}

	if containsDotDot(path, "/") || containsDotDot(path, "\\") {
		return violation(path, "path traversal detected")
	}

	return nil
}

func containsDotDot(path, sep string) bool {
	for _, part := range strings.Split(path, sep) {
		if part == ".." {
			return true
		}
	}
	return false
}

// detectControlCharacters rejects NUL, C0 controls and DEL. Non-ASCII
// letters are fine.
func detectControlCharacters(path string) error {
	for _, r := range path {
		if r < 0x20 || r == 0x7f {
			return errors.WithContext(violation(path, "control character in path"), "rune", int(r))
		}
	}
	return nil
}

func isHiddenFile(path string) bool {
	for _, part := range strings.Split(path, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// isAbsolutePath checks for absolute paths on all platforms, including
// Windows drive letters and UNC paths.
func isAbsolutePath(path string) bool {
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return true
	}

	if len(path) >= 3 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		drive := path[0]
		if (drive >= 'A' && drive <= 'Z') || (drive >= 'a' && drive <= 'z') {
			return true
		}
	}

	return strings.HasPrefix(path, "\\\\")
}
