package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// CatalogNotFound creates a catalog file not found error
func CatalogNotFound(path string) *Error {
	return New(ErrCodeCatalogNotFound, fmt.Sprintf("catalog file not found: %s", path)).
		WithDetail("path", path)
}

// CatalogInvalid creates an invalid catalog error. The path locates the
// offending node, e.g. "Layout/Display/flex".
func CatalogInvalid(path, reason string) *Error {
	msg := fmt.Sprintf("invalid catalog: %s", reason)
	if path != "" {
		msg = fmt.Sprintf("invalid catalog at %q: %s", path, reason)
	}
	return New(ErrCodeCatalogInvalid, msg).WithDetail("path", path)
}

// DuplicateName creates a catalog error for a name that appears twice
// under the same parent.
func DuplicateName(kind, parent, name string) *Error {
	return CatalogInvalid(parent, fmt.Sprintf("duplicate %s %q", kind, name)).
		WithDetail("kind", kind).
		WithDetail("name", name)
}

// UnsupportedFormat creates an error for an unknown encoding name
func UnsupportedFormat(format string) *Error {
	return New(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format %q (want yaml, toml or json)", format)).
		WithDetail("format", format)
}
