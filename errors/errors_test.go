package errors

import (
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeCatalogInvalid, "bad catalog")
	if err.Code != ErrCodeCatalogInvalid {
		t.Errorf("expected code %s, got %s", ErrCodeCatalogInvalid, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "config broken")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeCatalogNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Codes survive fmt.Errorf wrapping
	outer := fmt.Errorf("loading: %w", wrapped)
	if GetCode(outer) != ErrCodeConfigInvalid {
		t.Errorf("GetCode through %%w = %q", GetCode(outer))
	}

	detailed := err.WithDetail("path", "Layout").WithDetail("count", 2)
	if detailed.Details["path"] != "Layout" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := DuplicateName("entry", "Layout/Display", "flex")
	if err.Code != ErrCodeCatalogInvalid {
		t.Errorf("expected code %s, got %s", ErrCodeCatalogInvalid, err.Code)
	}
	if err.Details["name"] != "flex" || err.Details["path"] != "Layout/Display" {
		t.Errorf("DuplicateName details = %v", err.Details)
	}

	err = UnsupportedFormat("xml")
	if err.Code != ErrCodeUnsupportedFormat {
		t.Errorf("expected code %s, got %s", ErrCodeUnsupportedFormat, err.Code)
	}

	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
}
