package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Package, variant and flag names repeat across descriptors, resolutions
// and argument lists, so interning them keeps comparisons cheap.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
// It uses the unique package to intern the string. The empty string
// interns to the zero value.
func NewInternedString(s string) InternedString {
	if s == "" {
		return InternedString{}
	}
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the value was never initialized.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}
