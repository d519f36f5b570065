package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("validation failed")
)

// FieldErrors maps an input field name to the validation messages
// reported for it. It is returned by the mutation services so callers
// can render per-field feedback instead of a single opaque message.
type FieldErrors map[string][]string

// Error implements the error interface with a deterministic rendering
// (fields sorted by name).
func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, strings.Join(fe[field], ", "))
	}
	return b.String()
}

// Is allows errors.Is() to match against ErrValidation.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// AsFieldErrors unwraps err into a FieldErrors map, or nil if err does
// not carry per-field detail.
func AsFieldErrors(err error) FieldErrors {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}
