package apply

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to a human-readable message. It is the
// only structured validation error; several fields can fail at once.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fe[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Only returns the subset of errors for the given fields.
func (fe FieldErrors) Only(fields ...string) FieldErrors {
	out := FieldErrors{}
	for _, f := range fields {
		if msg, ok := fe[f]; ok {
			out[f] = msg
		}
	}
	return out
}
