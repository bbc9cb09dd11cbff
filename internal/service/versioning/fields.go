package versioning

import (
	"fmt"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

// Typed accessors for payload field maps. Each reports presence separately
// from value so kinds can distinguish "clear" (present, nil) from "preserve"
// (absent), and returns an error wrapping domain.ErrValidation on a
// wrong-typed value.

func fieldErr(key, want string, got any) error {
	return fmt.Errorf("field %q: expected %s, got %T: %w", key, want, got, domain.ErrValidation)
}

// FieldString reads a required-shape string field. A nil value yields "".
func FieldString(fields map[string]any, key string) (string, bool, error) {
	raw, present := fields[key]
	if !present || raw == nil {
		return "", present, nil
	}
	s, isStr := raw.(string)
	if !isStr {
		return "", true, fieldErr(key, "string", raw)
	}
	return s, true, nil
}

// FieldStringPtr reads a nullable string field. A nil value yields nil.
func FieldStringPtr(fields map[string]any, key string) (*string, bool, error) {
	raw, present := fields[key]
	if !present || raw == nil {
		return nil, present, nil
	}
	s, isStr := raw.(string)
	if !isStr {
		return nil, true, fieldErr(key, "string", raw)
	}
	return &s, true, nil
}

// FieldInt64 reads an integer field. JSON round-trips may deliver float64.
func FieldInt64(fields map[string]any, key string) (int64, bool, error) {
	raw, present := fields[key]
	if !present || raw == nil {
		return 0, present, nil
	}
	switch n := raw.(type) {
	case int64:
		return n, true, nil
	case int:
		return int64(n), true, nil
	case float64:
		return int64(n), true, nil
	}
	return 0, true, fieldErr(key, "integer", raw)
}

// FieldMap reads an object field.
func FieldMap(fields map[string]any, key string) (map[string]any, bool, error) {
	raw, present := fields[key]
	if !present || raw == nil {
		return nil, present, nil
	}
	m, isMap := raw.(map[string]any)
	if !isMap {
		return nil, true, fieldErr(key, "object", raw)
	}
	return m, true, nil
}

// FieldMapSlice reads a list-of-objects field.
func FieldMapSlice(fields map[string]any, key string) ([]map[string]any, bool, error) {
	raw, present := fields[key]
	if !present || raw == nil {
		return nil, present, nil
	}

	switch list := raw.(type) {
	case []map[string]any:
		return list, true, nil
	case []any:
		out := make([]map[string]any, len(list))
		for i, item := range list {
			m, isMap := item.(map[string]any)
			if !isMap {
				return nil, true, fieldErr(key, "list of objects", item)
			}
			out[i] = m
		}
		return out, true, nil
	}
	return nil, true, fieldErr(key, "list of objects", raw)
}

// FieldStringSlice reads a list-of-strings field.
func FieldStringSlice(fields map[string]any, key string) ([]string, bool, error) {
	raw, present := fields[key]
	if !present || raw == nil {
		return nil, present, nil
	}

	switch list := raw.(type) {
	case []string:
		return list, true, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, isStr := item.(string)
			if !isStr {
				return nil, true, fieldErr(key, "list of strings", item)
			}
			out[i] = s
		}
		return out, true, nil
	}
	return nil, true, fieldErr(key, "list of strings", raw)
}
