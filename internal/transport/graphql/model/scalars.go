package model

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/99designs/gqlgen/graphql"
)

// MarshalDateTime marshals time.Time to a GraphQL RFC3339 string.
func MarshalDateTime(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+t.Format(time.RFC3339)+`"`)
	})
}

// UnmarshalDateTime unmarshals a GraphQL string into time.Time.
func UnmarshalDateTime(v any) (time.Time, error) {
	switch v := v.(type) {
	case string:
		return time.Parse(time.RFC3339, v)
	default:
		return time.Time{}, fmt.Errorf("DateTime must be a string in RFC3339 format")
	}
}

// MarshalJSONObject marshals a free-form object scalar.
func MarshalJSONObject(m map[string]any) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		b, err := json.Marshal(m)
		if err != nil {
			io.WriteString(w, "null")
			return
		}
		w.Write(b)
	})
}

// UnmarshalJSONObject unmarshals the JSONObject scalar into a map.
func UnmarshalJSONObject(v any) (map[string]any, error) {
	switch v := v.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("JSONObject must be an object")
	}
}

// MarshalSlateNodes marshals a list of rich-text nodes.
func MarshalSlateNodes(nodes []map[string]any) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		b, err := json.Marshal(nodes)
		if err != nil {
			io.WriteString(w, "null")
			return
		}
		w.Write(b)
	})
}

// UnmarshalSlateNodes unmarshals the SlateNodes scalar.
func UnmarshalSlateNodes(v any) ([]map[string]any, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("SlateNodes must be a list of objects")
	}
	nodes := make([]map[string]any, 0, len(raw))
	for _, el := range raw {
		node, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("SlateNodes must be a list of objects")
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
