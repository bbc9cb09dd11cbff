package generated

import (
	"context"
	"fmt"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
)

// DateTime scalar methods
func (ec *executionContext) unmarshalInputDateTime(ctx context.Context, obj interface{}) (time.Time, error) {
	switch v := obj.(type) {
	case string:
		return time.Parse(time.RFC3339, v)
	default:
		return time.Time{}, fmt.Errorf("DateTime must be a string in RFC3339 format")
	}
}

func (ec *executionContext) marshalDateTime(ctx context.Context, sel ast.SelectionSet, v time.Time) graphql.Marshaler {
	res := graphql.MarshalString(v.Format(time.RFC3339))
	return res
}

func (ec *executionContext) _DateTime(ctx context.Context, sel ast.SelectionSet, v *time.Time) graphql.Marshaler {
	if v == nil {
		if !graphql.HasFieldError(ctx, graphql.GetFieldContext(ctx)) {
			ec.Errorf(ctx, "the requested element is null which the schema does not allow")
		}
		return graphql.Null
	}
	return ec.marshalDateTime(ctx, sel, *v)
}

// JSONObject scalar methods
func (ec *executionContext) unmarshalInputJSONObject(ctx context.Context, obj interface{}) (map[string]any, error) {
	switch v := obj.(type) {
	case map[string]any:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("JSONObject must be a JSON object")
	}
}

func (ec *executionContext) marshalJSONObject(ctx context.Context, sel ast.SelectionSet, v map[string]any) graphql.Marshaler {
	return graphql.MarshalMap(v)
}

// SlateNodes scalar methods
func (ec *executionContext) unmarshalInputSlateNodes(ctx context.Context, obj interface{}) ([]map[string]any, error) {
	switch v := obj.(type) {
	case []interface{}:
		out := make([]map[string]any, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("SlateNodes element %d must be a JSON object", i)
			}
			out[i] = m
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("SlateNodes must be a JSON array of objects")
	}
}

func (ec *executionContext) marshalSlateNodes(ctx context.Context, sel ast.SelectionSet, v []map[string]any) graphql.Marshaler {
	return graphql.MarshalAny(v)
}
