package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

func TestFieldString(t *testing.T) {
	t.Parallel()

	v, present, err := FieldString(map[string]any{"name": "x"}, "name")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "x", v)

	_, present, err = FieldString(map[string]any{}, "name")
	require.NoError(t, err)
	assert.False(t, present)

	// A present nil clears the field.
	v, present, err = FieldString(map[string]any{"name": nil}, "name")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "", v)

	_, _, err = FieldString(map[string]any{"name": 7}, "name")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFieldInt64_JSONNumbers(t *testing.T) {
	t.Parallel()

	// JSON decoding delivers numbers as float64.
	v, _, err := FieldInt64(map[string]any{"collectionId": float64(42)}, "collectionId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, _, err = FieldInt64(map[string]any{"collectionId": int64(7)}, "collectionId")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, _, err = FieldInt64(map[string]any{"collectionId": "42"}, "collectionId")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFieldMapSlice(t *testing.T) {
	t.Parallel()

	// Decoded JSON lists arrive as []any.
	v, _, err := FieldMapSlice(map[string]any{
		"inputs": []any{map[string]any{"id": "a"}, map[string]any{"id": "b"}},
	}, "inputs")
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.Equal(t, "b", v[1]["id"])

	_, _, err = FieldMapSlice(map[string]any{"inputs": []any{"nope"}}, "inputs")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFieldStringSlice(t *testing.T) {
	t.Parallel()

	v, _, err := FieldStringSlice(map[string]any{"keywords": []any{"a", "b"}}, "keywords")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	_, _, err = FieldStringSlice(map[string]any{"keywords": []any{1}}, "keywords")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAssertNoSystemKeys(t *testing.T) {
	t.Parallel()

	require.NoError(t, assertNoSystemKeys(map[string]any{"name": "x", "body": "y"}))

	for _, key := range []string{"id", "staticId", "branchId", "isLatest", "metadata", "createdByUserId"} {
		err := assertNoSystemKeys(map[string]any{key: "x"})
		require.Error(t, err, key)
	}
}

func TestMergeFields(t *testing.T) {
	t.Parallel()

	merged := mergeFields(
		map[string]any{"name": "old", "body": "kept"},
		map[string]any{"name": "new", "icon": nil},
	)
	assert.Equal(t, "new", merged["name"])
	assert.Equal(t, "kept", merged["body"])

	// Explicit nils survive the merge so Apply can clear the field.
	icon, present := merged["icon"]
	assert.True(t, present)
	assert.Nil(t, icon)
}
