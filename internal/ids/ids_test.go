package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

func TestNewStaticID_Shape(t *testing.T) {
	t.Parallel()

	id := NewStaticID(PrefixTool)
	require.True(t, strings.HasPrefix(id, "tool_"))
	token := strings.TrimPrefix(id, "tool_")
	assert.Len(t, token, 22)
	for _, r := range token {
		assert.Contains(t, base62Alphabet, string(r))
	}
}

func TestNewStaticID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		id := NewStaticID(PrefixWorkflow)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tool", Prefix("tool_0123456789abcdefghijkl"))
	assert.Equal(t, "tbrch", Prefix("tbrch_0123456789abcdefghijkl"))
	assert.Equal(t, "", Prefix("noseparator"))
	assert.Equal(t, "", Prefix("_leading"))
}

func TestNodeID_Roundtrip(t *testing.T) {
	t.Parallel()

	encoded := EncodeNodeID(TagCollection, 42)
	tag, id, err := DecodeNodeID(encoded)
	require.NoError(t, err)
	assert.Equal(t, TagCollection, tag)
	assert.Equal(t, int64(42), id)
}

func TestDecodeNodeID_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not base64", "!!!"},
		{"no separator", "dG9vbDQy"},         // "tool42"
		{"empty tag", "OjQy"},                // ":42"
		{"non-numeric id", "dG9vbDphYmM"},    // "tool:abc"
		{"zero id", "dG9vbDow"},              // "tool:0"
		{"negative id", "dG9vbDotNQ"},        // "tool:-5"
		{"standard padding", "dG9vbDo0Mg=="}, // RawURLEncoding rejects padding
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := DecodeNodeID(tc.in)
			require.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestDecodeNodeIDAs_TagMismatch(t *testing.T) {
	t.Parallel()

	encoded := EncodeNodeID(TagUser, 7)

	id, err := DecodeNodeIDAs(TagUser, encoded)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	_, err = DecodeNodeIDAs(TagCollection, encoded)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
