// Package ids generates static/branch identifiers for versioned entities and
// encodes physical row ids into opaque, externally-facing node ids.
package ids

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/michaelschade/kenchi-sub000/internal/domain"
)

// Static-id and branch-id prefixes per entity kind.
const (
	PrefixTool           = "tool"
	PrefixWorkflow       = "wrkf"
	PrefixSpace          = "spce"
	PrefixWidget         = "wdgt"
	PrefixToolBranch     = "tbrch"
	PrefixWorkflowBranch = "wbrch"
	PrefixSpaceBranch    = "sbrch"
	PrefixWidgetBranch   = "dbrch"
)

// Node-id kind tags for non-versioned entities.
const (
	TagCollection   = "coll"
	TagUser         = "user"
	TagUserGroup    = "ugrp"
	TagOrganization = "org"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// NewStaticID returns a new random, globally-unique identifier of the form
// "<prefix>_<22 base62 chars>". The token is opaque: nothing may be read out
// of it besides the prefix.
func NewStaticID(prefix string) string {
	return prefix + "_" + base62Token(uuid.New())
}

// base62Token encodes 16 random bytes as a fixed-width base62 string.
func base62Token(u uuid.UUID) string {
	n := new(big.Int).SetBytes(u[:])
	base := big.NewInt(62)
	rem := new(big.Int)

	buf := make([]byte, 22)
	for i := len(buf) - 1; i >= 0; i-- {
		n.DivMod(n, base, rem)
		buf[i] = base62Alphabet[rem.Int64()]
	}
	return string(buf)
}

// Prefix returns the kind prefix of a static or branch id, or "" when the id
// has no recognizable prefix.
func Prefix(id string) string {
	idx := strings.IndexByte(id, '_')
	if idx <= 0 {
		return ""
	}
	return id[:idx]
}

// EncodeNodeID packs a kind tag and a physical row id into an opaque node id.
// The transform is reversible and non-cryptographic.
func EncodeNodeID(tag string, id int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(tag + ":" + strconv.FormatInt(id, 10)))
}

// DecodeNodeID reverses EncodeNodeID. Malformed input of any shape maps to
// domain.ErrNotFound: an undecodable id and an absent row are deliberately
// indistinguishable to callers.
func DecodeNodeID(s string) (string, int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return "", 0, fmt.Errorf("node id %q: %w", s, domain.ErrNotFound)
	}

	tag, num, ok := strings.Cut(string(raw), ":")
	if !ok || tag == "" {
		return "", 0, fmt.Errorf("node id %q: %w", s, domain.ErrNotFound)
	}

	id, err := strconv.ParseInt(num, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("node id %q: %w", s, domain.ErrNotFound)
	}

	return tag, id, nil
}

// DecodeNodeIDAs decodes s and additionally requires the given kind tag.
// A tag mismatch is a domain.ErrNotFound, same as a malformed id.
func DecodeNodeIDAs(tag, s string) (int64, error) {
	gotTag, id, err := DecodeNodeID(s)
	if err != nil {
		return 0, err
	}
	if gotTag != tag {
		return 0, fmt.Errorf("node id %q: expected kind %s: %w", s, tag, domain.ErrNotFound)
	}
	return id, nil
}
