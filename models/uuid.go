// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUID identifies every entity stored in a vault (profile, folder, item,
// attachment). OPVault writes identifiers as 32 upper-case hex digits without
// dashes; the canonical dashed form is accepted on input as well.
//
// UUID is comparable and is used as the key of every entity map. It carries
// no ordering semantics.
type UUID struct {
	id uuid.UUID
}

// NilUUID is the zero identifier.
var NilUUID = UUID{}

// ParseUUID parses s in either the 32-digit OPVault form or the canonical
// dashed form.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return UUID{}, fmt.Errorf("parse uuid %q: %w", s, err)
	}
	return UUID{id: id}, nil
}

// MustParseUUID is like [ParseUUID] but panics on malformed input.
// Intended for tests and package-level fixtures.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// NewUUID returns a random identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// String renders the identifier the way OPVault files store it.
func (u UUID) String() string {
	return strings.ToUpper(hex.EncodeToString(u.id[:]))
}

// IsNil reports whether u is the zero identifier.
func (u UUID) IsNil() bool {
	return u.id == uuid.Nil
}

// MarshalText implements [encoding.TextMarshaler].
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *UUID) UnmarshalText(b []byte) error {
	parsed, err := ParseUUID(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
