// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// HMACKeySize is the length of the item tag key in bytes.
const HMACKeySize = 32

// HMACKey is the secret used to verify item integrity tags. It is supplied
// by the caller (usually the MAC half of the overview key) and never stored.
type HMACKey struct {
	key [HMACKeySize]byte
}

// NewHMACKey copies b into a new key. b must be exactly [HMACKeySize] bytes.
func NewHMACKey(b []byte) (HMACKey, error) {
	if len(b) != HMACKeySize {
		return HMACKey{}, fmt.Errorf("%w: got %d, want %d", ErrInvalidHMACKey, len(b), HMACKeySize)
	}
	var k HMACKey
	copy(k.key[:], b)
	return k, nil
}

// Bytes returns a copy of the key material.
func (k HMACKey) Bytes() []byte {
	out := make([]byte, HMACKeySize)
	copy(out, k.key[:])
	return out
}

// String never prints key material.
func (k HMACKey) String() string {
	return "HMACKey(redacted)"
}

// GoString keeps the key out of %#v output.
func (k HMACKey) GoString() string {
	return k.String()
}
