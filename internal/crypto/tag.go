// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// ComputeTag computes an HMAC-SHA256 tag over data with key.
func ComputeTag(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// VerifyTag recomputes the tag over data and compares it with tag in
// constant time.
func VerifyTag(key, data, tag []byte) bool {
	return hmac.Equal(ComputeTag(key, data), tag)
}
