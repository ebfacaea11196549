// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the non-secret part of a vault profile (profile.js).
//
// Salt and Iterations parameterize the PBKDF2 derivation of the
// key-encryption keys from the master password. MasterKey and OverviewKey
// are opaque opdata01 blobs that can only be opened with those derived keys.
// A Profile is never modified after it has been loaded.
type Profile struct {
	// UUID identifies the profile inside the vault.
	UUID UUID `json:"uuid"`

	// ProfileName is the name of the sub-location, always "default" in
	// vaults written by current clients.
	ProfileName string `json:"profileName"`

	// PasswordHint is shown to the user before unlock. Display only.
	PasswordHint string `json:"passwordHint"`

	// Salt is the PBKDF2 salt (decoded from base64).
	Salt []byte `json:"salt"`

	// Iterations is the PBKDF2 iteration count.
	Iterations int `json:"iterations"`

	// MasterKey is the encrypted master key (opdata01).
	MasterKey []byte `json:"masterKey"`

	// OverviewKey is the encrypted overview key (opdata01).
	OverviewKey []byte `json:"overviewKey"`

	LastUpdatedBy string `json:"lastUpdatedBy"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}
