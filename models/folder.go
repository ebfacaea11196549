// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder is one entry of the folder index (folders.js). Its display name
// lives inside Overview, which is encrypted with the overview key.
type Folder struct {
	UUID     UUID   `json:"uuid"`
	Overview []byte `json:"overview"`
	Created  int64  `json:"created"`
	Updated  int64  `json:"updated"`
	Tx       int64  `json:"tx"`

	// Parent is set for nested folders.
	Parent *UUID `json:"parent,omitempty"`

	// Smart marks saved searches rather than real containers.
	Smart   bool `json:"smart"`
	Trashed bool `json:"trashed"`
}
