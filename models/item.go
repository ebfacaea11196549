// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is one record of a band file (band_0.js … band_F.js).
//
// Overview, Details and Key stay encrypted; an Item value is only produced
// after its HMAC tag has been verified. Attachments is filled when the vault
// loads items and transfers the matching attachments into their owners.
type Item struct {
	UUID     UUID     `json:"uuid"`
	Category Category `json:"category"`

	// FolderUUID is nil for items outside any folder.
	FolderUUID *UUID `json:"folder,omitempty"`

	// Key (k) is the item key wrapped with the master key.
	Key []byte `json:"k"`
	// Overview (o) is an opdata01 blob under the overview key.
	Overview []byte `json:"o"`
	// Details (d) is an opdata01 blob under the item key.
	Details []byte `json:"d"`
	// HMAC is the stored integrity tag.
	HMAC []byte `json:"hmac"`

	Created int64 `json:"created"`
	Updated int64 `json:"updated"`
	Tx      int64 `json:"tx"`
	Trashed bool  `json:"trashed"`
	Fave    int64 `json:"fave,omitempty"`

	// Attachments owned by this item, keyed by attachment UUID.
	Attachments map[UUID]Attachment `json:"-"`
}
