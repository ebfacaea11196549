// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// attachmentMagic opens every *.attachment file.
var attachmentMagic = []byte("OPCLDAT")

// attachmentHeaderSize is magic(7) + version(1) + metadata size(2) +
// reserved(2) + icon size(4).
const attachmentHeaderSize = 16

// Attachment is a file attached to an item. It is discovered by scanning the
// profile directory for files named <ITEM-UUID>_<ATTACHMENT-UUID>.attachment.
//
// ItemUUID is a reference to the owning item, not ownership: until the items
// are loaded the vault holds attachments on their own; afterwards each one is
// owned by exactly one item, or kept as an orphan when that item is missing.
type Attachment struct {
	UUID     UUID   `json:"uuid"`
	ItemUUID UUID   `json:"itemUUID"`
	Path     string `json:"path"`

	// Data is the raw file content. It is not parsed at load time.
	Data []byte `json:"-"`
}

// AttachmentMetadata is the plain JSON block stored after the header.
type AttachmentMetadata struct {
	UUID         string `json:"uuid"`
	ItemUUID     string `json:"itemUUID"`
	ContentsSize int64  `json:"contentsSize"`
	External     bool   `json:"external"`
	Overview     string `json:"overview"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
	TxTimestamp  int64  `json:"txTimestamp"`
}

// AttachmentHeader is the decoded layout of an attachment file.
type AttachmentHeader struct {
	Version  byte
	Metadata AttachmentMetadata

	// Icon and Contents are opdata01 blobs; both are still encrypted.
	Icon     []byte
	Contents []byte
}

// Header decodes the attachment layout:
//
//	"OPCLDAT" | version | metadata size (u16 LE) | reserved (2) | icon size (u32 LE)
//	metadata JSON | icon | contents
func (a Attachment) Header() (AttachmentHeader, error) {
	data := a.Data
	if len(data) < attachmentHeaderSize {
		return AttachmentHeader{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedAttachment, len(data))
	}
	if !bytes.Equal(data[:len(attachmentMagic)], attachmentMagic) {
		return AttachmentHeader{}, fmt.Errorf("%w: bad magic", ErrMalformedAttachment)
	}

	version := data[7]
	metaSize := int(binary.LittleEndian.Uint16(data[8:10]))
	iconSize := int(binary.LittleEndian.Uint32(data[12:16]))

	rest := data[attachmentHeaderSize:]
	if metaSize > len(rest) || iconSize > len(rest)-metaSize {
		return AttachmentHeader{}, fmt.Errorf("%w: declared sizes exceed file length", ErrMalformedAttachment)
	}

	var meta AttachmentMetadata
	if err := json.Unmarshal(rest[:metaSize], &meta); err != nil {
		return AttachmentHeader{}, fmt.Errorf("%w: metadata: %v", ErrMalformedAttachment, err)
	}

	return AttachmentHeader{
		Version:  version,
		Metadata: meta,
		Icon:     rest[metaSize : metaSize+iconSize],
		Contents: rest[metaSize+iconSize:],
	}, nil
}
