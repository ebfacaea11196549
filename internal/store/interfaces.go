package store

import (
	"context"

	"github.com/MKhiriev/go-opvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProfileLoader parses profile.js.
type ProfileLoader interface {
	LoadProfile(ctx context.Context, path string) (models.Profile, error)
}

// FolderLoader parses folders.js into a map keyed by folder UUID.
type FolderLoader interface {
	LoadFolders(ctx context.Context, path string) (map[models.UUID]models.Folder, error)
}

// AttachmentLoader scans a profile directory for *.attachment files. It
// only reads bytes; nothing is decrypted or parsed.
type AttachmentLoader interface {
	LoadAttachments(ctx context.Context, dir string) (map[models.UUID]models.Attachment, error)
}

// ItemLoader reads every band file of a profile directory and verifies each
// record's tag under key. It either returns every item or an error; it never
// returns a partial set.
type ItemLoader interface {
	LoadItems(ctx context.Context, dir string, key models.HMACKey) (map[models.UUID]models.Item, error)
}
