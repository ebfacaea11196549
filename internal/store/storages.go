package store

import "github.com/MKhiriev/go-opvault/internal/logger"

// FileStorages groups the file-backed loaders of one vault container into a
// single value that can be handed to the vault. Each field can be replaced
// independently (tests swap in mocks).
type FileStorages struct {
	// Profiles parses profile.js.
	Profiles ProfileLoader
	// Folders parses folders.js.
	Folders FolderLoader
	// Attachments scans the profile directory for *.attachment files.
	Attachments AttachmentLoader
	// Items reads and verifies band_*.js.
	Items ItemLoader
}

// NewFileStorages wires every loader to the same logger.
func NewFileStorages(log *logger.Logger) *FileStorages {
	log.Debug().Msg("creating file storages...")

	return &FileStorages{
		Profiles:    NewProfileFileStorage(log),
		Folders:     NewFolderFileStorage(log),
		Attachments: NewAttachmentFileStorage(log),
		Items:       NewItemFileStorage(log),
	}
}
