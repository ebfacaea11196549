package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-opvault/internal/logger"
	"github.com/MKhiriev/go-opvault/models"
)

// AttachmentExt is the suffix of attachment files in a profile directory.
const AttachmentExt = ".attachment"

// attachmentFileStorage is the file-backed [AttachmentLoader].
type attachmentFileStorage struct {
	logger *logger.Logger
}

// NewAttachmentFileStorage constructs an [AttachmentLoader] that scans a
// profile directory.
func NewAttachmentFileStorage(log *logger.Logger) AttachmentLoader {
	return &attachmentFileStorage{logger: log}
}

// LoadAttachments scans dir for files named
// <ITEM-UUID>_<ATTACHMENT-UUID>.attachment and reads each one verbatim.
//
// Only I/O problems are errors. A file whose name does not carry two UUIDs is
// not an attachment and is skipped; its bytes are never inspected here. When
// two files name the same attachment UUID the first in directory order is
// kept and the other is logged at warn level.
func (a *attachmentFileStorage) LoadAttachments(ctx context.Context, dir string) (map[models.UUID]models.Attachment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Path: dir, Err: err}
	}

	attachments := make(map[models.UUID]models.Attachment)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, AttachmentExt) {
			continue
		}

		itemID, attachmentID, ok := parseAttachmentName(name)
		if !ok {
			a.logger.Debug().Str("file", name).Msg("skipping file with unrecognised attachment name")
			continue
		}

		path := filepath.Join(dir, name)
		if kept, dup := attachments[attachmentID]; dup {
			a.logger.Warn().
				Str("attachment", attachmentID.String()).
				Str("kept", kept.Path).
				Str("ignored", path).
				Msg("duplicate attachment uuid")
			continue
		}

		data, err := readFile(path)
		if err != nil {
			return nil, err
		}

		attachments[attachmentID] = models.Attachment{
			UUID:     attachmentID,
			ItemUUID: itemID,
			Path:     path,
			Data:     data,
		}
	}

	a.logger.Debug().Int("attachments", len(attachments)).Msg("attachments scanned")

	return attachments, nil
}

func parseAttachmentName(name string) (item, attachment models.UUID, ok bool) {
	itemPart, attachmentPart, found := strings.Cut(strings.TrimSuffix(name, AttachmentExt), "_")
	if !found {
		return models.UUID{}, models.UUID{}, false
	}

	item, err := models.ParseUUID(itemPart)
	if err != nil {
		return models.UUID{}, models.UUID{}, false
	}
	attachment, err = models.ParseUUID(attachmentPart)
	if err != nil {
		return models.UUID{}, models.UUID{}, false
	}

	return item, attachment, true
}
