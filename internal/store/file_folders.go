package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-opvault/internal/logger"
	"github.com/MKhiriev/go-opvault/models"
)

// folderRecord mirrors one value of the object in folders.js.
type folderRecord struct {
	UUID     string `json:"uuid"`
	Overview string `json:"overview"`
	Created  int64  `json:"created"`
	Updated  int64  `json:"updated"`
	Tx       int64  `json:"tx"`
	Parent   string `json:"parent"`
	Smart    bool   `json:"smart"`
	Trashed  bool   `json:"trashed"`
}

// folderFileStorage is the file-backed [FolderLoader].
type folderFileStorage struct {
	logger *logger.Logger
}

// NewFolderFileStorage constructs a [FolderLoader] reading folders.js.
func NewFolderFileStorage(log *logger.Logger) FolderLoader {
	return &folderFileStorage{logger: log}
}

// LoadFolders reads folders.js at path. The object key of every entry must
// equal the entry's own uuid field.
func (f *folderFileStorage) LoadFolders(ctx context.Context, path string) (map[models.UUID]models.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	payload, err := unwrapScript(path, data, "loadFolders(", ");")
	if err != nil {
		return nil, err
	}

	var records map[string]folderRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, &FormatError{File: filepath.Base(path), Err: err}
	}

	folders := make(map[models.UUID]models.Folder, len(records))
	for key, rec := range records {
		folder, err := rec.toModel(key)
		if err != nil {
			return nil, &FormatError{File: filepath.Base(path), Err: err}
		}
		folders[folder.UUID] = folder
	}

	f.logger.Debug().Int("folders", len(folders)).Msg("folders loaded")

	return folders, nil
}

func (r folderRecord) toModel(key string) (models.Folder, error) {
	id, err := models.ParseUUID(r.UUID)
	if err != nil {
		return models.Folder{}, err
	}
	if keyID, err := models.ParseUUID(key); err != nil || keyID != id {
		return models.Folder{}, fmt.Errorf("folder key %q does not match uuid %s", key, id)
	}

	overview, err := decodeBase64("overview", r.Overview)
	if err != nil {
		return models.Folder{}, err
	}

	folder := models.Folder{
		UUID:     id,
		Overview: overview,
		Created:  r.Created,
		Updated:  r.Updated,
		Tx:       r.Tx,
		Smart:    r.Smart,
		Trashed:  r.Trashed,
	}

	if r.Parent != "" {
		parent, err := models.ParseUUID(r.Parent)
		if err != nil {
			return models.Folder{}, err
		}
		folder.Parent = &parent
	}

	return folder, nil
}
