package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-opvault/internal/logger"
	"github.com/MKhiriev/go-opvault/models"
)

// profileRecord mirrors the JSON object in profile.js.
type profileRecord struct {
	UUID          string `json:"uuid"`
	ProfileName   string `json:"profileName"`
	PasswordHint  string `json:"passwordHint"`
	Salt          string `json:"salt"`
	Iterations    int    `json:"iterations"`
	MasterKey     string `json:"masterKey"`
	OverviewKey   string `json:"overviewKey"`
	LastUpdatedBy string `json:"lastUpdatedBy"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
}

// profileFileStorage is the file-backed [ProfileLoader].
type profileFileStorage struct {
	logger *logger.Logger
}

// NewProfileFileStorage constructs a [ProfileLoader] reading profile.js.
func NewProfileFileStorage(log *logger.Logger) ProfileLoader {
	return &profileFileStorage{logger: log}
}

// LoadProfile reads and decodes profile.js at path. Key material stays
// encrypted; only the base64 transport encoding is removed.
//
// Returns *IOError when the file cannot be read and *FormatError when its
// structure is wrong, including a missing salt, master or overview key, or a
// non-positive iteration count.
func (p *profileFileStorage) LoadProfile(ctx context.Context, path string) (models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return models.Profile{}, err
	}

	data, err := readFile(path)
	if err != nil {
		return models.Profile{}, err
	}

	payload, err := unwrapScript(path, data, "var profile=", ";")
	if err != nil {
		return models.Profile{}, err
	}

	var rec profileRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return models.Profile{}, &FormatError{File: filepath.Base(path), Err: err}
	}

	profile, err := rec.toModel()
	if err != nil {
		return models.Profile{}, &FormatError{File: filepath.Base(path), Err: err}
	}

	p.logger.Debug().
		Str("profile", profile.ProfileName).
		Int("iterations", profile.Iterations).
		Msg("profile loaded")

	return profile, nil
}

func (r profileRecord) toModel() (models.Profile, error) {
	id, err := models.ParseUUID(r.UUID)
	if err != nil {
		return models.Profile{}, err
	}

	salt, err := decodeBase64("salt", r.Salt)
	if err != nil {
		return models.Profile{}, err
	}
	masterKey, err := decodeBase64("masterKey", r.MasterKey)
	if err != nil {
		return models.Profile{}, err
	}
	overviewKey, err := decodeBase64("overviewKey", r.OverviewKey)
	if err != nil {
		return models.Profile{}, err
	}

	switch {
	case len(salt) == 0:
		return models.Profile{}, errors.New("salt is missing")
	case len(masterKey) == 0:
		return models.Profile{}, errors.New("masterKey is missing")
	case len(overviewKey) == 0:
		return models.Profile{}, errors.New("overviewKey is missing")
	case r.Iterations <= 0:
		return models.Profile{}, fmt.Errorf("iterations must be positive, got %d", r.Iterations)
	}

	return models.Profile{
		UUID:          id,
		ProfileName:   r.ProfileName,
		PasswordHint:  r.PasswordHint,
		Salt:          salt,
		Iterations:    r.Iterations,
		MasterKey:     masterKey,
		OverviewKey:   overviewKey,
		LastUpdatedBy: r.LastUpdatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}
