package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/MKhiriev/go-opvault/internal/crypto"
	"github.com/MKhiriev/go-opvault/internal/logger"
	"github.com/MKhiriev/go-opvault/models"
)

// bandPattern matches the sixteen band files, band_0.js … band_F.js.
var bandPattern = regexp.MustCompile(`^band_[0-9A-F]\.js$`)

// itemRecord mirrors one value of the object in a band file.
type itemRecord struct {
	UUID     string `json:"uuid"`
	Category string `json:"category"`
	Folder   string `json:"folder"`
	K        string `json:"k"`
	O        string `json:"o"`
	D        string `json:"d"`
	HMAC     string `json:"hmac"`
	Created  int64  `json:"created"`
	Updated  int64  `json:"updated"`
	Tx       int64  `json:"tx"`
	Trashed  bool   `json:"trashed"`
	Fave     int64  `json:"fave"`
}

// itemFileStorage is the file-backed [ItemLoader].
type itemFileStorage struct {
	logger *logger.Logger
}

// NewItemFileStorage constructs an [ItemLoader] reading band files.
func NewItemFileStorage(log *logger.Logger) ItemLoader {
	return &itemFileStorage{logger: log}
}

// LoadItems reads every band file in dir. A record is decoded only after
// its tag has been verified under key.
//
// The first failing record aborts the whole load with *IntegrityError; no
// item is returned in that case. A missing band file is not an error since
// empty bands are never written. The same UUID appearing twice is a
// *FormatError.
func (s *itemFileStorage) LoadItems(ctx context.Context, dir string, key models.HMACKey) (map[models.UUID]models.Item, error) {
	bands, err := filepath.Glob(filepath.Join(dir, "band_*.js"))
	if err != nil {
		return nil, &IOError{Path: dir, Err: err}
	}

	tagKey := key.Bytes()
	items := make(map[models.UUID]models.Item)
	for _, path := range bands {
		if !bandPattern.MatchString(filepath.Base(path)) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := s.loadBand(path, tagKey, items); err != nil {
			return nil, err
		}
	}

	s.logger.Debug().Int("bands", len(bands)).Int("items", len(items)).Msg("items verified")

	return items, nil
}

// loadBand verifies and decodes one band file into items.
func (s *itemFileStorage) loadBand(path string, tagKey []byte, items map[models.UUID]models.Item) error {
	file := filepath.Base(path)

	data, err := readFile(path)
	if err != nil {
		return err
	}

	payload, err := unwrapScript(path, data, "ld(", ");")
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return &FormatError{File: file, Err: err}
	}

	// Verify every record of the band before decoding any of them.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := verifyRecord(raw[k], tagKey); err != nil {
			var integrity *IntegrityError
			if errors.As(err, &integrity) {
				s.logger.Error().Str("item", integrity.UUID.String()).Str("band", file).Msg("item failed integrity check")
				return err
			}
			return &FormatError{File: file, Err: err}
		}
	}

	for _, k := range keys {
		var rec itemRecord
		if err := json.Unmarshal(raw[k], &rec); err != nil {
			return &FormatError{File: file, Err: err}
		}

		item, err := rec.toModel(k)
		if err != nil {
			return &FormatError{File: file, Err: err}
		}
		if _, dup := items[item.UUID]; dup {
			return &FormatError{File: file, Err: fmt.Errorf("duplicate item %s", item.UUID)}
		}
		items[item.UUID] = item
	}

	return nil
}

// verifyRecord recomputes the item tag over the record's signed bytes and
// compares it with the stored hmac field.
func verifyRecord(raw json.RawMessage, tagKey []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return err
	}

	uuidField, _ := fields["uuid"].(string)
	id, err := models.ParseUUID(uuidField)
	if err != nil {
		return err
	}

	storedField, ok := fields["hmac"].(string)
	if !ok || storedField == "" {
		return fmt.Errorf("item %s: hmac is missing", id)
	}
	stored, err := decodeBase64("hmac", storedField)
	if err != nil {
		return err
	}

	signed, err := SignedBytes(fields)
	if err != nil {
		return fmt.Errorf("item %s: %w", id, err)
	}

	if !crypto.VerifyTag(tagKey, signed, stored) {
		return &IntegrityError{UUID: id}
	}
	return nil
}

// SignedBytes returns the bytes covered by an item's tag: every field except
// hmac, in ascending key order, as key followed by value. Strings are used
// verbatim, numbers in their JSON decimal form and booleans as "1" or "0".
//
// fields must come from a decoder with UseNumber enabled.
func SignedBytes(fields map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != "hmac" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		buf.WriteString(k)
		switch v := fields[k].(type) {
		case string:
			buf.WriteString(v)
		case json.Number:
			buf.WriteString(v.String())
		case bool:
			if v {
				buf.WriteByte('1')
			} else {
				buf.WriteByte('0')
			}
		default:
			return nil, fmt.Errorf("field %q has unsupported type %T", k, v)
		}
	}
	return buf.Bytes(), nil
}

func (r itemRecord) toModel(key string) (models.Item, error) {
	id, err := models.ParseUUID(r.UUID)
	if err != nil {
		return models.Item{}, err
	}
	if keyID, err := models.ParseUUID(key); err != nil || keyID != id {
		return models.Item{}, fmt.Errorf("item key %q does not match uuid %s", key, id)
	}

	item := models.Item{
		UUID:     id,
		Category: models.Category(r.Category),
		Created:  r.Created,
		Updated:  r.Updated,
		Tx:       r.Tx,
		Trashed:  r.Trashed,
		Fave:     r.Fave,
	}

	if item.Key, err = decodeBase64("k", r.K); err != nil {
		return models.Item{}, err
	}
	if item.Overview, err = decodeBase64("o", r.O); err != nil {
		return models.Item{}, err
	}
	if item.Details, err = decodeBase64("d", r.D); err != nil {
		return models.Item{}, err
	}
	if item.HMAC, err = decodeBase64("hmac", r.HMAC); err != nil {
		return models.Item{}, err
	}

	if r.Folder != "" {
		folder, err := models.ParseUUID(r.Folder)
		if err != nil {
			return models.Item{}, err
		}
		item.FolderUUID = &folder
	}

	return item, nil
}
