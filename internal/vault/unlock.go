package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-opvault/internal/crypto"
	"github.com/MKhiriev/go-opvault/models"
)

// Keys are the unwrapped profile keys. Master opens item keys, Overview
// opens folder and item overviews and verifies item tags.
type Keys struct {
	Master   crypto.KeyPair
	Overview crypto.KeyPair
}

// TagKey returns the key that verifies item tags, ready for ReadItems.
func (k Keys) TagKey() (models.HMACKey, error) {
	return models.NewHMACKey(k.Overview.MAC)
}

// Unlock derives the key-encryption key from password and opens the master
// and overview keys of the profile. A password that does not authenticate
// the profile keys returns ErrWrongPassword.
func (v *Vault) Unlock(ctx context.Context, password string) (Keys, error) {
	if err := ctx.Err(); err != nil {
		return Keys{}, err
	}

	kek := v.keyChain.DeriveKeys(password, v.profile.Salt, v.profile.Iterations)

	master, err := v.keyChain.UnwrapProfileKey(v.profile.MasterKey, kek)
	if err != nil {
		return Keys{}, unlockError("master", err)
	}
	overview, err := v.keyChain.UnwrapProfileKey(v.profile.OverviewKey, kek)
	if err != nil {
		return Keys{}, unlockError("overview", err)
	}

	v.logger.Debug().Msg("profile keys unwrapped")
	return Keys{Master: master, Overview: overview}, nil
}

func unlockError(which string, err error) error {
	if errors.Is(err, crypto.ErrAuthentication) {
		return ErrWrongPassword
	}
	return fmt.Errorf("unwrap %s key: %w", which, err)
}

// OpenItems unlocks the vault with password and reads its items in one step.
func (v *Vault) OpenItems(ctx context.Context, password string) (Keys, error) {
	keys, err := v.Unlock(ctx, password)
	if err != nil {
		return Keys{}, err
	}
	tagKey, err := keys.TagKey()
	if err != nil {
		return Keys{}, err
	}
	if err = v.ReadItems(ctx, tagKey); err != nil {
		return Keys{}, err
	}
	return keys, nil
}

// FolderOverview decrypts the overview of folder id into a generic map.
func (v *Vault) FolderOverview(keys Keys, id models.UUID) (map[string]any, error) {
	folder, ok := v.folders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, id)
	}

	var overview map[string]any
	if err := v.keyChain.DecryptJSON(folder.Overview, keys.Overview, &overview); err != nil {
		return nil, fmt.Errorf("folder %s overview: %w", id, err)
	}
	return overview, nil
}

// ItemOverview decrypts the overview (o) of a loaded item.
func (v *Vault) ItemOverview(keys Keys, id models.UUID) (map[string]any, error) {
	item, err := v.Item(id)
	if err != nil {
		return nil, err
	}

	var overview map[string]any
	if err = v.keyChain.DecryptJSON(item.Overview, keys.Overview, &overview); err != nil {
		return nil, fmt.Errorf("item %s overview: %w", id, err)
	}
	return overview, nil
}

// ItemDetails opens the item key and decrypts the details (d) of a loaded
// item.
func (v *Vault) ItemDetails(keys Keys, id models.UUID) (map[string]any, error) {
	item, err := v.Item(id)
	if err != nil {
		return nil, err
	}

	itemKeys, err := v.keyChain.UnwrapItemKey(item.Key, keys.Master)
	if err != nil {
		return nil, fmt.Errorf("item %s key: %w", id, err)
	}

	var details map[string]any
	if err = v.keyChain.DecryptJSON(item.Details, itemKeys, &details); err != nil {
		return nil, fmt.Errorf("item %s details: %w", id, err)
	}
	return details, nil
}

// AttachmentContents decrypts the contents of an attachment owned by a
// loaded item. Orphans cannot be opened: their item key is unknown.
func (v *Vault) AttachmentContents(keys Keys, itemID, attachmentID models.UUID) ([]byte, error) {
	item, err := v.Item(itemID)
	if err != nil {
		return nil, err
	}
	attachment, ok := item.Attachments[attachmentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAttachmentNotFound, attachmentID)
	}

	header, err := attachment.Header()
	if err != nil {
		return nil, fmt.Errorf("attachment %s: %w", attachmentID, err)
	}

	itemKeys, err := v.keyChain.UnwrapItemKey(item.Key, keys.Master)
	if err != nil {
		return nil, fmt.Errorf("item %s key: %w", itemID, err)
	}

	contents, err := v.keyChain.DecryptOpdata(header.Contents, itemKeys)
	if err != nil {
		return nil, fmt.Errorf("attachment %s contents: %w", attachmentID, err)
	}
	return contents, nil
}

// Overview is a decoded item overview as exposed to listing commands.
type Overview struct {
	Title string   `json:"title" yaml:"title"`
	URL   string   `json:"url,omitempty" yaml:"url,omitempty"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// DecodeOverview converts a generic overview map into an Overview. Unknown
// keys are ignored.
func DecodeOverview(raw map[string]any) (Overview, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return Overview{}, err
	}
	var o Overview
	if err = json.Unmarshal(data, &o); err != nil {
		return Overview{}, err
	}
	return o, nil
}
