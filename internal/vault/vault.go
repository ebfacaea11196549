// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"

	"github.com/MKhiriev/go-opvault/internal/crypto"
	"github.com/MKhiriev/go-opvault/internal/logger"
	"github.com/MKhiriev/go-opvault/internal/store"
	"github.com/MKhiriev/go-opvault/models"
)

const (
	// DefaultProfile is the only profile sub-directory current clients
	// write. Every path inside a container is resolved below it.
	DefaultProfile = "default"

	// ProfileFile and FoldersFile are the fixed files of a profile.
	ProfileFile = "profile.js"
	FoldersFile = "folders.js"
)

// Vault is one opened OPVault profile.
type Vault struct {
	base    string
	profile models.Profile
	folders map[models.UUID]models.Folder
	items   ItemsState

	// attachments holds every attachment not owned by a loaded item: all
	// of them before the first ReadItems, only orphans afterwards.
	attachments map[models.UUID]models.Attachment

	itemLoader store.ItemLoader
	keyChain   crypto.KeyChainService
	logger     *logger.Logger
}

// Open reads the metadata of the container at basePath: the profile, the
// folder index and the attachment files of the default profile, in that
// order. No key is needed and nothing is decrypted or verified.
//
// The first loader error aborts Open and is returned wrapped; it still
// matches store.ErrIO or store.ErrFormat with errors.Is.
func Open(ctx context.Context, basePath string, opts ...Option) (*Vault, error) {
	o := buildOptions(opts)
	base := filepath.Join(basePath, DefaultProfile)
	log := o.logger

	profile, err := o.profiles.LoadProfile(ctx, filepath.Join(base, ProfileFile))
	if err != nil {
		log.Error().Err(err).Str("path", base).Msg("failed to load profile")
		return nil, fmt.Errorf("load profile: %w", err)
	}

	folders, err := o.folders.LoadFolders(ctx, filepath.Join(base, FoldersFile))
	if err != nil {
		log.Error().Err(err).Str("path", base).Msg("failed to load folders")
		return nil, fmt.Errorf("load folders: %w", err)
	}

	attachments, err := o.attachments.LoadAttachments(ctx, base)
	if err != nil {
		log.Error().Err(err).Str("path", base).Msg("failed to load attachments")
		return nil, fmt.Errorf("load attachments: %w", err)
	}

	log.Info().
		Str("path", base).
		Int("folders", len(folders)).
		Int("attachments", len(attachments)).
		Msg("vault metadata loaded")

	return &Vault{
		base:        base,
		profile:     profile,
		folders:     folders,
		items:       NotLoaded{},
		attachments: attachments,
		itemLoader:  o.items,
		keyChain:    o.keyChain,
		logger:      log,
	}, nil
}

// ReadItems loads and verifies every item with key, then moves each
// attachment into the item that owns it.
//
// It may be called in either state. On success the previous snapshot, if
// any, is replaced; attachments it held are redistributed over the new
// items. On failure nothing changes: the items state and the orphan set are
// exactly what they were before the call.
func (v *Vault) ReadItems(ctx context.Context, key models.HMACKey) error {
	items, err := v.itemLoader.LoadItems(ctx, v.base, key)
	if err != nil {
		v.logger.Error().Err(err).Str("path", v.base).Msg("failed to read items")
		return fmt.Errorf("read items: %w", err)
	}

	orphans := partitionAttachments(v.attachmentPool(), items)

	v.items = Loaded{items: items}
	v.attachments = orphans

	v.logger.Info().Int("items", len(items)).Msg("items loaded")
	if len(orphans) > 0 {
		v.logger.Warn().Int("orphans", len(orphans)).Msg("attachments without a matching item kept as orphans")
	}

	return nil
}

// attachmentPool gathers every attachment the vault holds, standalone or
// inside the current snapshot, into a new map. The vault's own maps are not
// touched, so a later failure cannot leave them half-drained.
func (v *Vault) attachmentPool() map[models.UUID]models.Attachment {
	pool := maps.Clone(v.attachments)
	if pool == nil {
		pool = make(map[models.UUID]models.Attachment)
	}

	if loaded, ok := v.items.(Loaded); ok {
		for _, item := range loaded.items {
			maps.Copy(pool, item.Attachments)
		}
	}
	return pool
}

// Base is the resolved profile directory.
func (v *Vault) Base() string {
	return v.base
}

// Profile returns the profile loaded by Open.
func (v *Vault) Profile() models.Profile {
	return v.profile
}

// Folders returns a copy of the folder index.
func (v *Vault) Folders() map[models.UUID]models.Folder {
	return maps.Clone(v.folders)
}

// State reports whether items have been loaded.
func (v *Vault) State() ItemsState {
	return v.items
}

// Items returns the item snapshot and true once ReadItems has succeeded.
func (v *Vault) Items() (map[models.UUID]models.Item, bool) {
	loaded, ok := v.items.(Loaded)
	if !ok {
		return nil, false
	}
	return loaded.Items(), true
}

// Item looks up a single loaded item. The returned attachment map is a copy.
func (v *Vault) Item(id models.UUID) (models.Item, error) {
	loaded, ok := v.items.(Loaded)
	if !ok {
		return models.Item{}, ErrItemsNotLoaded
	}
	item, ok := loaded.items[id]
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return cloneItem(item), nil
}

// Orphans returns the attachments that are not owned by a loaded item.
// Before the first successful ReadItems this is every attachment.
func (v *Vault) Orphans() map[models.UUID]models.Attachment {
	return maps.Clone(v.attachments)
}
