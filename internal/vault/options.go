package vault

import (
	"github.com/MKhiriev/go-opvault/internal/crypto"
	"github.com/MKhiriev/go-opvault/internal/logger"
	"github.com/MKhiriev/go-opvault/internal/store"
)

// Option configures [Open].
type Option func(*options)

type options struct {
	logger      *logger.Logger
	profiles    store.ProfileLoader
	folders     store.FolderLoader
	attachments store.AttachmentLoader
	items       store.ItemLoader
	keyChain    crypto.KeyChainService
}

// WithLogger sets the logger used by the vault and by the default loaders.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithStorages replaces all four loaders at once.
func WithStorages(s *store.FileStorages) Option {
	return func(o *options) {
		o.profiles = s.Profiles
		o.folders = s.Folders
		o.attachments = s.Attachments
		o.items = s.Items
	}
}

func WithProfileLoader(l store.ProfileLoader) Option {
	return func(o *options) { o.profiles = l }
}

func WithFolderLoader(l store.FolderLoader) Option {
	return func(o *options) { o.folders = l }
}

func WithAttachmentLoader(l store.AttachmentLoader) Option {
	return func(o *options) { o.attachments = l }
}

func WithItemLoader(l store.ItemLoader) Option {
	return func(o *options) { o.items = l }
}

// WithKeyChain replaces the key chain used by Unlock and the decrypt helpers.
func WithKeyChain(k crypto.KeyChainService) Option {
	return func(o *options) { o.keyChain = k }
}

// buildOptions applies opts and fills every loader left unset with its
// file-backed default.
func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logger.Nop()
	}

	defaults := store.NewFileStorages(o.logger)
	if o.profiles == nil {
		o.profiles = defaults.Profiles
	}
	if o.folders == nil {
		o.folders = defaults.Folders
	}
	if o.attachments == nil {
		o.attachments = defaults.Attachments
	}
	if o.items == nil {
		o.items = defaults.Items
	}
	if o.keyChain == nil {
		o.keyChain = crypto.NewKeyChainService()
	}

	return o
}
