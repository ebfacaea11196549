package vault

import "errors"

var (
	// ErrItemsNotLoaded is returned by operations that need item data
	// before a successful ReadItems.
	ErrItemsNotLoaded = errors.New("vault: items are not loaded")

	// ErrWrongPassword is returned by Unlock when the profile keys cannot be
	// authenticated with the derived key.
	ErrWrongPassword = errors.New("vault: wrong password")

	ErrItemNotFound       = errors.New("vault: item not found")
	ErrFolderNotFound     = errors.New("vault: folder not found")
	ErrAttachmentNotFound = errors.New("vault: attachment not found")
)
