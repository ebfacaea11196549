package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-opvault/models"
)

// Sentinel errors for the three failure classes a vault load can produce.
// Every typed error below matches exactly one of them with [errors.Is].
var (
	// ErrIO is matched by [*IOError]: a file is missing or unreadable.
	ErrIO = errors.New("vault i/o failure")

	// ErrFormat is matched by [*FormatError]: a profile, folder, item or
	// attachment file is structurally malformed.
	ErrFormat = errors.New("malformed vault data")

	// ErrIntegrity is matched by [*IntegrityError]: an item's stored tag does
	// not match the tag recomputed under the supplied key.
	ErrIntegrity = errors.New("item integrity check failed")
)

// IOError reports a file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// FormatError reports a file whose content does not follow the OPVault
// layout.
type FormatError struct {
	File string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s: %v", e.File, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IntegrityError names the item whose tag failed verification.
type IntegrityError struct {
	UUID models.UUID
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("item %s: hmac mismatch", e.UUID)
}

func (e *IntegrityError) Is(target error) bool { return target == ErrIntegrity }
