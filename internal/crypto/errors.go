package crypto

import "errors"

var (
	// ErrAuthentication is returned when a MAC does not match. For profile
	// keys this almost always means the master password is wrong.
	ErrAuthentication = errors.New("authentication tag mismatch")

	// ErrMalformedOpdata is returned when a blob does not follow the
	// opdata01 or wrapped-key layout.
	ErrMalformedOpdata = errors.New("malformed opdata")
)
