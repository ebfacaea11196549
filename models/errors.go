// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrMalformedAttachment is returned by [Attachment.Header] when the
	// file does not follow the OPCLDAT layout.
	ErrMalformedAttachment = errors.New("malformed attachment")

	// ErrInvalidHMACKey is returned by [NewHMACKey] for keys of the wrong
	// length.
	ErrInvalidHMACKey = errors.New("invalid hmac key length")
)
