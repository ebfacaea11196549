// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha512"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of each half of a [KeyPair].
	KeySize = 32

	opdataMagic      = "opdata01"
	opdataHeaderSize = len(opdataMagic) + 8 + aes.BlockSize
	tagSize          = 32

	// wrapped item key: IV | AES-CBC(64 bytes) | HMAC
	itemKeyPlainSize   = 2 * KeySize
	itemKeyWrappedSize = aes.BlockSize + itemKeyPlainSize + tagSize
)

// KeyPair is an encryption key and the MAC key that authenticates data
// encrypted with it. OPVault always uses keys in such pairs.
type KeyPair struct {
	Encryption []byte
	MAC        []byte
}

// splitKeyPair splits 64 bytes of key material into a KeyPair.
func splitKeyPair(raw []byte) KeyPair {
	enc := make([]byte, KeySize)
	mac := make([]byte, KeySize)
	copy(enc, raw[:KeySize])
	copy(mac, raw[KeySize:2*KeySize])
	return KeyPair{Encryption: enc, MAC: mac}
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct{}

// NewKeyChainService constructs a [KeyChainService]. The PBKDF2 cost is
// dictated by the profile being opened, so the service itself is stateless.
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// DeriveKeys implements [KeyChainService] with PBKDF2-HMAC-SHA512 producing
// 64 bytes: the first half encrypts, the second half authenticates.
func (k *keyChainService) DeriveKeys(password string, salt []byte, iterations int) KeyPair {
	raw := pbkdf2.Key([]byte(password), salt, iterations, 2*KeySize, sha512.New)
	return splitKeyPair(raw)
}

// UnwrapProfileKey implements [KeyChainService]. The opdata01 plaintext is
// 256 bytes of random key material; the usable pair is its SHA-512 digest.
func (k *keyChainService) UnwrapProfileKey(blob []byte, kek KeyPair) (KeyPair, error) {
	raw, err := k.DecryptOpdata(blob, kek)
	if err != nil {
		return KeyPair{}, err
	}
	sum := sha512.Sum512(raw)
	return splitKeyPair(sum[:]), nil
}

// UnwrapItemKey implements [KeyChainService]. The tag is checked before any
// decryption takes place.
func (k *keyChainService) UnwrapItemKey(wrapped []byte, master KeyPair) (KeyPair, error) {
	if len(wrapped) != itemKeyWrappedSize {
		return KeyPair{}, fmt.Errorf("%w: item key is %d bytes, want %d", ErrMalformedOpdata, len(wrapped), itemKeyWrappedSize)
	}

	body, tag := wrapped[:len(wrapped)-tagSize], wrapped[len(wrapped)-tagSize:]
	if !VerifyTag(master.MAC, body, tag) {
		return KeyPair{}, ErrAuthentication
	}

	plain, err := decryptCBC(master.Encryption, body[:aes.BlockSize], body[aes.BlockSize:])
	if err != nil {
		return KeyPair{}, err
	}
	return splitKeyPair(plain), nil
}

// DecryptOpdata implements [KeyChainService]. Layout:
//
//	"opdata01" | plaintext length (u64 LE) | IV (16) | AES-256-CBC body | HMAC-SHA256 (32)
//
// The body is a whole number of blocks with random padding prepended to the
// plaintext; the length field says how many trailing bytes are real data.
func (k *keyChainService) DecryptOpdata(blob []byte, keys KeyPair) ([]byte, error) {
	if len(blob) < opdataHeaderSize+aes.BlockSize+tagSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrMalformedOpdata, len(blob))
	}
	if !bytes.Equal(blob[:len(opdataMagic)], []byte(opdataMagic)) {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformedOpdata)
	}

	body, tag := blob[:len(blob)-tagSize], blob[len(blob)-tagSize:]
	if !VerifyTag(keys.MAC, body, tag) {
		return nil, ErrAuthentication
	}

	size := binary.LittleEndian.Uint64(body[len(opdataMagic) : len(opdataMagic)+8])
	iv := body[len(opdataMagic)+8 : opdataHeaderSize]
	plain, err := decryptCBC(keys.Encryption, iv, body[opdataHeaderSize:])
	if err != nil {
		return nil, err
	}

	if size > uint64(len(plain)) {
		return nil, fmt.Errorf("%w: declared length %d exceeds body", ErrMalformedOpdata, size)
	}
	return plain[uint64(len(plain))-size:], nil
}

// DecryptJSON implements [KeyChainService].
func (k *keyChainService) DecryptJSON(blob []byte, keys KeyPair, target any) error {
	plain, err := k.DecryptOpdata(blob, keys)
	if err != nil {
		return fmt.Errorf("decrypt opdata: %w", err)
	}

	if err := json.Unmarshal(plain, target); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func decryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: body is not a whole number of blocks", ErrMalformedOpdata)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	return plain, nil
}
