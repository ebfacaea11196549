// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// SealOpdata is the inverse of [KeyChainService.DecryptOpdata]. The vault is
// never written by this module; sealing exists so fixtures and tooling can
// produce containers that the reader accepts.
func SealOpdata(plaintext []byte, keys KeyPair) ([]byte, error) {
	// Random padding is prepended; a full block is added when the
	// plaintext is already aligned.
	padLen := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := make([]byte, padLen+len(plaintext))
	if _, err := io.ReadFull(rand.Reader, padded[:padLen]); err != nil {
		return nil, fmt.Errorf("generate padding: %w", err)
	}
	copy(padded[padLen:], plaintext)

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, err := encryptCBC(keys.Encryption, iv, padded)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, opdataHeaderSize+len(ciphertext)+tagSize)
	blob = append(blob, opdataMagic...)
	blob = binary.LittleEndian.AppendUint64(blob, uint64(len(plaintext)))
	blob = append(blob, iv...)
	blob = append(blob, ciphertext...)
	return append(blob, ComputeTag(keys.MAC, blob)...), nil
}

// WrapItemKey is the inverse of [KeyChainService.UnwrapItemKey].
func WrapItemKey(item, master KeyPair) ([]byte, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	plain := append(append([]byte{}, item.Encryption...), item.MAC...)
	ciphertext, err := encryptCBC(master.Encryption, iv, plain)
	if err != nil {
		return nil, err
	}

	body := append(iv, ciphertext...)
	return append(body, ComputeTag(master.MAC, body)...), nil
}

func encryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)
	return out, nil
}
