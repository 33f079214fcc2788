// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// NonceSize is the AES-GCM nonce length in bytes (96 bits).
const NonceSize = 12

// NewNonce reads a fresh random nonce from the OS CSPRNG. Nonces are
// generated by callers, not inside Seal, so that each call site (file
// body, key wrap, metadata, vault) can keep its own nonce alongside its
// ciphertext. A nonce must never be reused with the same key.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return nonce, nil
}

// Seal encrypts plaintext with key under AES-256-GCM using the
// caller-supplied nonce and returns ciphertext with the authentication
// tag appended. Returns [ErrInvalidNonce] if the nonce has the wrong
// length; the nonce is checked before the cipher is built.
func Seal(key *Key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrInvalidNonce
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts ciphertext produced by [Seal] and verifies its tag.
// A tag mismatch — wrong key, or any bit flipped in storage or transit —
// is reported as [ErrAuthentication] and no plaintext is returned. There
// is no best-effort mode.
func Open(key *Key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrInvalidNonce
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return plaintext, nil
}

func newGCM(key *Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key.bytes())
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
