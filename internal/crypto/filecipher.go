// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// FileSeal bundles everything [KeyChain.EncryptFile] emits for one file.
// The body and the key wrap are two independent AEAD operations with two
// independent nonces: the Master Key can rotate (re-wrapping just the
// File Key) without touching the potentially large encrypted body.
type FileSeal struct {
	// Ciphertext is the file body encrypted with the one-time File Key.
	Ciphertext []byte

	// WrappedFileKey is the File Key encrypted under the Master Key.
	WrappedFileKey []byte

	// BodyNonce is the nonce used for Ciphertext.
	BodyNonce []byte

	// KeyNonce is the nonce used for WrappedFileKey.
	KeyNonce []byte
}

// EncryptFile implements [KeyChain]. Step order is fixed: key generation,
// body encryption, key wrap — each step consumes the previous one's
// output.
func (k *keyChain) EncryptFile(master *MasterKey, plaintext []byte) (FileSeal, error) {
	fileKey, err := generateFileKey()
	if err != nil {
		return FileSeal{}, err
	}
	defer fileKey.Zero()

	bodyNonce, err := NewNonce()
	if err != nil {
		return FileSeal{}, err
	}
	ciphertext, err := Seal(&fileKey.Key, bodyNonce, plaintext)
	if err != nil {
		return FileSeal{}, fmt.Errorf("encrypt file body: %w", err)
	}

	keyNonce, err := NewNonce()
	if err != nil {
		return FileSeal{}, err
	}
	wrapped, err := Seal(&master.Key, keyNonce, fileKey.ExportBytes())
	if err != nil {
		return FileSeal{}, fmt.Errorf("wrap file key: %w", err)
	}

	return FileSeal{
		Ciphertext:     ciphertext,
		WrappedFileKey: wrapped,
		BodyNonce:      bodyNonce,
		KeyNonce:       keyNonce,
	}, nil
}

// DecryptFile implements [KeyChain]. An unwrap failure (stale session,
// wrong Master Key) and a body failure (corrupted transport) carry
// different wrapped messages for diagnostics, but both match
// [ErrCannotDecrypt] — the caller sees a single "cannot decrypt" kind.
func (k *keyChain) DecryptFile(master *MasterKey, seal FileSeal) ([]byte, error) {
	rawFileKey, err := Open(&master.Key, seal.KeyNonce, seal.WrappedFileKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap file key: %v", ErrCannotDecrypt, err)
	}

	fileKey, err := FileKeyFromBytes(rawFileKey)
	for i := range rawFileKey {
		rawFileKey[i] = 0
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap file key: %v", ErrCannotDecrypt, err)
	}
	defer fileKey.Zero()

	plaintext, err := Open(&fileKey.Key, seal.BodyNonce, seal.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt file body: %v", ErrCannotDecrypt, err)
	}

	return plaintext, nil
}

// generateFileKey produces a fresh random one-time File Key.
func generateFileKey() (*FileKey, error) {
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, fmt.Errorf("generate file key: %w", err)
	}

	fileKey, err := FileKeyFromBytes(raw)
	if err != nil {
		return nil, err
	}
	for i := range raw {
		raw[i] = 0
	}
	return fileKey, nil
}
