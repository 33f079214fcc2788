// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package crypto

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cryptbox/cryptbox/models"
)

// Fallback values returned when a metadata or filename blob cannot be
// decrypted. Records written before the current format are expected to
// land here; so does genuine corruption — the two are indistinguishable
// at this boundary, and callers must not be given an error to branch on.
const (
	FallbackFilename = "Unnamed file"
	FallbackMIMEType = "application/octet-stream"
)

// Internal reasons a metadata decrypt degraded to the fallback record.
// Deliberately unexported: the degrade-gracefully contract forbids
// surfacing them, but tests and diagnostics can still tell malformed
// blobs from authentication failures.
var (
	errMetadataMalformed = errors.New("metadata blob malformed")
	errMetadataAuth      = errors.New("metadata authentication failed")
	errMetadataEncoding  = errors.New("metadata record not decodable")
)

// EncryptMetadata implements [KeyChain]. The record is serialized to
// JSON, encrypted under master with a fresh nonce, and emitted as one
// opaque encoded value: nonce ‖ ciphertext.
func (k *keyChain) EncryptMetadata(master *MasterKey, record models.FileMetadata) (string, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	return sealToBlob(&master.Key, plaintext)
}

// DecryptMetadata implements [KeyChain]. Any failure — undecodable blob,
// tag mismatch, malformed JSON — yields the fallback record instead of an
// error.
func (k *keyChain) DecryptMetadata(master *MasterKey, blob string) models.FileMetadata {
	record, err := decryptMetadata(master, blob)
	if err != nil {
		return models.FileMetadata{
			Filename: FallbackFilename,
			Size:     0,
			MIMEType: FallbackMIMEType,
		}
	}
	return record
}

// decryptMetadata is the failable inner form of DecryptMetadata. Only
// tests see its error; the exported method absorbs it.
func decryptMetadata(master *MasterKey, blob string) (models.FileMetadata, error) {
	plaintext, err := openBlob(&master.Key, blob)
	if err != nil {
		return models.FileMetadata{}, err
	}

	var record models.FileMetadata
	if err := json.Unmarshal(plaintext, &record); err != nil {
		return models.FileMetadata{}, fmt.Errorf("%w: %v", errMetadataEncoding, err)
	}
	return record, nil
}

// EncryptFilename implements [KeyChain]. Same blob layout as
// EncryptMetadata, applied to the bare string.
func (k *keyChain) EncryptFilename(master *MasterKey, filename string) (string, error) {
	return sealToBlob(&master.Key, []byte(filename))
}

// DecryptFilename implements [KeyChain], degrading to the placeholder
// name on any failure.
func (k *keyChain) DecryptFilename(master *MasterKey, blob string) string {
	plaintext, err := openBlob(&master.Key, blob)
	if err != nil {
		return FallbackFilename
	}
	return string(plaintext)
}

// sealToBlob encrypts plaintext with a fresh nonce and encodes
// nonce ‖ ciphertext into one transport-safe value.
func sealToBlob(key *Key, plaintext []byte) (string, error) {
	nonce, err := NewNonce()
	if err != nil {
		return "", err
	}

	ciphertext, err := Seal(key, nonce, plaintext)
	if err != nil {
		return "", err
	}

	return EncodeBlob(append(nonce, ciphertext...)), nil
}

// openBlob reverses [sealToBlob], mapping every failure to one of the
// unexported metadata reasons.
func openBlob(key *Key, blob string) ([]byte, error) {
	raw, err := DecodeBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMetadataMalformed, err)
	}
	if len(raw) < NonceSize {
		return nil, fmt.Errorf("%w: %d bytes", errMetadataMalformed, len(raw))
	}

	nonce, ciphertext := raw[:NonceSize], raw[NonceSize:]
	plaintext, err := Open(key, nonce, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMetadataAuth, err)
	}
	return plaintext, nil
}
