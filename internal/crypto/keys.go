// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package crypto

// KeySize is the length in bytes of every symmetric key in the hierarchy
// (AES-256).
const KeySize = 32

// Key is an opaque handle over a fixed-length secret byte array. Code
// outside this package can move key bytes across a boundary only through
// [Key.ExportBytes] / the *FromBytes constructors, and can destroy the
// backing memory with [Key.Zero]. The raw bytes are never printed, never
// logged, and never reachable by accident: Key has no String method and
// its field is unexported.
type Key struct {
	secret []byte
}

// newKey copies b into a fresh Key. The caller keeps ownership of b.
func newKey(b []byte) (*Key, error) {
	if len(b) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	secret := make([]byte, KeySize)
	copy(secret, b)
	return &Key{secret: secret}, nil
}

// ExportBytes returns a copy of the key material. The copy is the caller's
// to wrap, persist, or zero; the handle's own backing memory is unaffected.
func (k *Key) ExportBytes() []byte {
	out := make([]byte, len(k.secret))
	copy(out, k.secret)
	return out
}

// Zero overwrites the backing memory with zeros. The handle must not be
// used for cryptographic operations afterwards.
func (k *Key) Zero() {
	for i := range k.secret {
		k.secret[i] = 0
	}
}

// bytes exposes the backing slice without copying. Package-internal:
// callers hand it straight to the AEAD and must not retain it.
func (k *Key) bytes() []byte {
	return k.secret
}

// MasterKey is the long-lived root key derived from the user's password
// and per-user salt. It wraps File Keys and encrypts metadata; it never
// encrypts file bodies directly and never leaves the client.
type MasterKey struct {
	Key
}

// MasterKeyFromBytes imports a previously exported Master Key, e.g. after
// unwrapping it from the vault. Returns [ErrInvalidKeyLength] if b is not
// exactly [KeySize] bytes.
func MasterKeyFromBytes(b []byte) (*MasterKey, error) {
	k, err := newKey(b)
	if err != nil {
		return nil, err
	}
	return &MasterKey{Key: *k}, nil
}

// FileKey is a one-time key generated per uploaded file. It encrypts that
// file's body only, is immediately wrapped under the Master Key, and the
// plaintext form is discarded as soon as the wrap (or the download-side
// body decrypt) completes.
type FileKey struct {
	Key
}

// FileKeyFromBytes imports File Key material, e.g. after unwrapping it at
// download time. Returns [ErrInvalidKeyLength] if b is not exactly
// [KeySize] bytes.
func FileKeyFromBytes(b []byte) (*FileKey, error) {
	k, err := newKey(b)
	if err != nil {
		return nil, err
	}
	return &FileKey{Key: *k}, nil
}
