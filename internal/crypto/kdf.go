// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of every key-derivation salt in bytes.
	SaltSize = 16

	// masterKeyIterations is the PBKDF2-SHA256 work factor for deriving
	// the Master Key from the user's password.
	masterKeyIterations = 310_000

	// storageKeyIterations is the PBKDF2-SHA256 work factor for deriving
	// the vault storage key from a session secret. Lower than the master
	// path: the vault is unlocked on every client start, and the secret
	// it stretches is itself high-entropy session material, not a
	// human-chosen password.
	storageKeyIterations = 120_000

	// authDigestMaxLen caps the auth digest at the input ceiling of the
	// server-side bcrypt pass (72 bytes). Truncating the hex SHA-512
	// digest discards entropy the server never gets to verify; whether
	// the original tradeoff was intentional is unknown, so the behavior
	// is kept rather than silently changed.
	authDigestMaxLen = 72
)

// GenerateSalt reads a fresh random key-derivation salt from the OS
// CSPRNG. One salt per user, generated at registration, never reused
// across users.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveMasterKey stretches the user's password and per-user salt into
// the 256-bit Master Key with PBKDF2-SHA256. Deterministic: identical
// (password, salt) inputs always yield the identical key, which is what
// makes re-derivation after session loss possible. Returns
// [ErrInvalidSalt] for a salt of the wrong length; that is the only
// failure mode.
func DeriveMasterKey(password string, salt []byte) (*MasterKey, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	raw := pbkdf2.Key([]byte(password), salt, masterKeyIterations, KeySize, sha256.New)
	master, err := MasterKeyFromBytes(raw)
	if err != nil {
		return nil, err
	}

	// raw was copied into the handle; scrub the derivation output.
	for i := range raw {
		raw[i] = 0
	}
	return master, nil
}

// GenerateMasterKey produces a fresh random Master Key for flows where
// the root key is not password-derived.
func GenerateMasterKey() (*MasterKey, error) {
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, fmt.Errorf("generate master key: %w", err)
	}

	master, err := MasterKeyFromBytes(raw)
	if err != nil {
		return nil, err
	}
	for i := range raw {
		raw[i] = 0
	}
	return master, nil
}

// DeriveStorageKey stretches a short-lived session secret and a fresh
// salt into the key that wraps the Master Key for at-rest persistence in
// the vault. A separate derivation path from [DeriveMasterKey] so the
// vault wrapping can rotate independently of the password-derived
// hierarchy. Returns [ErrInvalidSalt] for a salt of the wrong length.
func DeriveStorageKey(sessionSecret string, salt []byte) (*Key, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	raw := pbkdf2.Key([]byte(sessionSecret), salt, storageKeyIterations, KeySize, sha256.New)
	key, err := newKey(raw)
	if err != nil {
		return nil, err
	}
	for i := range raw {
		raw[i] = 0
	}
	return key, nil
}

// AuthDigest computes the login credential the server verifies: the hex
// SHA-512 digest of password‖salt, truncated to 72 bytes. Pass a nil
// salt for the backward-compatibility mode that digests the password
// alone. A single fast hash, structurally unrelated to the iterated
// Master Key derivation — the digest travels to the server and must not
// leak anything usable to reconstruct the Master Key, and it must never
// be substitutable for a cipher key.
func AuthDigest(password string, salt []byte) string {
	h := sha512.New()
	h.Write([]byte(password))
	h.Write(salt)

	digest := hex.EncodeToString(h.Sum(nil))
	if len(digest) > authDigestMaxLen {
		digest = digest[:authDigestMaxLen]
	}
	return digest
}
