package crypto

import "errors"

// Sentinel errors returned by the crypto layer. Callers should match them
// with [errors.Is]; the concrete wrapped messages add call-site context only.
var (
	// ErrInvalidKeyLength is returned when imported key material is not
	// exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidSalt is returned when a key-derivation salt has the wrong
	// length. Detected before any derivation work is done.
	ErrInvalidSalt = errors.New("invalid salt length")

	// ErrInvalidNonce is returned when a caller-supplied AEAD nonce is not
	// exactly NonceSize bytes. Detected before any cryptographic call.
	ErrInvalidNonce = errors.New("invalid nonce length")

	// ErrAuthentication is returned when an AEAD open fails its tag check:
	// wrong key or tampered ciphertext. No partial plaintext is ever
	// returned alongside it.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrCannotDecrypt is the single user-facing "wrong key or corrupted
	// data" condition the file cipher reports. Both unwrap failures and
	// body-decrypt failures match it.
	ErrCannotDecrypt = errors.New("cannot decrypt")

	// ErrMalformedBlob is returned when an encoded blob cannot be decoded
	// or is too short to contain a nonce.
	ErrMalformedBlob = errors.New("malformed encrypted blob")
)
