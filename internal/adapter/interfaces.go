// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

// Package adapter provides transport-layer abstractions for communicating with
// the Cryptbox server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/cryptbox/cryptbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Cryptbox
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request carrying login, auth digest and
	// encryption salt. On success it stores the returned bearer token via
	// SetToken and returns the user populated with the server-assigned
	// UserID. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// RequestSalt fetches the encryption salt that was stored for login
	// during registration. The salt is needed to re-derive the Master Key
	// before the auth digest can be computed for Login. Returns a partial
	// [models.User] containing only Login and EncryptionSalt.
	RequestSalt(ctx context.Context, login string) (models.User, error)

	// Login authenticates the user with the server using the pre-computed
	// auth digest. On success it stores the returned bearer token via
	// SetToken and returns the user populated with the server-assigned
	// UserID. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Upload sends one encrypted file to the server. A transport integrity
	// hash covering the payload is computed and attached to the request
	// automatically. Requires a valid bearer token. Returns [ErrConflict]
	// (wrapped) if a file with the same identifier already exists.
	Upload(ctx context.Context, req models.UploadRequest) (models.EncryptedFile, error)

	// Download retrieves the encrypted file identified by fileID. The
	// returned value carries the three opaque fields exactly as stored.
	// Requires a valid bearer token. Returns [ErrNotFound] (wrapped) if the
	// file does not exist or was deleted.
	Download(ctx context.Context, fileID string) (models.EncryptedFile, error)

	// List fetches lightweight descriptors (FileID, encrypted Filename,
	// CreatedAt) for all files owned by the authenticated user. Requires a
	// valid bearer token.
	List(ctx context.Context) ([]models.FileListing, error)

	// Delete sends a soft-delete request for one file. Requires a valid
	// bearer token. Returns [ErrNotFound] (wrapped) if the file does not
	// exist.
	Delete(ctx context.Context, fileID string) error
}
