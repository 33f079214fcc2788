// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied credentials do
	// not match any existing user record. The wording deliberately does not
	// distinguish an unknown login from a wrong password.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUserNotFound is returned by the salt endpoint when the requested
	// login has no account.
	MsgUserNotFound = "user not found"

	// MsgFileAlreadyExists is returned when an upload reuses a file
	// identifier that the server already holds.
	MsgFileAlreadyExists = "file already exists"

	// MsgFileNotFound is returned when a download or delete targets a file
	// that does not exist for the current user.
	MsgFileNotFound = "file not found"

	// MsgIntegrityCheckFailed is returned when the transport integrity hash
	// of an upload does not match the payload.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"
)
