// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, response compression, and integrity checks are handled in this
// package before requests are delegated to the service layer.
//
// The server never sees plaintext: every file body, filename, and metadata
// record arriving here is already ciphertext produced on the client, and the
// handlers persist the opaque values verbatim.
package http
