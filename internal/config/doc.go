// Package config assembles and validates runtime configuration for the
// cryptbox server and client binaries.
//
// Values are merged from three sources, later ones overriding earlier
// non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] builds the server configuration;
// [GetClientConfig] builds the narrower client view (transport address,
// integrity hash key, local sqlite store).
package config
