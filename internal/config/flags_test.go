package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestFlags(t *testing.T, args ...string) (*StructuredConfig, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("cryptbox-test", flag.ContinueOnError)
	cfg := parseFlagsInto(fs, args)
	return cfg, fs
}

func TestParseFlags_AllValues(t *testing.T) {
	cfg, _ := parseTestFlags(t,
		"-a", "localhost:8080",
		"-d", "postgres://localhost/cryptbox",
		"-s", "http://localhost:8080",
		"-hash-key", "integrity-key",
		"-token-sign-key", "sign-key",
		"-token-issuer", "cryptbox",
		"-token-duration", "1h",
		"-request-timeout", "30s",
		"-purge-interval", "10m",
		"-purge-retention", "24h",
	)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/cryptbox", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "integrity-key", cfg.App.HashKey)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "cryptbox", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.PurgeInterval)
	assert.Equal(t, 24*time.Hour, cfg.Workers.PurgeRetention)
}

// Flags before the subcommand must be consumed by the flag set while
// the subcommand and its arguments survive in fs.Args(): the client
// binary dispatches on exactly that residue.
func TestParseFlags_SubcommandSurvivesFlagParsing(t *testing.T) {
	cfg, fs := parseTestFlags(t, "-s", "http://localhost:8080", "upload", "notes.txt")

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, []string{"upload", "notes.txt"}, fs.Args())
}

func TestParseFlags_NoArguments(t *testing.T) {
	cfg, fs := parseTestFlags(t)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, fs.Args())
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"localhost with port", "localhost:8080", "localhost", 8080, false},
		{"ip with port", "127.0.0.1:9090", "127.0.0.1", 9090, false},
		{"missing port", "localhost", "", 0, true},
		{"bad port", "localhost:abc", "", 0, true},
		{"negative port", "localhost:-1", "", 0, true},
		{"bad host", "not-an-ip:8080", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}
