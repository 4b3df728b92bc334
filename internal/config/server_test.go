package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := LoadServerConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), cfg)
}

func TestLoadServerConfig_File(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":9090"
  read_timeout: 2s
rate_limit:
  enabled: false
pagination:
  max_page_size: 50
`)

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout, "keys missing from the file keep their defaults")
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.Equal(t, 20, cfg.Pagination.DefaultPageSize)
}

func TestLoadServerConfig_RepositoryFile(t *testing.T) {
	cfg, err := LoadServerConfig(filepath.Join("..", "..", "configs", "server.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerConfig(), cfg)
}

func TestLoadServerConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http:\n  addr: \":9090\"\n")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("RATE_LIMIT_TRUST_PROXY", "true")
	t.Setenv("PAGINATION_DEFAULT_PAGE_SIZE", "10")

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, 5.5, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.RateLimit.TrustProxy)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
}

func TestLoadServerConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			body:    "http: [",
			wantErr: "failed to parse config",
		},
		{
			name:    "negative timeout",
			body:    "http:\n  read_timeout: -1s\n",
			wantErr: "http: read_timeout must be a positive duration",
		},
		{
			name:    "default page size above max",
			body:    "pagination:\n  default_page_size: 500\n",
			wantErr: "pagination: default page size",
		},
		{
			name:    "rate limit without burst",
			body:    "rate_limit:\n  burst: 0\n",
			wantErr: "rate_limit burst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadServerConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
