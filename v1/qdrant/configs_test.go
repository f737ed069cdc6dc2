package qdrant

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "localhost", cfg.Endpoint)
	assert.Equal(t, 6334, cfg.Port)
	assert.True(t, cfg.CheckCompatibility)
	assert.NoError(t, cfg.Validate())
}

func TestConfigBuilders(t *testing.T) {
	cfg := FromEndpoint("qdrant.internal").
		WithPort(7000).
		WithApiKey("secret").
		WithTLS(true).
		WithTimeout(10 * time.Second).
		WithCompatibilityCheck(false)

	assert.Equal(t, "qdrant.internal", cfg.Endpoint)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "secret", cfg.ApiKey)
	assert.True(t, cfg.UseTLS)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.False(t, cfg.CheckCompatibility)
}

func TestConfigValidate_MissingEndpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endpoint = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qdrant.yaml")
	data := []byte("endpoint: qdrant.staging\nport: 6335\nuse_tls: true\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "qdrant.staging", cfg.Endpoint)
	assert.Equal(t, 6335, cfg.Port)
	assert.True(t, cfg.UseTLS)
	// Defaults survive for fields the file does not set.
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [qdrant"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
