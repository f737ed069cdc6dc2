package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("EMBEDDING_ENDPOINT", "http://inference.local")
	t.Setenv("EMBEDDING_SERVICE_TOKEN", "secret")
	t.Setenv("EMBEDDING_MODEL", "luminous-base")
	t.Setenv("EMBEDDING_HTTP_TIMEOUT_SECONDS", "7")

	cfg := NewConfig()
	assert.Equal(t, "http://inference.local", cfg.Endpoint)
	assert.Equal(t, "secret", cfg.ServiceToken)
	assert.Equal(t, "luminous-base", cfg.Model)
	assert.Equal(t, 7, cfg.HTTPTimeoutS)
}

func TestNewConfigTimeoutDefault(t *testing.T) {
	t.Setenv("EMBEDDING_HTTP_TIMEOUT_SECONDS", "not-a-number")
	cfg := NewConfig()
	assert.Equal(t, 30, cfg.HTTPTimeoutS)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Endpoint: "http://inference.local", Model: "luminous-base"}
	require.NoError(t, cfg.Validate())

	assert.Error(t, (&Config{Model: "m"}).Validate())
	assert.Error(t, (&Config{Endpoint: "http://x"}).Validate())
}
