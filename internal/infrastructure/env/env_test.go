package env

import (
	"os"
	"path/filepath"
	"testing"

	"weather-agent/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireCredential(t *testing.T) {
	e := &EnvService{}

	t.Setenv(KeyAPIKey, "")
	_, err := e.RequireCredential(KeyAPIKey)
	assert.ErrorIs(t, err, entity.ErrCredentialMissing)
	assert.ErrorContains(t, err, KeyAPIKey)

	t.Setenv(KeyAPIKey, "sk-test")
	val, err := e.RequireCredential(KeyAPIKey)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", val)
}

func TestGetWithDefault(t *testing.T) {
	e := &EnvService{}

	t.Setenv(KeyModel, "")
	assert.Equal(t, "gpt-4o-mini", e.GetWithDefault(KeyModel, "gpt-4o-mini"))

	t.Setenv(KeyModel, "gpt-4o")
	assert.Equal(t, "gpt-4o", e.GetWithDefault(KeyModel, "gpt-4o-mini"))
}

func TestGetBool(t *testing.T) {
	e := &EnvService{}

	t.Setenv(KeyHTTPDebug, "true")
	assert.True(t, e.GetBool(KeyHTTPDebug, false))

	t.Setenv(KeyHTTPDebug, "nope")
	assert.False(t, e.GetBool(KeyHTTPDebug, false))

	t.Setenv(KeyHTTPDebug, "")
	assert.True(t, e.GetBool(KeyHTTPDebug, true))
}

func TestNewEnvService_LoadsAppEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("LLM_BACKEND=langchain\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv(keyAppEnv, "test")
	t.Setenv(KeyBackend, "")

	e := NewEnvService()

	assert.Equal(t, "langchain", e.Get(KeyBackend))
}
