package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearConfigEnv unsets all config env vars so tests start clean.
func clearConfigEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"KIMLOAN_API_URL",
		"KIMLOAN_USERNAME",
		"KIMLOAN_PASSWORD",
		"KIMLOAN_STATE_DIR",
		"KIMLOAN_HTTP_TIMEOUT",
		"ENVIRONMENT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// setMinimalEnv sets the minimum env vars for a valid config.
func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KIMLOAN_API_URL", "https://api.kimloan.example.com")
}

func TestLoad_Minimal(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.kimloan.example.com", cfg.APIURL)
	assert.Empty(t, cfg.Username)
	assert.Empty(t, cfg.Password)
	assert.Empty(t, cfg.StateDir)
}

func TestLoad_MissingAPIURL(t *testing.T) {
	clearConfigEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KIMLOAN_API_URL")
}

func TestLoad_RelativeAPIURLRejected(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("KIMLOAN_API_URL", "api.kimloan.example.com/v1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute URL")
}

func TestLoad_Credentials(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)
	t.Setenv("KIMLOAN_USERNAME", "mary.w")
	t.Setenv("KIMLOAN_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mary.w", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
}

func TestLoad_PasswordWithoutUsername(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)
	t.Setenv("KIMLOAN_PASSWORD", "secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KIMLOAN_USERNAME")
}

func TestLoad_UsernameWithoutPasswordAllowed(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)
	t.Setenv("KIMLOAN_USERNAME", "mary.w")

	// The login command will prompt for the password.
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mary.w", cfg.Username)
}

// --- Defaults ---

func TestLoad_DefaultHTTPTimeout(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_CustomHTTPTimeout(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)
	t.Setenv("KIMLOAN_HTTP_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_NegativeHTTPTimeoutRejected(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)
	t.Setenv("KIMLOAN_HTTP_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KIMLOAN_HTTP_TIMEOUT")
}

func TestLoad_DefaultEnvironment(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_CustomEnvironment(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_StateDir(t *testing.T) {
	clearConfigEnv(t)
	setMinimalEnv(t)
	dir := t.TempDir()
	t.Setenv("KIMLOAN_STATE_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.StateDir)
}

// --- IsProduction ---

func TestIsProduction_True(t *testing.T) {
	cfg := &Config{Environment: "production"}
	assert.True(t, cfg.IsProduction())
}

func TestIsProduction_False(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.False(t, cfg.IsProduction())
}
