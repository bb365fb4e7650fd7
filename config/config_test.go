package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTunablesOverlaysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
password_policy:
  min_length: 12
  require_special: true
otp_ttl: 5m
low_stock_threshold: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	tunables := DefaultTunables()
	require.NoError(t, loadTunables(path, &tunables))

	assert.Equal(t, 12, tunables.PasswordPolicy.MinLength)
	assert.True(t, tunables.PasswordPolicy.RequireSpecial)
	assert.Equal(t, 5*time.Minute, tunables.OTPTTL)
	assert.Equal(t, 2, tunables.LowStockThreshold)
	// untouched fields keep defaults
	assert.Equal(t, 24*time.Hour, tunables.TokenTTL)
	assert.Equal(t, 100, tunables.MaxPageLimit)
}

func TestLoadTunablesMissingFile(t *testing.T) {
	tunables := DefaultTunables()
	err := loadTunables(filepath.Join(t.TempDir(), "missing.yaml"), &tunables)
	assert.Error(t, err)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ALLOWED_ORIGINS", "https://shop.example.com, http://localhost:3000")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("DB_NAME", "shop_test")
	defer func() { App = nil }()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://shop.example.com", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Contains(t, cfg.DSN(), "dbname=shop_test")
	assert.Same(t, cfg, Current())
}
