package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"name": "secure-routes",
			"host": "domain.com",
			"environment": "prod",
			"base_url": "/index.php"
		},
		"server": {
			"http_address": "localhost:8080",
			"tls_address": "localhost:8443",
			"autocert_hosts": ["domain.com"],
			"autocert_cache_dir": "/var/cache/acme",
			"request_timeout": "30s",
			"trust_forwarded_proto": true
		},
		"secure": {
			"disabled_environments": ["dev"],
			"required_routes": ["auth/*"],
			"excluded_routes": ["site/index"],
			"safe_methods": ["GET", "HEAD"],
			"lenient": true,
			"url_strategy": "annotate",
			"hsts_max_age": "24h"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "secure-routes", cfg.App.Name)
	assert.Equal(t, "domain.com", cfg.App.Host)
	assert.Equal(t, "prod", cfg.App.Environment)
	assert.Equal(t, "/index.php", cfg.App.BaseURL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:8443", cfg.Server.TLSAddress)
	assert.Equal(t, []string{"domain.com"}, cfg.Server.AutocertHosts)
	assert.Equal(t, "/var/cache/acme", cfg.Server.AutocertCacheDir)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.TrustForwardedProto)

	assert.Equal(t, []string{"dev"}, cfg.Secure.DisabledEnvironments)
	assert.Equal(t, []string{"auth/*"}, cfg.Secure.RequiredRoutes)
	assert.Equal(t, []string{"site/index"}, cfg.Secure.ExcludedRoutes)
	assert.Equal(t, []string{"GET", "HEAD"}, cfg.Secure.SafeMethods)
	assert.True(t, cfg.Secure.Lenient)
	assert.Equal(t, URLStrategyAnnotate, cfg.Secure.URLStrategy)
	assert.Equal(t, 24*time.Hour, cfg.Secure.HSTSMaxAge)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"secure": { "hsts_max_age": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.TLSAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Secure{}, cfg.Secure)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"90s"`, 90 * time.Second, false},
		{"nanoseconds", `1000`, time.Microsecond, false},
		{"bad string", `"soon"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(time.Minute).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m0s"`, string(b))
}
