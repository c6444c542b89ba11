package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "empty host binds all interfaces",
			input:        ":8443",
			expectedAddr: NetAddress{Port: 8443},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-a", "localhost:8080",
		"-tls-address", ":8443",
		"-tls-cert", "cert.pem",
		"-tls-key", "key.pem",
		"-c", "/etc/secure-routes.json",
		"-host", "domain.com",
		"-env", "prod",
		"-base-url", "/index.php",
		"-required", "auth/*, payment/*",
		"-excluded", "site/index",
		"-disabled-envs", "dev",
		"-safe-methods", "GET,HEAD",
		"-lenient",
		"-url-strategy", "annotate",
		"-hsts-max-age", "1h",
		"-request-timeout", "15s",
		"-trust-forwarded-proto",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":8443", cfg.Server.TLSAddress)
	assert.Equal(t, "cert.pem", cfg.Server.TLSCertFile)
	assert.Equal(t, "key.pem", cfg.Server.TLSKeyFile)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.TrustForwardedProto)

	assert.Equal(t, "/etc/secure-routes.json", cfg.JSONFilePath)
	assert.Equal(t, "domain.com", cfg.App.Host)
	assert.Equal(t, "prod", cfg.App.Environment)
	assert.Equal(t, "/index.php", cfg.App.BaseURL)

	assert.Equal(t, []string{"auth/*", "payment/*"}, cfg.Secure.RequiredRoutes)
	assert.Equal(t, []string{"site/index"}, cfg.Secure.ExcludedRoutes)
	assert.Equal(t, []string{"dev"}, cfg.Secure.DisabledEnvironments)
	assert.Equal(t, []string{"GET", "HEAD"}, cfg.Secure.SafeMethods)
	assert.True(t, cfg.Secure.Lenient)
	assert.False(t, cfg.Secure.Disabled)
	assert.Equal(t, URLStrategyAnnotate, cfg.Secure.URLStrategy)
	assert.Equal(t, time.Hour, cfg.Secure.HSTSMaxAge)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad http address", []string{"-a", "nohost"}},
		{"bad tls address", []string{"-tls-address", "example.com:443"}},
		{"bad duration", []string{"-hsts-max-age", "forever"}},
		{"unknown flag", []string{"-unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestListFlag_Set(t *testing.T) {
	var l listFlag
	require.NoError(t, l.Set("a, b,,c"))
	require.NoError(t, l.Set("d"))
	assert.Equal(t, listFlag{"a", "b", "c", "d"}, l)
	assert.Equal(t, "a,b,c,d", l.String())
}
