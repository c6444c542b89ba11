// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// URL strategies accepted by [Secure.URLStrategy].
const (
	// URLStrategyRewrite prefixes generated relative URLs with the origin of
	// the protocol their route needs, per request.
	URLStrategyRewrite = "rewrite"
	// URLStrategyAnnotate binds absolute origins to matching routing rules
	// once at startup.
	URLStrategyAnnotate = "annotate"
	// URLStrategyBoth enables both strategies.
	URLStrategyBoth = "both"
	// URLStrategyNone leaves generated URLs alone.
	URLStrategyNone = "none"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application identity and the canonical host.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses, TLS material and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Secure holds the connection policy: route lists, method
	// classification, mode and URL strategy.
	Secure Secure `envPrefix:"SECURE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is the role label attached to every log entry.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Host is the canonical public host (optionally with port) used to
	// build absolute origins when routing rules are annotated at startup,
	// e.g. "domain.com" or "domain.com:8443".
	// Env: APP_HOST
	Host string `env:"HOST" validate:"omitempty,hostname|hostname_port"`

	// Environment names the deployment environment (e.g. "dev", "prod").
	// It is matched against Secure.DisabledEnvironments.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// BaseURL is a path prefix prepended to every generated URL
	// (e.g. "/index.php").
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"omitempty,startswith=/"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network, TLS and timeout settings.
type Server struct {
	// HTTPAddress is the plain HTTP listener address ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"omitempty,hostname_port"`

	// TLSAddress is the HTTPS listener address ("host:port").
	// Env: SERVER_TLS_ADDRESS
	TLSAddress string `env:"TLS_ADDRESS" validate:"omitempty,hostname_port"`

	// TLSCertFile and TLSKeyFile are the PEM certificate and key paths.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	TLSCertFile string `env:"TLS_CERT_FILE" validate:"required_with=TLSKeyFile"`
	TLSKeyFile  string `env:"TLS_KEY_FILE" validate:"required_with=TLSCertFile"`

	// AutocertHosts enables ACME certificates for the listed hosts when no
	// certificate files are given.
	// Env: SERVER_AUTOCERT_HOSTS (comma separated)
	AutocertHosts []string `env:"AUTOCERT_HOSTS" validate:"dive,hostname"`

	// AutocertCacheDir stores ACME certificates between restarts.
	// Env: SERVER_AUTOCERT_CACHE_DIR
	AutocertCacheDir string `env:"AUTOCERT_CACHE_DIR"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// TrustForwardedProto makes the X-Forwarded-Proto header decide whether
	// a request arrived over TLS. Enable only behind a trusted proxy.
	// Env: SERVER_TRUST_FORWARDED_PROTO
	TrustForwardedProto bool `env:"TRUST_FORWARDED_PROTO"`
}

// Secure holds the secure connection policy.
type Secure struct {
	// Disabled turns enforcement and URL rewriting off entirely.
	// Env: SECURE_DISABLED
	Disabled bool `env:"DISABLED"`

	// DisabledEnvironments turns enforcement off while APP_ENVIRONMENT
	// equals one of the listed names. The environment is read on every
	// decision.
	// Env: SECURE_DISABLED_ENVIRONMENTS (comma separated)
	DisabledEnvironments []string `env:"DISABLED_ENVIRONMENTS"`

	// RequiredRoutes lists route patterns that require HTTPS. When empty,
	// every route not excluded requires HTTPS.
	// Env: SECURE_REQUIRED_ROUTES (comma separated)
	RequiredRoutes []string `env:"REQUIRED_ROUTES" validate:"dive,required,route_pattern"`

	// ExcludedRoutes lists route patterns served over plain HTTP. A route
	// matching both lists is excluded.
	// Env: SECURE_EXCLUDED_ROUTES (comma separated)
	ExcludedRoutes []string `env:"EXCLUDED_ROUTES" validate:"dive,required,route_pattern"`

	// SafeMethods lists the request methods that only read state. Defaults
	// to GET and OPTIONS.
	// Env: SECURE_SAFE_METHODS (comma separated)
	SafeMethods []string `env:"SAFE_METHODS" validate:"dive,required,alpha"`

	// Lenient disables method classification: every protocol mismatch is
	// redirected and nothing is rejected.
	// Env: SECURE_LENIENT
	Lenient bool `env:"LENIENT"`

	// URLStrategy selects how generated URLs get their protocol:
	// "rewrite" (default), "annotate", "both" or "none".
	// Env: SECURE_URL_STRATEGY
	URLStrategy string `env:"URL_STRATEGY" validate:"omitempty,oneof=rewrite annotate both none"`

	// HSTSMaxAge, when positive, adds Strict-Transport-Security to secure
	// responses.
	// Env: SECURE_HSTS_MAX_AGE
	HSTSMaxAge time.Duration `env:"HSTS_MAX_AGE" validate:"gte=0"`
}

// Annotates reports whether routing rules are annotated at startup.
func (s Secure) Annotates() bool {
	return s.URLStrategy == URLStrategyAnnotate || s.URLStrategy == URLStrategyBoth
}

// Rewrites reports whether generated URLs are rewritten per request.
func (s Secure) Rewrites() bool {
	return s.URLStrategy == "" || s.URLStrategy == URLStrategyRewrite || s.URLStrategy == URLStrategyBoth
}

// Enabled resolves the kill switch against the current environment name.
func (s Secure) Enabled(environment string) bool {
	if s.Disabled {
		return false
	}
	for _, disabled := range s.DisabledEnvironments {
		if disabled == environment {
			return false
		}
	}
	return true
}

// CurrentEnvironment returns APP_ENVIRONMENT as set right now, falling back
// to the configured name.
func (a App) CurrentEnvironment() string {
	if env, ok := os.LookupEnv("APP_ENVIRONMENT"); ok {
		return env
	}
	return a.Environment
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withArgs(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		build()
}
