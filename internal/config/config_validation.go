// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-secure-routes/internal/matcher"
)

const (
	defaultAppName     = "secure-routes"
	defaultHTTPAddress = ":8080"
)

// applyDefaults fills the settings every deployment needs. Only zero fields
// are touched.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Name == "" {
		cfg.App.Name = defaultAppName
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.TLSAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Secure.URLStrategy == "" {
		cfg.Secure.URLStrategy = URLStrategyRewrite
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Struct tags are checked first with go-playground/validator, then the
// cross-field rules the tags cannot express.
func (cfg *StructuredConfig) validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidators(v); err != nil {
		return err
	}

	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationErrors(err))
	}

	if err := cfg.Server.validate(); err != nil {
		return err
	}

	return cfg.validateSecure()
}

func (s Server) validate() error {
	hasFiles := s.TLSCertFile != ""
	hasAutocert := len(s.AutocertHosts) > 0

	if s.TLSAddress != "" && !hasFiles && !hasAutocert {
		return fmt.Errorf("%w: tls address needs a certificate pair or autocert hosts", ErrInvalidServerConfigs)
	}

	if s.TLSAddress == "" && (hasFiles || hasAutocert) {
		return fmt.Errorf("%w: tls material given without tls address", ErrInvalidServerConfigs)
	}

	if hasFiles && hasAutocert {
		return fmt.Errorf("%w: specify certificate files OR autocert hosts, not both", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *StructuredConfig) validateSecure() error {
	if cfg.Secure.Annotates() && cfg.App.Host == "" {
		return fmt.Errorf("%w: url strategy %q needs app host", ErrInvalidSecureConfigs, cfg.Secure.URLStrategy)
	}

	return nil
}

func registerValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("route_pattern", validateRoutePattern); err != nil {
		return fmt.Errorf("failed to register route_pattern validator: %w", err)
	}
	return nil
}

// validateRoutePattern reports whether the field compiles as a route glob.
func validateRoutePattern(fl validator.FieldLevel) bool {
	_, err := matcher.Compile(fl.Field().String())
	return err == nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatSingleValidationError(e))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}

func formatSingleValidationError(e validator.FieldError) string {
	field := e.Namespace()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_with":
		return fmt.Sprintf("%s is required together with %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, e.Param())
	case "hostname_port":
		return fmt.Sprintf("%s must be a valid host:port", field)
	case "hostname", "hostname|hostname_port":
		return fmt.Sprintf("%s must be a valid host name", field)
	case "route_pattern":
		return fmt.Sprintf("%s must be a valid route pattern", field)
	case "alpha":
		return fmt.Sprintf("%s must be a request method", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}
