package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// listFlag is a comma separated flag.Value.
type listFlag []string

func (l *listFlag) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(s string) error {
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			*l = append(*l, item)
		}
	}
	return nil
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a plain HTTP server address in format [host]:[port]
//	-tls-address HTTPS server address in format [host]:[port]
//	-tls-cert / -tls-key certificate and key files
//	-autocert-hosts comma separated ACME hosts
//	-autocert-cache ACME cache directory
//	-c/-config json file path with configs
//	-name application name
//	-host canonical public host
//	-env deployment environment
//	-base-url path prefix for generated URLs
//	-required comma separated secure-required route patterns
//	-excluded comma separated secure-excluded route patterns
//	-disabled-envs comma separated environments without enforcement
//	-safe-methods comma separated safe request methods
//	-lenient redirect every protocol mismatch
//	-disabled turn enforcement off
//	-url-strategy rewrite, annotate, both or none
//	-hsts-max-age HSTS max age (e.g., "8760h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-trust-forwarded-proto honour X-Forwarded-Proto
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, tlsAddress NetAddress
	var tlsCert, tlsKey, autocertCache string
	var autocertHosts, required, excluded, disabledEnvs, safeMethods listFlag
	var jsonConfigPath string
	var name, host, environment, baseURL, urlStrategy string
	var lenient, disabled, trustForwardedProto bool
	var hstsMaxAge, requestTimeout time.Duration

	fs := flag.NewFlagSet("secure-routes", flag.ContinueOnError)
	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&tlsAddress, "tls-address", "Net TLS address host:port")
	fs.StringVar(&tlsCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&tlsKey, "tls-key", "", "TLS key file")
	fs.Var(&autocertHosts, "autocert-hosts", "ACME hosts, comma separated")
	fs.StringVar(&autocertCache, "autocert-cache", "", "ACME cache directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&name, "name", "", "Application name")
	fs.StringVar(&host, "host", "", "Canonical public host")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&baseURL, "base-url", "", "Path prefix for generated URLs")
	fs.Var(&required, "required", "Secure-required route patterns, comma separated")
	fs.Var(&excluded, "excluded", "Secure-excluded route patterns, comma separated")
	fs.Var(&disabledEnvs, "disabled-envs", "Environments without enforcement, comma separated")
	fs.Var(&safeMethods, "safe-methods", "Safe request methods, comma separated")
	fs.BoolVar(&lenient, "lenient", false, "Redirect every protocol mismatch")
	fs.BoolVar(&disabled, "disabled", false, "Turn enforcement off")
	fs.StringVar(&urlStrategy, "url-strategy", "", "URL strategy: rewrite, annotate, both or none")
	fs.DurationVar(&hstsMaxAge, "hsts-max-age", 0, "HSTS max age (e.g., 8760h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&trustForwardedProto, "trust-forwarded-proto", false, "Honour X-Forwarded-Proto")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Name:        name,
			Host:        host,
			Environment: environment,
			BaseURL:     baseURL,
		},
		Server: Server{
			HTTPAddress:         httpAddress.String(),
			TLSAddress:          tlsAddress.String(),
			TLSCertFile:         tlsCert,
			TLSKeyFile:          tlsKey,
			AutocertHosts:       autocertHosts,
			AutocertCacheDir:    autocertCache,
			RequestTimeout:      requestTimeout,
			TrustForwardedProto: trustForwardedProto,
		},
		Secure: Secure{
			Disabled:             disabled,
			DisabledEnvironments: disabledEnvs,
			RequiredRoutes:       required,
			ExcludedRoutes:       excluded,
			SafeMethods:          safeMethods,
			Lenient:              lenient,
			URLStrategy:          urlStrategy,
			HSTSMaxAge:           hstsMaxAge,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
