package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Name        string `json:"name"`
		Host        string `json:"host"`
		Environment string `json:"environment"`
		BaseURL     string `json:"base_url"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress         string   `json:"http_address"`
		TLSAddress          string   `json:"tls_address"`
		TLSCertFile         string   `json:"tls_cert_file"`
		TLSKeyFile          string   `json:"tls_key_file"`
		AutocertHosts       []string `json:"autocert_hosts"`
		AutocertCacheDir    string   `json:"autocert_cache_dir"`
		RequestTimeout      Duration `json:"request_timeout"`
		TrustForwardedProto bool     `json:"trust_forwarded_proto"`
	} `json:"server,omitempty"`

	Secure struct {
		Disabled             bool     `json:"disabled"`
		DisabledEnvironments []string `json:"disabled_environments"`
		RequiredRoutes       []string `json:"required_routes"`
		ExcludedRoutes       []string `json:"excluded_routes"`
		SafeMethods          []string `json:"safe_methods"`
		Lenient              bool     `json:"lenient"`
		URLStrategy          string   `json:"url_strategy"`
		HSTSMaxAge           Duration `json:"hsts_max_age"`
	} `json:"secure,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:        jsonCfg.App.Name,
			Host:        jsonCfg.App.Host,
			Environment: jsonCfg.App.Environment,
			BaseURL:     jsonCfg.App.BaseURL,
			Version:     jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:         jsonCfg.Server.HTTPAddress,
			TLSAddress:          jsonCfg.Server.TLSAddress,
			TLSCertFile:         jsonCfg.Server.TLSCertFile,
			TLSKeyFile:          jsonCfg.Server.TLSKeyFile,
			AutocertHosts:       jsonCfg.Server.AutocertHosts,
			AutocertCacheDir:    jsonCfg.Server.AutocertCacheDir,
			RequestTimeout:      time.Duration(jsonCfg.Server.RequestTimeout),
			TrustForwardedProto: jsonCfg.Server.TrustForwardedProto,
		},
		Secure: Secure{
			Disabled:             jsonCfg.Secure.Disabled,
			DisabledEnvironments: jsonCfg.Secure.DisabledEnvironments,
			RequiredRoutes:       jsonCfg.Secure.RequiredRoutes,
			ExcludedRoutes:       jsonCfg.Secure.ExcludedRoutes,
			SafeMethods:          jsonCfg.Secure.SafeMethods,
			Lenient:              jsonCfg.Secure.Lenient,
			URLStrategy:          jsonCfg.Secure.URLStrategy,
			HSTSMaxAge:           time.Duration(jsonCfg.Secure.HSTSMaxAge),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
