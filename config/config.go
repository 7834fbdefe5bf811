// Package config loads the client configuration from YAML with ELLO_* environment overrides
package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// BaseURL is the API host (e.g. "https://ello.co") - required in live mode
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	Locale  string `yaml:"locale"`
	Mode    string `yaml:"mode" validate:"omitempty,oneof=live stub"`
	// ClientID & ClientSecret identify the app to the token endpoint
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	RateLimit    float64       `yaml:"rate_limit" validate:"gte=0"`
	RateBurst    int           `yaml:"rate_burst" validate:"gte=0"`
	Timeout      time.Duration `yaml:"timeout" validate:"gte=0"`
	LogLevel     string        `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	LogPretty    bool          `yaml:"log_pretty"`
}

func Default() Config {
	return Config{
		Locale:   "en",
		Mode:     "live",
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.BaseURL == "" && c.Mode != "stub" {
		return errors.New("invalid config: base_url is required in live mode")
	}
	return nil
}

// Load reads the YAML config file at path (when path is not empty), applies environment overrides and validates
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("unable to open config: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		if cfg, err = Read(f, cfg); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Read decodes YAML over the supplied config (values absent from the YAML are kept)
func Read(r io.Reader, cfg Config) (Config, error) {
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("unable to read config: %w", err)
	}
	return cfg, nil
}

const envPrefix = "ELLO_"

func (c *Config) applyEnv(lookup func(string) (string, bool)) (err error) {
	str := func(name string, dest *string) {
		if v, ok := lookup(envPrefix + name); ok {
			*dest = v
		}
	}
	str("BASE_URL", &c.BaseURL)
	str("LOCALE", &c.Locale)
	str("MODE", &c.Mode)
	str("CLIENT_ID", &c.ClientID)
	str("CLIENT_SECRET", &c.ClientSecret)
	str("LOG_LEVEL", &c.LogLevel)
	if v, ok := lookup(envPrefix + "RATE_LIMIT"); ok && err == nil {
		if c.RateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			err = fmt.Errorf("invalid %sRATE_LIMIT: %w", envPrefix, err)
		}
	}
	if v, ok := lookup(envPrefix + "RATE_BURST"); ok && err == nil {
		if c.RateBurst, err = strconv.Atoi(v); err != nil {
			err = fmt.Errorf("invalid %sRATE_BURST: %w", envPrefix, err)
		}
	}
	if v, ok := lookup(envPrefix + "TIMEOUT"); ok && err == nil {
		if c.Timeout, err = time.ParseDuration(v); err != nil {
			err = fmt.Errorf("invalid %sTIMEOUT: %w", envPrefix, err)
		}
	}
	if v, ok := lookup(envPrefix + "LOG_PRETTY"); ok && err == nil {
		if c.LogPretty, err = strconv.ParseBool(v); err != nil {
			err = fmt.Errorf("invalid %sLOG_PRETTY: %w", envPrefix, err)
		}
	}
	return err
}
