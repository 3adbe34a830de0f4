package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overlaid on the file config.
// BUSSEARCH_DATA_PATH maps to data.path, BUSSEARCH_OUTPUT_FORMAT to output.format.
const EnvPrefix = "BUSSEARCH_"

// DefaultPaths are searched in order when no explicit config path is given.
var DefaultPaths = []string{"bussearch.yml", "./config/bussearch.yml"}

// Config is the global application configuration
var Config AppConfig

// Option mutates the configuration after file and environment loading
type Option func(*AppConfig)

// WithDataPath overrides data.path when p is non-empty
func WithDataPath(p string) Option {
	return func(c *AppConfig) {
		if p != "" {
			c.Data.Path = p
		}
	}
}

// WithOutputFormat overrides output.format when f is non-empty
func WithOutputFormat(f string) Option {
	return func(c *AppConfig) {
		if f != "" {
			c.Output.Format = f
		}
	}
}

// WithLogLevel overrides log.level when l is non-empty
func WithLogLevel(l string) Option {
	return func(c *AppConfig) {
		if l != "" {
			c.Log.Level = l
		}
	}
}

// LoadAppConfig loads the configuration and stores it in Config.
func LoadAppConfig(path string, opts ...Option) error {
	cfg, err := Load(path, opts...)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads the YAML file at path (or the first of DefaultPaths that exists),
// overlays environment variables, applies opts and validates the result.
// An explicit path that cannot be read is an error; missing default files are not.
func Load(path string, opts ...Option) (AppConfig, error) {
	var cfg AppConfig
	data, err := readConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := applyEnv(&cfg, os.Environ()); err != nil {
		return cfg, err
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return data, nil
	}
	for _, p := range DefaultPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
	}
	return nil, nil
}

// applyEnv overlays BUSSEARCH_* variables; only keys present in env are touched.
func applyEnv(cfg *AppConfig, environ []string) error {
	v := viper.New()
	found := false
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		prop := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, EnvPrefix), "_", "."))
		prop = strings.Trim(prop, ".")
		if prop == "" {
			continue
		}
		v.Set(prop, value)
		found = true
	}
	if !found {
		return nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal env config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Data.Delimiter == "" {
		cfg.Data.Delimiter = ","
	}
	if cfg.Query.DefaultSort == "" {
		cfg.Query.DefaultSort = "fare"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
