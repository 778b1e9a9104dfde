package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pesikj/political-pulse-mapper/internal/store"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Store   Store   `yaml:"store"`
	Server  Server  `yaml:"server"`
	Logging Logging `yaml:"logging"`
}

// Store selects the backing source. Exactly one selection applies:
// database_url wins over upstream_url, which wins over the embedded path.
type Store struct {
	DatabaseURL string `yaml:"database_url"`
	UpstreamURL string `yaml:"upstream_url"`
	Path        string `yaml:"path"`
}

type Server struct {
	Port int `yaml:"port"`
}

type Logging struct {
	Level string `yaml:"level"`
}

// ConfigDir returns the XDG config directory for compass.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "compass")
}

// DataDir returns the XDG data directory for compass.
func DataDir() string {
	return filepath.Join(homeDir(), ".local", "share", "compass")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/compass/config.yaml > ./config.yaml.
// A missing config is not an error; the embedded defaults plus environment
// variables are a complete configuration, so "" is returned instead.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads a config file (or just the embedded defaults when path is
// empty) and applies environment overrides.
func Load(path string) (*Config, error) {
	data := DefaultConfigYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return parse(data)
}

// parse parses YAML bytes into a Config, applying defaults and environment
// overrides.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Server:  Server{Port: 8000},
		Logging: Logging{Level: "INFO"},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if v := os.Getenv("COMPASS_DATABASE_URL"); v != "" {
		cfg.Store.DatabaseURL = v
	}
	if v := os.Getenv("COMPASS_UPSTREAM_URL"); v != "" {
		cfg.Store.UpstreamURL = v
	}
	if v := os.Getenv("COMPASS_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("COMPASS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid COMPASS_PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}

	return cfg, nil
}

// StoreConfig resolves the enumerated source selection once, at startup.
func (c *Config) StoreConfig() store.Config {
	switch {
	case c.Store.DatabaseURL != "":
		return store.Config{Kind: store.KindRemote, DatabaseURL: c.Store.DatabaseURL}
	case c.Store.UpstreamURL != "":
		return store.Config{Kind: store.KindHTTPFallback, UpstreamURL: c.Store.UpstreamURL, Path: c.StorePath()}
	default:
		return store.Config{Kind: store.KindEmbedded, Path: c.StorePath()}
	}
}

// StorePath returns the effective embedded artifact path.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(DataDir(), "compass.db")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
