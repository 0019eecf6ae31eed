package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName        = "deezer-flow"
	configFileName = "config.toml"

	// TokenEnv overrides deezer.access_token when set.
	TokenEnv = "DEEZER_ACCESS_TOKEN"

	DefaultIconPath          = "Icons/app.png"
	DefaultTimeoutSeconds    = 10
	DefaultMaxResultsPerType = 3
	DefaultPlayerName        = "deezer"
	DefaultLogLevel          = "warn"
)

type Config struct {
	IconPath string `koanf:"icon_path"` // result icon shown by the launcher

	// Catalog API settings
	Deezer DeezerConfig `koanf:"deezer"`

	// Search pipeline settings
	Search SearchConfig `koanf:"search"`

	// Desktop player control
	Player PlayerConfig `koanf:"player"`

	Log LogConfig `koanf:"log"`

	// Terminal front end
	TUI TUIConfig `koanf:"tui"`
}

// DeezerConfig holds catalog client configuration.
type DeezerConfig struct {
	BaseURL        string `koanf:"base_url"`        // empty means the public API
	AccessToken    string `koanf:"access_token"`    // optional bearer token
	TimeoutSeconds int    `koanf:"timeout_seconds"` // per-request timeout (default: 10)
}

// SearchConfig controls how many results are kept and how categories are fetched.
type SearchConfig struct {
	MaxResultsPerType int  `koanf:"max_results_per_type"` // 1-10, default: 3
	Concurrent        bool `koanf:"concurrent"`           // fetch categories in parallel
}

// PlayerConfig selects the media player to control.
type PlayerConfig struct {
	MPRISName string `koanf:"mpris_name"` // matched against MPRIS bus names (default: "deezer")
}

// TUIConfig holds terminal front end settings.
type TUIConfig struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"
}

type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: warn)
}

// Load reads configuration files in priority order. An explicit path, when
// given, is loaded last and must exist.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if explicitPath != "" {
		if err := k.Load(file.Provider(expandPath(explicitPath)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if token := os.Getenv(TokenEnv); token != "" {
		cfg.Deezer.AccessToken = token
	}

	cfg.Deezer.BaseURL = strings.TrimSuffix(cfg.Deezer.BaseURL, "/")
	if cfg.IconPath == "" {
		cfg.IconPath = DefaultIconPath
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/deezer-flow/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, configFileName))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, configFileName)

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasAccessToken returns true if authenticated requests are configured.
func (c *Config) HasAccessToken() bool {
	return c.Deezer.AccessToken != ""
}

// GetDeezerConfig returns the catalog configuration with defaults applied.
func (c *Config) GetDeezerConfig() DeezerConfig {
	cfg := c.Deezer
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg
}

// Timeout returns the per-request timeout.
func (d DeezerConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// GetSearchConfig returns the search configuration with defaults applied.
func (c *Config) GetSearchConfig() SearchConfig {
	cfg := c.Search
	if cfg.MaxResultsPerType <= 0 || cfg.MaxResultsPerType > 10 {
		cfg.MaxResultsPerType = DefaultMaxResultsPerType
	}
	return cfg
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	if strings.TrimSpace(cfg.MPRISName) == "" {
		cfg.MPRISName = DefaultPlayerName
	}
	return cfg
}

// LogLevel returns the configured log level, or the default.
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return DefaultLogLevel
	}
	return c.Log.Level
}
