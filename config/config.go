package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by ValidateAPIKey when no usable key is set
var ErrMissingAPIKey = errors.New("lastfm.api_key must be set (or LFM_LASTFM_API_KEY)")

// Load loads the configuration from file and LFM_* environment variables.
// A missing config file is not an error unless configPath names it.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("LFM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".lfm"))
		}
		v.AddConfigPath("/etc/lfm/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Last.fm defaults. api_key needs a default for env lookups to apply.
	v.SetDefault("lastfm.api_key", "")
	v.SetDefault("lastfm.user_agent", "")
	v.SetDefault("lastfm.base_url", "https://ws.audioscrobbler.com/2.0/")
	v.SetDefault("lastfm.timeout", "30s")
	v.SetDefault("lastfm.min_artist_listeners", 0)
	v.SetDefault("lastfm.min_track_listeners", 0)

	v.SetDefault("filter.cache_size", 100)

	v.SetDefault("output.format", "table")

	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)
	v.SetDefault("logging.compress", false)

	v.SetDefault("update.repository", "s0up4200/lfm")
}

// validate checks if the configuration is valid. The API key is checked
// separately because flags may still supply it.
func validate(cfg *Config) error {
	if cfg.LastFM.Timeout <= 0 {
		return fmt.Errorf("lastfm.timeout must be positive")
	}
	if cfg.LastFM.MinArtistListeners < 0 {
		return fmt.Errorf("lastfm.min_artist_listeners must not be negative")
	}
	if cfg.LastFM.MinTrackListeners < 0 {
		return fmt.Errorf("lastfm.min_track_listeners must not be negative")
	}

	for name, expr := range cfg.Filter.Presets {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
		"yaml":  true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s", cfg.Output.Format)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// ValidateAPIKey checks that an API key is present
func (c *Config) ValidateAPIKey() error {
	key := strings.TrimSpace(c.LastFM.APIKey)
	if key == "" || key == "your-api-key-here" {
		return ErrMissingAPIKey
	}
	return nil
}
