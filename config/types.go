package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	LastFM  LastFMConfig  `mapstructure:"lastfm"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// LastFMConfig holds Last.fm API connection details
type LastFMConfig struct {
	APIKey             string        `mapstructure:"api_key"`
	UserAgent          string        `mapstructure:"user_agent"`
	BaseURL            string        `mapstructure:"base_url"`
	Timeout            time.Duration `mapstructure:"timeout"`
	MinArtistListeners int           `mapstructure:"min_artist_listeners"`
	MinTrackListeners  int           `mapstructure:"min_track_listeners"`
}

// FilterConfig contains named filter expressions applied to search results
type FilterConfig struct {
	Presets   map[string]string `mapstructure:"presets"`
	CacheSize int               `mapstructure:"cache_size"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// ServerConfig contains settings for the HTTP server
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Color      bool   `mapstructure:"color"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// UpdateConfig contains self-update settings
type UpdateConfig struct {
	Repository string `mapstructure:"repository"`
}
