// Package config loads heronet configuration from heronet.toml, with
// HERONET_* environment variables layered on top and sane defaults below.
package config

// Config represents the heronet configuration
type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Database DatabaseConfig `mapstructure:"database"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

// DataConfig locates the two CSV sources
type DataConfig struct {
	HeroesPath string `mapstructure:"heroes_path"`
	LinksPath  string `mapstructure:"links_path"`
}

// DatabaseConfig configures the optional SQLite snapshot
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AnalysisConfig tunes the analysis queries.
// Values <= 0 fall back to the defaults at load time.
type AnalysisConfig struct {
	RecentWindowDays int `mapstructure:"recent_window_days"` // recency filter window (default: 3)
	TopK             int `mapstructure:"top_k"`              // ranking size (default: 3)
}
