package config

import (
	"github.com/spf13/viper"
)

// Default analysis parameters, matching the original assignment brief:
// heroes added in the last 3 days, top 3 most connected.
const (
	DefaultRecentWindowDays = 3
	DefaultTopK             = 3
)

// SetDefaults installs default values on a Viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.heroes_path", "data/superheroes.csv")
	v.SetDefault("data.links_path", "data/links.csv")
	v.SetDefault("database.path", "heronet.db")
	v.SetDefault("analysis.recent_window_days", DefaultRecentWindowDays)
	v.SetDefault("analysis.top_k", DefaultTopK)
}

// applyFallbacks repairs non-positive analysis values after unmarshalling,
// so a config file with top_k = 0 does not silence the report.
func applyFallbacks(cfg *Config) {
	if cfg.Analysis.RecentWindowDays <= 0 {
		cfg.Analysis.RecentWindowDays = DefaultRecentWindowDays
	}
	if cfg.Analysis.TopK <= 0 {
		cfg.Analysis.TopK = DefaultTopK
	}
}
