package config

import "time"

// Config holds runtime settings for the MentorHub CLI.
//
// Fields:
//   - DatabasePath: path to the local SQLite database file.
//   - RefreshInterval: how often the dashboard re-renders and the
//     notification diff runs.
//
// Units: RefreshInterval is a time.Duration (e.g., 5*time.Second).
type Config struct {
	DatabasePath    string
	RefreshInterval time.Duration
}

const defaultRefreshInterval = 5 * time.Second

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "mentorhub.db"
	c.RefreshInterval = defaultRefreshInterval
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. A non-positive refresh interval would make
// the ticker unusable, so it falls back to the default.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	return cfg
}
