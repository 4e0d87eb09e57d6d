package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config holds everything the scrapers need at runtime. Values come from
// defaults, then an optional YAML file, then command line flags.
type Config struct {
	DatabasePath string        `yaml:"database_path"`
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	ClientCode   string        `yaml:"client_code"`
	LeagueID     int           `yaml:"league_id"`
	RateLimit    time.Duration `yaml:"rate_limit"`
	MaxRetries   int           `yaml:"max_retries"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
}

func Default() *Config {
	return &Config{
		DatabasePath: "data/pwhl.db",
		BaseURL:      "https://lscluster.hockeytech.com/feed/",
		APIKey:       "446521baf8c38984",
		ClientCode:   "pwhl",
		LeagueID:     1,
		RateLimit:    100 * time.Millisecond,
		MaxRetries:   3,
		HTTPTimeout:  10 * time.Second,
	}
}

// Load returns the default config overlaid with the YAML file at path.
// An empty path means defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}
