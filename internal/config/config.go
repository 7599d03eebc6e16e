package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	EnvBaseURL    = "SINGULARITY_API_BASE_URL"
	EnvTimeout    = "SINGULARITY_API_TIMEOUT"
	EnvMaxRetries = "SINGULARITY_API_MAX_RETRIES"

	defaultBaseURL    = "http://localhost:3000"
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
)

type Endpoints struct {
	Today   string `yaml:"today"`
	History string `yaml:"history"`
	Weekly  string `yaml:"weekly"`
	News    string `yaml:"news"`
}

type BreakerConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MinRequests  uint32  `yaml:"min_requests"`
	FailureRatio float64 `yaml:"failure_ratio"`
	OpenTimeout  string  `yaml:"open_timeout"`
}

type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Endpoints  Endpoints     `yaml:"endpoints"`
	Timeout    string        `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	Breaker    BreakerConfig `yaml:"breaker"`
}

// Source is an RSS or Atom feed shown by the news command.
type Source struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type Config struct {
	API         APIConfig `yaml:"api"`
	HistoryType string    `yaml:"history_type,omitempty"`
	NewsFeeds   []Source  `yaml:"news_feeds"`
}

func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

func (c *Config) RetryCount() int {
	if c.API.MaxRetries < 0 {
		return defaultMaxRetries
	}
	return c.API.MaxRetries
}

func (c *Config) BreakerOpenTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Breaker.OpenTimeout)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// GetHistoryType returns the event type for history requests, defaulting
// to "default".
func (c *Config) GetHistoryType() string {
	if c.HistoryType == "" {
		return "default"
	}
	return c.HistoryType
}

func (c *Config) EnabledFeeds() []Source {
	var out []Source
	for _, s := range c.NewsFeeds {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "singularity", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default location) on top of the
// embedded defaults and applies environment overrides. A missing file is
// created from the defaults.
func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Write defaults to config path on first run; failure is not fatal.
		_ = writeDefaults(path)
		applyEnv(defaults)
		if err := validate(defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}

	cfg := *defaults
	cfg.NewsFeeds = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	mergeDefaultFeeds(&cfg, defaults)
	applyEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeDefaultFeeds appends default feeds the user config does not name.
func mergeDefaultFeeds(cfg, defaults *Config) {
	have := make(map[string]bool, len(cfg.NewsFeeds))
	for _, s := range cfg.NewsFeeds {
		have[s.Name] = true
	}
	for _, s := range defaults.NewsFeeds {
		if !have[s.Name] {
			cfg.NewsFeeds = append(cfg.NewsFeeds, s)
		}
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		cfg.API.Timeout = v
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.MaxRetries = n
		}
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: scheme must be http or https, got %q", u.Scheme)
	}

	validTypes := map[string]bool{"rss": true, "atom": true}
	for i, s := range cfg.NewsFeeds {
		if s.Name == "" {
			return fmt.Errorf("news feed %d: name is required", i)
		}
		if s.URL == "" {
			return fmt.Errorf("news feed %q: url is required", s.Name)
		}
		fu, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("news feed %q: invalid url: %w", s.Name, err)
		}
		if fu.Scheme != "http" && fu.Scheme != "https" {
			return fmt.Errorf("news feed %q: url scheme must be http or https, got %q", s.Name, fu.Scheme)
		}
		if !validTypes[s.Type] {
			return fmt.Errorf("news feed %q: unknown type %q (valid: rss, atom)", s.Name, s.Type)
		}
	}
	return nil
}
