package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/niewin/devjobs/internal/logging"
)

// DefaultAPIURL is where the upstream jobs API listens unless configured otherwise
const DefaultAPIURL = "http://localhost:3500/results"

// Config represents the application configuration
type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
	Web WebConfig `yaml:"web"`
}

type APIConfig struct {
	URL         string `yaml:"url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

type LogConfig struct {
	Dir   string `yaml:"dir"`
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type WebConfig struct {
	Port      int    `yaml:"port"`
	Title     string `yaml:"title"`
	PageTitle string `yaml:"page_title"`
	Username  string `yaml:"username"` // Prefer WEB_USERNAME env var
	Password  string `yaml:"password"` // Prefer WEB_PASSWORD env var
}

// Timeout returns the API timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}

// GetConfigPath returns the config file path from environment or default
func GetConfigPath() string {
	if path := os.Getenv("DEVJOBS_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

// Load reads configuration from a YAML file and applies defaults.
// A missing file is not an error: the defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyDefaults(cfg)
	applyEnvironmentOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.API.URL == "" {
		cfg.API.URL = DefaultAPIURL
	}
	if cfg.API.TimeoutSecs == 0 {
		cfg.API.TimeoutSecs = 30
	}
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = "logs"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "logfile.log"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Web.Port == 0 {
		cfg.Web.Port = 8501
	}
	if cfg.Web.Title == "" {
		cfg.Web.Title = "Niewin: Search Dev Jobs"
	}
	if cfg.Web.PageTitle == "" {
		cfg.Web.PageTitle = "Search Dev Jobs App"
	}
}

func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("DEVJOBS_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("DEVJOBS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("WEB_USERNAME"); v != "" {
		cfg.Web.Username = v
	}
	if v := os.Getenv("WEB_PASSWORD"); v != "" {
		cfg.Web.Password = v
	}
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.url must be an absolute URL, got %q", cfg.API.URL)
	}
	if cfg.API.TimeoutSecs < 0 {
		return fmt.Errorf("api.timeout_secs must not be negative, got %d", cfg.API.TimeoutSecs)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if cfg.Web.Port < 1 || cfg.Web.Port > 65535 {
		return fmt.Errorf("web.port must be between 1 and 65535, got %d", cfg.Web.Port)
	}
	return nil
}
