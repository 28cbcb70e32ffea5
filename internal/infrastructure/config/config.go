package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ViewStoreMemory   = "memory"
	ViewStoreDynamoDB = "dynamodb"
)

// Config holds the gateway settings. Values come from defaults, then the
// optional YAML file named by DEPANNEL_CONFIG, then environment variables.
type Config struct {
	Port              int
	APIBaseURL        string
	APITimeout        time.Duration
	APIRequestsPerSec float64
	PollInterval      time.Duration
	ArrivalOffset     time.Duration
	SessionTTL        time.Duration
	ServiceToken      string
	ViewStore         string
	InterventionTable string
	RedisURL          string
	JournalPath       string
}

// FileConfig represents supported YAML config overrides.
type FileConfig struct {
	Port              int     `yaml:"port"`
	APIBaseURL        string  `yaml:"api_base_url"`
	APITimeout        string  `yaml:"api_timeout"`
	APIRequestsPerSec float64 `yaml:"api_requests_per_sec"`
	PollInterval      string  `yaml:"poll_interval"`
	ArrivalOffset     string  `yaml:"eta_offset"`
	SessionTTL        string  `yaml:"session_ttl"`
	ViewStore         string  `yaml:"view_store"`
	InterventionTable string  `yaml:"interventions_table"`
	RedisURL          string  `yaml:"redis_url"`
	JournalPath       string  `yaml:"journal_path"`
}

func DefaultConfig() Config {
	return Config{
		Port:              8080,
		APIBaseURL:        "https://intervention.tekfaso.com/api",
		APITimeout:        15 * time.Second,
		APIRequestsPerSec: 10,
		PollInterval:      30 * time.Second,
		ArrivalOffset:     30 * time.Minute,
		SessionTTL:        12 * time.Hour,
		ViewStore:         ViewStoreMemory,
		InterventionTable: "interventions",
		JournalPath:       "data/journal.db",
	}
}

// Load builds the configuration. A missing DEPANNEL_CONFIG is not an error;
// an unreadable one is.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if path := strings.TrimSpace(os.Getenv("DEPANNEL_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		var fileCfg FileConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := applyFileConfig(&cfg, fileCfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyFileConfig(cfg *Config, fileCfg FileConfig) error {
	if fileCfg.Port > 0 {
		cfg.Port = fileCfg.Port
	}
	if fileCfg.APIBaseURL != "" {
		cfg.APIBaseURL = fileCfg.APIBaseURL
	}
	if fileCfg.APIRequestsPerSec > 0 {
		cfg.APIRequestsPerSec = fileCfg.APIRequestsPerSec
	}
	if fileCfg.ViewStore != "" {
		cfg.ViewStore = fileCfg.ViewStore
	}
	if fileCfg.InterventionTable != "" {
		cfg.InterventionTable = fileCfg.InterventionTable
	}
	if fileCfg.RedisURL != "" {
		cfg.RedisURL = fileCfg.RedisURL
	}
	if fileCfg.JournalPath != "" {
		cfg.JournalPath = fileCfg.JournalPath
	}
	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"api_timeout", fileCfg.APITimeout, &cfg.APITimeout},
		{"poll_interval", fileCfg.PollInterval, &cfg.PollInterval},
		{"eta_offset", fileCfg.ArrivalOffset, &cfg.ArrivalOffset},
		{"session_ttl", fileCfg.SessionTTL, &cfg.SessionTTL},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = v
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := getenv("DEPANNEL_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv("DEPANNEL_API_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("DEPANNEL_API_RPS: %w", err)
		}
		cfg.APIRequestsPerSec = rps
	}
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"DEPANNEL_API_TIMEOUT", &cfg.APITimeout},
		{"POLL_INTERVAL", &cfg.PollInterval},
		{"ETA_OFFSET", &cfg.ArrivalOffset},
		{"SESSION_TTL", &cfg.SessionTTL},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	if v := getenv("SERVICE_TOKEN"); v != "" {
		cfg.ServiceToken = v
	}
	if v := getenv("VIEW_STORE"); v != "" {
		cfg.ViewStore = strings.ToLower(v)
	}
	if v := getenv("INTERVENTIONS_TABLE"); v != "" {
		cfg.InterventionTable = v
	}
	if v := getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := getenv("JOURNAL_PATH"); v != "" {
		cfg.JournalPath = v
	}
	return nil
}

// Validate performs basic validation without exposing secrets.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", c.Port)
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_base_url must be an absolute url (got %q)", c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive")
	}
	if c.APIRequestsPerSec < 0 {
		return fmt.Errorf("api_requests_per_sec must not be negative")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if c.ArrivalOffset <= 0 {
		return fmt.Errorf("eta_offset must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	switch c.ViewStore {
	case ViewStoreMemory:
	case ViewStoreDynamoDB:
		if c.InterventionTable == "" {
			return fmt.Errorf("interventions_table is required for the dynamodb view store")
		}
	default:
		return fmt.Errorf("view_store must be %q or %q (got %q)", ViewStoreMemory, ViewStoreDynamoDB, c.ViewStore)
	}
	return nil
}

// PollingEnabled reports whether a service credential is available for the
// background refresh.
func (c Config) PollingEnabled() bool {
	return c.ServiceToken != ""
}
