package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// upstream fitness api
	UpstreamBaseURL        string `toml:"upstream_base_url"`
	UpstreamTimeoutSeconds int    `toml:"upstream_timeout_seconds"`
	SportsCacheTTLSeconds  int    `toml:"sports_cache_ttl_seconds"`
	StatsCacheTTLSeconds   int    `toml:"stats_cache_ttl_seconds"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// http
	RateLimitAllowedPerMin int      `toml:"rate_limit_allowed_per_min"`
	AllowedOrigins         []string `toml:"allowed_origins"`
	// sport label translations, keyed by the upstream label
	SportLabels map[string]string `toml:"sport_labels"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	if strings.HasPrefix(strings.ToLower(env), "prod") {
		cfg.Environment = "production"
	} else {
		cfg.Environment = "development"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port not set")
	}
	if c.UpstreamBaseURL == "" {
		return errors.New("upstream base url not set")
	}
	if c.UpstreamTimeoutSeconds <= 0 {
		c.UpstreamTimeoutSeconds = 10
	}
	if c.SportsCacheTTLSeconds <= 0 {
		c.SportsCacheTTLSeconds = 60 * 60
	}
	if c.StatsCacheTTLSeconds < 0 {
		c.StatsCacheTTLSeconds = 0
	}
	if c.RateLimitAllowedPerMin <= 0 {
		c.RateLimitAllowedPerMin = 120
	}
	return nil
}
