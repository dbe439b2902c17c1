package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddress      = "127.0.0.1:7878"
	DefaultWorkers      = 6
	DefaultAdminAddress = "127.0.0.1:6060"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server struct {
		Address    string        `yaml:"address" env:"WEBSERVER_ADDRESS"`
		IOTimeout  time.Duration `yaml:"io_timeout"`
		RateLimit  int64         `yaml:"rate_limit"`
		RatePeriod time.Duration `yaml:"rate_period"`
	} `yaml:"server"`

	Pool struct {
		Workers       int           `yaml:"workers" env:"WEBSERVER_WORKERS"`
		StatsInterval time.Duration `yaml:"stats_interval"`
	} `yaml:"pool"`

	Content struct {
		Dir       string        `yaml:"dir" env:"WEBSERVER_CONTENT_DIR"`
		CacheSize int           `yaml:"cache_size"`
		CacheTTL  time.Duration `yaml:"cache_ttl"`
	} `yaml:"content"`

	Admin struct {
		Enabled bool   `yaml:"enabled"`
		Address string `yaml:"address" env:"WEBSERVER_ADMIN_ADDRESS"`
	} `yaml:"admin"`

	Log struct {
		Level  string `yaml:"level" env:"WEBSERVER_LOG_LEVEL"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Tracing struct {
		Enabled     bool    `yaml:"enabled"`
		Endpoint    string  `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
		ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"`
		SampleRatio float64 `yaml:"sample_ratio"`
	} `yaml:"tracing"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load reads a YAML file, overlays environment variables and fills in
// defaults for everything left unset. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read yaml")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.IOTimeout == 0 {
		c.Server.IOTimeout = 10 * time.Second
	}
	if c.Server.RatePeriod == 0 {
		c.Server.RatePeriod = time.Second
	}
	if c.Pool.Workers == 0 {
		c.Pool.Workers = DefaultWorkers
	}
	if c.Pool.StatsInterval == 0 {
		c.Pool.StatsInterval = 10 * time.Second
	}
	if c.Content.Dir == "" {
		c.Content.Dir = "./util"
	}
	if c.Content.CacheSize == 0 {
		c.Content.CacheSize = 16
	}
	if c.Content.CacheTTL == 0 {
		c.Content.CacheTTL = time.Minute
	}
	if c.Admin.Address == "" {
		c.Admin.Address = DefaultAdminAddress
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = "localhost:4318"
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = "webserver"
	}
	if c.Tracing.SampleRatio == 0 {
		c.Tracing.SampleRatio = 1
	}
}

func (c *Config) Validate() error {
	if c.Pool.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "pool.workers must be at least 1, got %d", c.Pool.Workers)
	}
	if c.Server.RateLimit < 0 {
		return errors.Wrap(ErrInvalidConfig, "server.rate_limit must be non-negative")
	}
	if c.Server.IOTimeout < 0 {
		return errors.Wrap(ErrInvalidConfig, "server.io_timeout must be non-negative")
	}
	if c.Server.RatePeriod < 0 || c.Pool.StatsInterval < 0 || c.Content.CacheTTL < 0 {
		return errors.Wrap(ErrInvalidConfig, "durations must be non-negative")
	}
	if c.Content.CacheSize < 0 {
		return errors.Wrap(ErrInvalidConfig, "content.cache_size must be non-negative")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.Wrapf(ErrInvalidConfig, "tracing.sample_ratio must be within [0, 1], got %v", c.Tracing.SampleRatio)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
