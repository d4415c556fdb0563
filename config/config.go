package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Geohash GeohashConfig `mapstructure:"geohash"`
	Index   IndexConfig   `mapstructure:"index"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type GeohashConfig struct {
	Precision uint8 `mapstructure:"precision"`
}

type IndexConfig struct {
	Technique  string  `mapstructure:"technique"`
	Precision  uint8   `mapstructure:"precision"`
	MaxRetries int     `mapstructure:"max_retries"`
	Radius     float64 `mapstructure:"radius"`
}

// Load reads configuration from defaults, an optional YAML file and
// GEOHASH_* environment variables, in increasing order of priority. When
// path is empty, config.yaml is looked up in . and ./configs.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("geohash.precision", 12)
	v.SetDefault("index.technique", "geohashing")
	v.SetDefault("index.precision", 7)
	v.SetDefault("index.max_retries", 5)
	v.SetDefault("index.radius", 0.01)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// GEOHASH_INDEX_TECHNIQUE -> index.technique
	v.SetEnvPrefix("GEOHASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every field is in range and reports all problems at
// once.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Geohash.Precision < 1 || c.Geohash.Precision > 12 {
		errs = append(errs, fmt.Sprintf("geohash.precision must be 1-12, got %d", c.Geohash.Precision))
	}
	switch strings.ToLower(c.Index.Technique) {
	case "geohashing", "rtree", "quadtree":
	default:
		errs = append(errs, fmt.Sprintf("index.technique must be geohashing, rtree or quadtree, got %q", c.Index.Technique))
	}
	if c.Index.Precision < 1 || c.Index.Precision > 12 {
		errs = append(errs, fmt.Sprintf("index.precision must be 1-12, got %d", c.Index.Precision))
	}
	if c.Index.MaxRetries <= 0 {
		errs = append(errs, "index.max_retries must be positive")
	}
	if c.Index.Radius <= 0 {
		errs = append(errs, "index.radius must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
