// Package config loads the bookshelf service configuration from defaults, an
// optional YAML file and DOCWEAVER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. DOCWEAVER_MONGO_URI.
const EnvPrefix = "DOCWEAVER"

// Config holds all service configuration.
type Config struct {
	HTTP  HTTPConfig  `mapstructure:"http"`
	Log   LogConfig   `mapstructure:"log"`
	Mongo MongoConfig `mapstructure:"mongo"`
	Docs  DocsConfig  `mapstructure:"docs"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	Timeout         time.Duration `mapstructure:"timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MongoConfig points at the collection backing the books resource. An empty
// URI selects the in-memory store.
type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// DocsConfig configures the OpenAPI viewer.
type DocsConfig struct {
	BaseURL string `mapstructure:"base_url"`
	UI      string `mapstructure:"ui"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.cors_origins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "bookshelf")
	v.SetDefault("mongo.collection", "books")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("docs.base_url", "")
	v.SetDefault("docs.ui", "stoplight")
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional YAML file into v and decodes the result.
func Load(v *viper.Viper, filename string) (*Config, error) {
	if filename != "" {
		v.SetConfigFile(filename)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	if c.HTTP.Timeout < 0 {
		errs = append(errs, errors.New("http.timeout must not be negative"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Mongo.URI != "" && (c.Mongo.Database == "" || c.Mongo.Collection == "") {
		errs = append(errs, errors.New("mongo.database and mongo.collection are required with mongo.uri"))
	}
	return errors.Join(errs...)
}

// ParseLevel maps a configuration value onto a slog level.
func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
