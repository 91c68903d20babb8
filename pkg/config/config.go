// ABOUTME: Configuration management for the application with file and environment variable support
// ABOUTME: Defines configuration structures for server, catalog, search, output, snapshot and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. OPENCOSTS_SERVER_PORT
const EnvPrefix = "OPENCOSTS"

// DefaultSearchTerms is used when no terms file is available
var DefaultSearchTerms = []string{"Gemini 2.5", "Sonnet 4", "Opus 4", "Kimi K2", "Deepseek R1"}

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Catalog locates the model catalog service
	Catalog CatalogConfig `mapstructure:"catalog"`

	// Search holds the name fragments to match
	Search SearchConfig `mapstructure:"search"`

	// Output controls CSV export
	Output OutputConfig `mapstructure:"output"`

	// Snapshot selects where the latest refresh is kept
	Snapshot SnapshotConfig `mapstructure:"snapshot"`

	// Log controls logging output
	Log LogConfig `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `mapstructure:"port"`

	// RefreshInterval is the period of scheduled refreshes
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`

	// RateLimit is the number of requests allowed per client per RateWindow
	RateLimit int `mapstructure:"rate_limit"`

	// RateWindow is the window RateLimit applies to
	RateWindow time.Duration `mapstructure:"rate_window"`
}

// CatalogConfig holds catalog service settings
type CatalogConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIBaseURL  string        `mapstructure:"api_base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	Concurrency int           `mapstructure:"concurrency"`
}

// SearchConfig holds search term sources
type SearchConfig struct {
	// TermsFile lists one term per line
	TermsFile string `mapstructure:"terms_file"`

	// DefaultTerms apply when TermsFile is missing
	DefaultTerms []string `mapstructure:"default_terms"`
}

// OutputConfig holds CSV export settings
type OutputConfig struct {
	CSVPath             string `mapstructure:"csv_path"`
	IncludeCreationDate bool   `mapstructure:"include_creation_date"`
}

// SnapshotConfig holds snapshot storage configuration
type SnapshotConfig struct {
	// Type specifies the backend (memory/redis/sqlite)
	Type string `mapstructure:"type"`

	// TTL bounds how long a snapshot is served; zero keeps it indefinitely
	TTL time.Duration `mapstructure:"ttl"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `mapstructure:"redis"`

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `mapstructure:"address"`

	// Password is the Redis authentication password
	Password string `mapstructure:"password"`

	// DB is the Redis database number
	DB int `mapstructure:"db"`

	// KeyPrefix namespaces every key
	KeyPrefix string `mapstructure:"key_prefix"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Options controls the config loader behavior
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load returns the merged configuration sourced from defaults, an optional YAML
// file and environment variables, in increasing precedence.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		_ = godotenv.Load(opts.EnvFile)
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	explicitFile := false
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		explicitFile = true
	} else if file := os.Getenv(EnvPrefix + "_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		explicitFile = true
	}

	if !explicitFile {
		v.SetConfigName("opencosts")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.refresh_interval", "6h")
	v.SetDefault("server.rate_limit", 60)
	v.SetDefault("server.rate_window", "1m")

	v.SetDefault("catalog.base_url", "https://openrouter.ai")
	v.SetDefault("catalog.api_base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("catalog.timeout", "30s")
	v.SetDefault("catalog.user_agent", "Mozilla/5.0 (compatible; OpenCostsBot/1.0)")
	v.SetDefault("catalog.concurrency", 8)

	v.SetDefault("search.terms_file", "data/input/models_strings.txt")
	v.SetDefault("search.default_terms", DefaultSearchTerms)

	v.SetDefault("output.csv_path", "data/output/openrouter_models_providers.csv")
	v.SetDefault("output.include_creation_date", true)

	v.SetDefault("snapshot.type", "memory")
	v.SetDefault("snapshot.ttl", "0s")
	v.SetDefault("snapshot.redis.address", "localhost:6379")
	v.SetDefault("snapshot.redis.password", "")
	v.SetDefault("snapshot.redis.db", 0)
	v.SetDefault("snapshot.redis.key_prefix", "opencosts:")
	v.SetDefault("snapshot.sqlite.path", "data/opencosts.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RefreshInterval < time.Minute {
		return errors.New("refresh interval must be at least 1 minute")
	}

	if c.Server.RateLimit < 1 || c.Server.RateWindow <= 0 {
		return errors.New("rate limit and rate window must be positive")
	}

	if c.Catalog.Concurrency < 1 {
		return errors.New("catalog concurrency must be at least 1")
	}

	if c.Catalog.Timeout <= 0 {
		return errors.New("catalog timeout must be positive")
	}

	switch c.Snapshot.Type {
	case "memory":
	case "redis":
		if c.Snapshot.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis snapshots")
		}
	case "sqlite":
		if c.Snapshot.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite snapshots")
		}
	default:
		return errors.New("snapshot type must be 'memory', 'redis' or 'sqlite'")
	}

	return nil
}
