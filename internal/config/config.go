package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance. Values come from defaults, an
// optional config.yaml, a .env file and SPAM_API_* environment variables,
// in increasing order of precedence.
func New() (*Config, error) {
	return Load("")
}

// Load is like New but reads the given config file instead of searching the
// default locations. An empty path searches as New does.
func Load(path string) (*Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/spam-detector-api/")
		v.AddConfigPath("$HOME/.spam-detector-api")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix("SPAM_API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_address", "0.0.0.0:5000")
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("server.version", "1.0.0")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("ratelimit.type", "memory")
	v.SetDefault("ratelimit.limit", 100)
	v.SetDefault("ratelimit.window", "1h")
	v.SetDefault("ratelimit.cleanup_frequency", "10m")
	v.SetDefault("ratelimit.redis_addr", "localhost:6379")
	v.SetDefault("ratelimit.redis_password", "")
	v.SetDefault("ratelimit.redis_db", 0)
	v.SetDefault("ratelimit.redis_prefix", "spamapi:ratelimit")

	v.SetDefault("stats.store", "none")
	v.SetDefault("stats.sqlite_path", "/data/spam_stats.db")
	v.SetDefault("stats.mysql_dsn", "user:password@tcp(localhost:3306)/spam_detector")
	v.SetDefault("stats.flush_frequency", "1m")

	v.SetDefault("whitelist.domains", []string{})
	v.SetDefault("cli.verbose", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration parses a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	d, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
