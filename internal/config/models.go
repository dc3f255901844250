package config

import (
	"time"
)

// ServerConfig represents the configuration of the HTTP server
type ServerConfig struct {
	ListenAddress   string
	BasePath        string
	Version         string
	TrustedProxies  []string
	CORSOrigins     []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// RateLimitConfig represents the configuration of the rate limiter
type RateLimitConfig struct {
	Type             string
	Limit            int
	Window           time.Duration
	CleanupFrequency time.Duration
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisPrefix      string
}

// StatsConfig represents the configuration of stats persistence
type StatsConfig struct {
	Store          string
	SQLitePath     string
	MySQLDSN       string
	FlushFrequency time.Duration
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// GetServer returns the server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	cfg := ServerConfig{
		ListenAddress:  c.GetString("server.listen_address"),
		BasePath:       c.GetString("server.base_path"),
		Version:        c.GetString("server.version"),
		TrustedProxies: c.GetStringSlice("server.trusted_proxies"),
		CORSOrigins:    c.GetStringSlice("server.cors_origins"),
	}

	var err error
	if cfg.ReadTimeout, err = c.GetDuration("server.read_timeout"); err != nil {
		return ServerConfig{}, err
	}
	if cfg.WriteTimeout, err = c.GetDuration("server.write_timeout"); err != nil {
		return ServerConfig{}, err
	}
	if cfg.ShutdownTimeout, err = c.GetDuration("server.shutdown_timeout"); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// GetRateLimit returns the rate limiter configuration
func (c *Config) GetRateLimit() (RateLimitConfig, error) {
	cfg := RateLimitConfig{
		Type:          c.GetString("ratelimit.type"),
		Limit:         c.GetInt("ratelimit.limit"),
		RedisAddr:     c.GetString("ratelimit.redis_addr"),
		RedisPassword: c.GetString("ratelimit.redis_password"),
		RedisDB:       c.GetInt("ratelimit.redis_db"),
		RedisPrefix:   c.GetString("ratelimit.redis_prefix"),
	}

	var err error
	if cfg.Window, err = c.GetDuration("ratelimit.window"); err != nil {
		return RateLimitConfig{}, err
	}
	if cfg.CleanupFrequency, err = c.GetDuration("ratelimit.cleanup_frequency"); err != nil {
		return RateLimitConfig{}, err
	}
	return cfg, nil
}

// GetStats returns the stats persistence configuration
func (c *Config) GetStats() (StatsConfig, error) {
	flush, err := c.GetDuration("stats.flush_frequency")
	if err != nil {
		return StatsConfig{}, err
	}
	return StatsConfig{
		Store:          c.GetString("stats.store"),
		SQLitePath:     c.GetString("stats.sqlite_path"),
		MySQLDSN:       c.GetString("stats.mysql_dsn"),
		FlushFrequency: flush,
	}, nil
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:  c.GetString("logging.level"),
		Format: c.GetString("logging.format"),
	}
}
