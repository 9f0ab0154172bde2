// Package config provides CLI configuration management for the samu
// command-line tool. It supports loading configuration from YAML files,
// environment variables, and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samuhq/samu-cli/pkg/db"
)

// OutputFormat defines the supported output formats for CLI results.
type OutputFormat string

const (
	// OutputFormatText is human-readable plain text output.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON is JSON-formatted output for machine processing.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML is YAML-formatted output for machine processing.
	OutputFormatYAML OutputFormat = "yaml"
)

// Default configuration values.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultOutputFormat = OutputFormatText
	DefaultConfigDir    = ".samu"
	DefaultConfigFile   = "config.yaml"
	DefaultCacheTTL     = 5 * time.Minute
)

// DatabaseConfig holds the optional PostgreSQL backend settings. When not
// configured the CLI serves the built-in seed data.
type DatabaseConfig struct {
	// Host is the database server hostname.
	Host string `yaml:"host,omitempty"`

	// Port is the database server port (default: 5432).
	Port int `yaml:"port,omitempty"`

	// Database is the database name.
	Database string `yaml:"database,omitempty"`

	// User is the database username.
	User string `yaml:"user,omitempty"`

	// SSLMode is the SSL connection mode (disable, require, verify-ca, verify-full).
	SSLMode string `yaml:"sslmode,omitempty"`
}

// IsConfigured returns true if the database is configured with required fields.
func (c *DatabaseConfig) IsConfigured() bool {
	return c != nil && c.Host != "" && c.Database != "" && c.User != ""
}

// PoolConfig converts the section into a db.Config, taking the password and
// tuning knobs from the environment.
func (c *DatabaseConfig) PoolConfig() *db.Config {
	cfg := db.ConfigFromEnv()
	if c == nil {
		return cfg
	}
	if c.Host != "" {
		cfg.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Port = c.Port
	}
	if c.Database != "" {
		cfg.Database = c.Database
	}
	if c.User != "" {
		cfg.User = c.User
	}
	if c.SSLMode != "" {
		cfg.SSLMode = c.SSLMode
	}
	return cfg
}

// RedisConfig holds the optional Redis cache settings.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string `yaml:"addr,omitempty"`

	// DB is the Redis database number.
	DB int `yaml:"db,omitempty"`

	// TTL is how long cached listings stay fresh.
	TTL time.Duration `yaml:"-"`
}

// IsConfigured returns true if a cache address is set.
func (c *RedisConfig) IsConfigured() bool {
	return c != nil && c.Addr != ""
}

// CLIConfig holds the CLI configuration settings.
type CLIConfig struct {
	// Timeout is the default timeout for backend requests.
	Timeout time.Duration `yaml:"timeout"`

	// OutputFormat specifies the default output format for commands.
	OutputFormat OutputFormat `yaml:"output_format"`

	// Debug enables verbose debug logging.
	Debug bool `yaml:"debug,omitempty"`

	// Database holds the optional PostgreSQL backend settings.
	Database *DatabaseConfig `yaml:"database,omitempty"`

	// Redis holds the optional cache settings.
	Redis *RedisConfig `yaml:"redis,omitempty"`
}

// DefaultConfig returns a CLIConfig with default values.
func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		Timeout:      DefaultTimeout,
		OutputFormat: DefaultOutputFormat,
	}
}

// ConfigDir returns the configuration directory path.
// Uses $SAMU_CONFIG_DIR if set, otherwise ~/.samu
func ConfigDir() (string, error) {
	if dir := os.Getenv("SAMU_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, DefaultConfigDir), nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// LoadConfig loads the CLI configuration from file and environment variables.
// Configuration is loaded in this order (later sources override earlier):
// 1. Default values
// 2. Config file (~/.samu/config.yaml or $SAMU_CONFIG_DIR/config.yaml)
// 3. Environment variables (SAMU_TIMEOUT, SAMU_OUTPUT_FORMAT, ...)
func LoadConfig() (*CLIConfig, error) {
	cfg := DefaultConfig()

	configPath, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("getting config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *CLIConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	// Temp struct so the duration fields unmarshal from strings.
	type redisFile struct {
		Addr string `yaml:"addr"`
		DB   int    `yaml:"db"`
		TTL  string `yaml:"ttl"`
	}
	type configFile struct {
		Timeout      string          `yaml:"timeout"`
		OutputFormat OutputFormat    `yaml:"output_format"`
		Debug        bool            `yaml:"debug"`
		Database     *DatabaseConfig `yaml:"database"`
		Redis        *redisFile      `yaml:"redis"`
	}

	var fileCfg configFile
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if fileCfg.Timeout != "" {
		timeout, err := time.ParseDuration(fileCfg.Timeout)
		if err != nil {
			return fmt.Errorf("parsing timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	if fileCfg.OutputFormat != "" {
		cfg.OutputFormat = fileCfg.OutputFormat
	}
	if fileCfg.Database != nil {
		cfg.Database = fileCfg.Database
	}
	if fileCfg.Redis != nil {
		cfg.Redis = &RedisConfig{
			Addr: fileCfg.Redis.Addr,
			DB:   fileCfg.Redis.DB,
			TTL:  DefaultCacheTTL,
		}
		if fileCfg.Redis.TTL != "" {
			ttl, err := time.ParseDuration(fileCfg.Redis.TTL)
			if err != nil {
				return fmt.Errorf("parsing redis ttl: %w", err)
			}
			cfg.Redis.TTL = ttl
		}
	}
	cfg.Debug = fileCfg.Debug

	return nil
}

// loadFromEnv overlays environment variables onto the configuration.
func loadFromEnv(cfg *CLIConfig) {
	if v := os.Getenv("SAMU_TIMEOUT"); v != "" {
		if timeout, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = timeout
		}
	}

	if v := os.Getenv("SAMU_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = OutputFormat(v)
	}

	if v := os.Getenv("SAMU_DEBUG"); v == "true" || v == "1" {
		cfg.Debug = true
	}

	if v := os.Getenv("SAMU_REDIS_ADDR"); v != "" {
		if cfg.Redis == nil {
			cfg.Redis = &RedisConfig{TTL: DefaultCacheTTL}
		}
		cfg.Redis.Addr = v
	}
	if cfg.Redis != nil {
		if v := os.Getenv("SAMU_REDIS_DB"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				cfg.Redis.DB = n
			}
		}
	}

	loadDatabaseFromEnv(cfg)
}

// loadDatabaseFromEnv overlays database environment variables.
func loadDatabaseFromEnv(cfg *CLIConfig) {
	host := os.Getenv("SAMU_DB_HOST")
	database := os.Getenv("SAMU_DB_NAME")
	user := os.Getenv("SAMU_DB_USER")

	if host == "" && database == "" && user == "" {
		return
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}

	if host != "" {
		cfg.Database.Host = host
	}
	if database != "" {
		cfg.Database.Database = database
	}
	if user != "" {
		cfg.Database.User = user
	}
	if v := os.Getenv("SAMU_DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("SAMU_DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
}

// Validate checks that the configuration is valid.
func (c *CLIConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if !c.OutputFormat.IsValid() {
		return fmt.Errorf("invalid output_format: %q (must be text, json, or yaml)", c.OutputFormat)
	}

	return nil
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// SaveConfig saves the configuration to the config file.
func SaveConfig(cfg *CLIConfig) error {
	configDir, err := ConfigDir()
	if err != nil {
		return fmt.Errorf("getting config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, DefaultConfigFile)

	type redisFile struct {
		Addr string `yaml:"addr,omitempty"`
		DB   int    `yaml:"db,omitempty"`
		TTL  string `yaml:"ttl,omitempty"`
	}
	type configFile struct {
		Timeout      string          `yaml:"timeout"`
		OutputFormat OutputFormat    `yaml:"output_format"`
		Debug        bool            `yaml:"debug,omitempty"`
		Database     *DatabaseConfig `yaml:"database,omitempty"`
		Redis        *redisFile      `yaml:"redis,omitempty"`
	}

	fileCfg := configFile{
		Timeout:      cfg.Timeout.String(),
		OutputFormat: cfg.OutputFormat,
		Debug:        cfg.Debug,
		Database:     cfg.Database,
	}
	if cfg.Redis != nil {
		fileCfg.Redis = &redisFile{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		}
		if cfg.Redis.TTL > 0 {
			fileCfg.Redis.TTL = cfg.Redis.TTL.String()
		}
	}

	data, err := yaml.Marshal(&fileCfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
