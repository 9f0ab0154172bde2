package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies default configuration values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.OutputFormat != DefaultOutputFormat {
		t.Errorf("OutputFormat = %v, want %v", cfg.OutputFormat, DefaultOutputFormat)
	}
	if cfg.Debug {
		t.Error("Debug should be false by default")
	}
	if cfg.Database.IsConfigured() {
		t.Error("Database should not be configured by default")
	}
	if cfg.Redis.IsConfigured() {
		t.Error("Redis should not be configured by default")
	}
}

// TestDefaultConstants verifies default constant values.
func TestDefaultConstants(t *testing.T) {
	if DefaultTimeout != 30*time.Second {
		t.Errorf("DefaultTimeout = %v, want 30s", DefaultTimeout)
	}
	if DefaultOutputFormat != OutputFormatText {
		t.Errorf("DefaultOutputFormat = %v, want text", DefaultOutputFormat)
	}
	if DefaultConfigDir != ".samu" {
		t.Errorf("DefaultConfigDir = %v, want .samu", DefaultConfigDir)
	}
	if DefaultConfigFile != "config.yaml" {
		t.Errorf("DefaultConfigFile = %v, want config.yaml", DefaultConfigFile)
	}
}

// TestOutputFormat_IsValid verifies output format validation.
func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{OutputFormatText, true},
		{OutputFormatJSON, true},
		{OutputFormatYAML, true},
		{"invalid", false},
		{"", false},
		{"JSON", false}, // Case sensitive
		{"xml", false},
	}

	for _, tc := range tests {
		if got := tc.format.IsValid(); got != tc.valid {
			t.Errorf("OutputFormat(%q).IsValid() = %v, want %v", tc.format, got, tc.valid)
		}
	}
}

// TestConfigDir_EnvOverride verifies SAMU_CONFIG_DIR takes precedence.
func TestConfigDir_EnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SAMU_CONFIG_DIR", tmpDir)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if dir != tmpDir {
		t.Errorf("ConfigDir() = %v, want %v", dir, tmpDir)
	}
}

// TestLoadConfig_Defaults verifies loading with no file and no env vars.
func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SAMU_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.OutputFormat != DefaultOutputFormat {
		t.Errorf("OutputFormat = %v, want %v", cfg.OutputFormat, DefaultOutputFormat)
	}
}

// TestLoadConfig_FromFile verifies YAML file loading.
func TestLoadConfig_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SAMU_CONFIG_DIR", tmpDir)

	content := `timeout: 2m
output_format: json
debug: true
database:
  host: db.internal
  database: samu
  user: readonly
redis:
  addr: cache.internal:6379
  db: 2
  ttl: 90s
`
	if err := os.WriteFile(filepath.Join(tmpDir, DefaultConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
	}
	if cfg.OutputFormat != OutputFormatJSON {
		t.Errorf("OutputFormat = %v, want json", cfg.OutputFormat)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if !cfg.Database.IsConfigured() {
		t.Fatal("Database should be configured")
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %v, want db.internal", cfg.Database.Host)
	}
	if !cfg.Redis.IsConfigured() {
		t.Fatal("Redis should be configured")
	}
	if cfg.Redis.TTL != 90*time.Second {
		t.Errorf("Redis.TTL = %v, want 90s", cfg.Redis.TTL)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("Redis.DB = %v, want 2", cfg.Redis.DB)
	}
}

// TestLoadConfig_EnvOverridesFile verifies env vars win over the file.
func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SAMU_CONFIG_DIR", tmpDir)

	content := "timeout: 2m\noutput_format: json\n"
	if err := os.WriteFile(filepath.Join(tmpDir, DefaultConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	t.Setenv("SAMU_TIMEOUT", "45s")
	t.Setenv("SAMU_OUTPUT_FORMAT", "yaml")
	t.Setenv("SAMU_REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Timeout)
	}
	if cfg.OutputFormat != OutputFormatYAML {
		t.Errorf("OutputFormat = %v, want yaml", cfg.OutputFormat)
	}
	if !cfg.Redis.IsConfigured() {
		t.Error("Redis should be configured from env")
	}
	if cfg.Redis.TTL != DefaultCacheTTL {
		t.Errorf("Redis.TTL = %v, want default %v", cfg.Redis.TTL, DefaultCacheTTL)
	}
}

// TestLoadConfig_DatabaseFromEnv verifies the database section from env vars.
func TestLoadConfig_DatabaseFromEnv(t *testing.T) {
	t.Setenv("SAMU_CONFIG_DIR", t.TempDir())
	t.Setenv("SAMU_DB_HOST", "pg.internal")
	t.Setenv("SAMU_DB_NAME", "samu")
	t.Setenv("SAMU_DB_USER", "cli")
	t.Setenv("SAMU_DB_PORT", "5433")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Database.IsConfigured() {
		t.Fatal("Database should be configured from env")
	}
	if cfg.Database.Host != "pg.internal" || cfg.Database.Port != 5433 {
		t.Errorf("Database = %+v, want pg.internal:5433", cfg.Database)
	}
}

// TestLoadConfig_InvalidOutputFormat verifies validation failures.
func TestLoadConfig_InvalidOutputFormat(t *testing.T) {
	t.Setenv("SAMU_CONFIG_DIR", t.TempDir())
	t.Setenv("SAMU_OUTPUT_FORMAT", "xml")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() expected error for invalid output format")
	}
}

// TestSaveConfig_RoundTrip verifies save and reload.
func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("SAMU_CONFIG_DIR", t.TempDir())

	cfg := DefaultConfig()
	cfg.Timeout = 90 * time.Second
	cfg.OutputFormat = OutputFormatJSON
	cfg.Redis = &RedisConfig{Addr: "localhost:6379", DB: 1, TTL: time.Minute}

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if loaded.Timeout != cfg.Timeout {
		t.Errorf("Timeout = %v, want %v", loaded.Timeout, cfg.Timeout)
	}
	if loaded.OutputFormat != cfg.OutputFormat {
		t.Errorf("OutputFormat = %v, want %v", loaded.OutputFormat, cfg.OutputFormat)
	}
	if loaded.Redis == nil || loaded.Redis.Addr != "localhost:6379" || loaded.Redis.TTL != time.Minute {
		t.Errorf("Redis = %+v, want round-tripped values", loaded.Redis)
	}
}

// TestDatabaseConfig_PoolConfig verifies the conversion to pool settings.
func TestDatabaseConfig_PoolConfig(t *testing.T) {
	t.Setenv("SAMU_DB_PASSWORD", "hunter2")

	dbCfg := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Database: "samu",
		User:     "cli",
		SSLMode:  "require",
	}

	pool := dbCfg.PoolConfig()
	if pool.Host != "db.internal" || pool.Port != 5433 {
		t.Errorf("PoolConfig host/port = %s:%d, want db.internal:5433", pool.Host, pool.Port)
	}
	if pool.Password != "hunter2" {
		t.Error("PoolConfig did not pick up the password from the environment")
	}
	if pool.SSLMode != "require" {
		t.Errorf("PoolConfig SSLMode = %v, want require", pool.SSLMode)
	}
}

// TestExpandPath verifies ~ expansion.
func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/x/y")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != filepath.Join(home, "x/y") {
		t.Errorf("ExpandPath() = %v, want under home", got)
	}

	got, err = ExpandPath("/abs/path")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != "/abs/path" {
		t.Errorf("ExpandPath() = %v, want unchanged", got)
	}
}
