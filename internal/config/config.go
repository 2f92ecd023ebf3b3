package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 8000
	defaultEnv        = "development"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	defaultDBDriver   = DriverMySQL
	defaultDBHost     = "127.0.0.1"
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "link_archive"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"
	defaultSSLMode    = "disable"
)

type rawAppConfig struct {
	Port        int                   `yaml:"port"`
	Env         string                `yaml:"env"`
	DSN         string                `yaml:"dsn"`
	DatabaseURL string                `yaml:"database_url"`
	Database    DatabaseRuntimeConfig `yaml:"database"`
	RedisURL    string                `yaml:"redis_url"`
	AI          AIConfig              `yaml:"ai"`
}

// Load reads the YAML config file and applies environment overrides.
// A missing file is not an error: the service can run from env vars alone
// (DATABASE_URL, DB_DRIVER, REDIS_URL, AI_API_KEY, PORT).
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		raw := rawAppConfig{}
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		applyRawAppConfig(&cfg, raw)
	case os.IsNotExist(err):
		// env-only startup
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	cfg.Database = normalizeDatabaseConfig(cfg.Database)
	cfg.DSN = cfg.Database.DSNValue()
	cfg.Env = normalizeEnv(cfg.Env)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.Database.Driver != DriverMySQL && cfg.Database.Driver != DriverPostgres {
		return nil, fmt.Errorf("invalid database.driver %q, expected %q or %q", cfg.Database.Driver, DriverMySQL, DriverPostgres)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Driver:   defaultDBDriver,
			Host:     defaultDBHost,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
			Charset:  defaultDBCharset,
			Loc:      defaultDBLoc,
			SSLMode:  defaultSSLMode,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}

	db := cfg.Database
	applyDatabaseConfig(&db, raw.Database)
	if v := strings.TrimSpace(raw.DSN); v != "" {
		db.DSN = v
	}
	if v := strings.TrimSpace(raw.DatabaseURL); v != "" {
		db.DSN = v
	}
	cfg.Database = db

	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.RedisURL = v
	}
	if len(raw.AI.Providers) > 0 || raw.AI.AnalyzeModel != nil || raw.AI.ChatModel != nil {
		cfg.AI = raw.AI
	}
}

func applyDatabaseConfig(dst *DatabaseRuntimeConfig, src DatabaseRuntimeConfig) {
	if v := strings.TrimSpace(src.Driver); v != "" {
		dst.Driver = v
	}
	if v := strings.TrimSpace(src.DSN); v != "" {
		dst.DSN = v
	}
	if v := strings.TrimSpace(src.URL); v != "" {
		dst.DSN = v
	}
	if v := strings.TrimSpace(src.Host); v != "" {
		dst.Host = v
	}
	if src.Port != 0 {
		dst.Port = src.Port
	}
	if v := strings.TrimSpace(src.User); v != "" {
		dst.User = v
	}
	if v := strings.TrimSpace(src.Username); v != "" {
		dst.User = v
	}
	if v := strings.TrimSpace(src.Password); v != "" {
		dst.Password = v
	}
	if v := strings.TrimSpace(src.Name); v != "" {
		dst.Name = v
	}
	if v := strings.TrimSpace(src.DBName); v != "" {
		dst.Name = v
	}
	if v := strings.TrimSpace(src.Charset); v != "" {
		dst.Charset = v
	}
	if v := strings.TrimSpace(src.Loc); v != "" {
		dst.Loc = v
	}
	if v := strings.TrimSpace(src.SSLMode); v != "" {
		dst.SSLMode = v
	}
	if len(src.Params) > 0 {
		dst.Params = src.Params
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.Database.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DRIVER")); v != "" {
		cfg.Database.Driver = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		cfg.RedisURL = v
	}

	// AI_API_KEY bootstraps a default OpenAI provider when none is configured.
	if v := strings.TrimSpace(os.Getenv("AI_API_KEY")); v != "" && len(cfg.AI.Providers) == 0 {
		cfg.AI.Providers = []AIProvider{{
			ID:      "env",
			Name:    "env",
			Type:    "openai",
			APIKey:  v,
			Enabled: true,
		}}
	}
}

func normalizeDatabaseConfig(db DatabaseRuntimeConfig) DatabaseRuntimeConfig {
	db.Driver = strings.ToLower(strings.TrimSpace(db.Driver))
	if db.Driver == "" {
		db.Driver = defaultDBDriver
	}
	if db.Port == 0 {
		switch db.Driver {
		case DriverPostgres:
			db.Port = 5432
		default:
			db.Port = 3306
		}
	}
	return db
}

func normalizeEnv(env string) string {
	e := strings.ToLower(strings.TrimSpace(env))
	switch e {
	case "prod", "production":
		return "production"
	default:
		return "development"
	}
}
