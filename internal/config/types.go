package config

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment-variable overrides applied on top.
type AppConfig struct {
	Port     int                   `yaml:"port"`
	Env      string                `yaml:"env"` // "development" | "production"
	DSN      string                `yaml:"dsn"` // resolved database DSN
	Database DatabaseRuntimeConfig `yaml:"database"`
	RedisURL string                `yaml:"redis_url"` // optional; enables the idempotence guard
	AI       AIConfig              `yaml:"ai"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

type DatabaseRuntimeConfig struct {
	Driver   string            `yaml:"driver"` // "mysql" | "postgres"
	DSN      string            `yaml:"dsn"`
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	User     string            `yaml:"user"`
	Username string            `yaml:"username"`
	Password string            `yaml:"password"`
	Name     string            `yaml:"name"`
	DBName   string            `yaml:"db_name"`
	Charset  string            `yaml:"charset"`
	Loc      string            `yaml:"loc"`
	SSLMode  string            `yaml:"ssl_mode"`
	Params   map[string]string `yaml:"params"`
}

// AIConfig configures the generative-AI providers. With no enabled provider
// the analyzer and chat responder run in degraded (fallback) mode.
type AIConfig struct {
	Providers    []AIProvider       `yaml:"providers"`
	AnalyzeModel *AIModelAssignment `yaml:"analyze_model,omitempty"`
	ChatModel    *AIModelAssignment `yaml:"chat_model,omitempty"`
}

// AIModelAssignment pins a feature to a specific provider and/or model.
type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}
