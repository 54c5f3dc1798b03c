package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for aeroquery.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (database password, API key) must only come from environment variables.
type Config struct {
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// AI capability configuration (three agents sharing one endpoint)
	AI AIConfig `yaml:"ai"`

	// Query result presentation
	Query QueryConfig `yaml:"query"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"aeroquery"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"flights"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"5"`
}

// AIConfig holds the text-generation capability configuration.
// The three agents (validator, generator, summarizer) share one provider,
// endpoint and API key; they differ only in model, temperature and the
// fixed instruction preamble attached by the pipeline.
type AIConfig struct {
	// Provider selects the client implementation: "openai" (any
	// OpenAI-compatible endpoint, including Groq) or "anthropic".
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`

	// BaseURL is the OpenAI-compatible endpoint. Ignored by the
	// anthropic provider, which uses its fixed API host.
	BaseURL string `yaml:"base_url" env:"AI_BASE_URL" env-default:"https://api.groq.com/openai/v1"`

	// APIKey authenticates against the provider. Optional for local
	// OpenAI-compatible endpoints.
	APIKey string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML

	// MaxTokens caps each completion. Required by the anthropic API.
	MaxTokens int `yaml:"max_tokens" env:"AI_MAX_TOKENS" env-default:"1024"`

	// RequestTimeoutSeconds bounds each external call. 0 disables the
	// bound; stage sequencing is unaffected either way.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" env:"AI_REQUEST_TIMEOUT_SECONDS" env-default:"0"`

	Validator  AgentConfig `yaml:"validator" env-prefix:"VALIDATOR_"`
	Generator  AgentConfig `yaml:"generator" env-prefix:"GENERATOR_"`
	Summarizer AgentConfig `yaml:"summarizer" env-prefix:"SUMMARIZER_"`
}

// AgentConfig holds per-agent model settings.
type AgentConfig struct {
	Model       string  `yaml:"model" env:"MODEL" env-default:"llama-3.3-70b-versatile"`
	Temperature float64 `yaml:"temperature" env:"TEMPERATURE" env-default:"0"`
}

// QueryConfig holds result presentation settings.
type QueryConfig struct {
	// RowLimit truncates printed query results. 0 = print everything.
	// The executed statement itself is never rewritten.
	RowLimit int `yaml:"row_limit" env:"QUERY_ROW_LIMIT" env-default:"50"`
}

// Load reads configuration from config.yaml (if present) with environment
// variable overrides, or from the environment alone. The version parameter
// is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	return loadFrom("config.yaml", version)
}

func loadFrom(path, version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown ai provider %q (expected openai or anthropic)", c.AI.Provider)
	}

	for _, agent := range []struct {
		name string
		cfg  AgentConfig
	}{
		{"validator", c.AI.Validator},
		{"generator", c.AI.Generator},
		{"summarizer", c.AI.Summarizer},
	} {
		if agent.cfg.Model == "" {
			return fmt.Errorf("%s model is required", agent.name)
		}
	}

	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai max_tokens must be positive")
	}

	return nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
