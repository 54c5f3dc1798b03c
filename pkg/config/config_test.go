package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func clearAIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL",
		"PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE",
		"AI_PROVIDER", "AI_BASE_URL", "AI_API_KEY", "AI_MAX_TOKENS",
		"VALIDATOR_MODEL", "GENERATOR_MODEL", "SUMMARIZER_MODEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearAIEnv(t)

	cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.yaml"), "test")
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}

	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.AI.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.AI.Provider)
	}
	if cfg.AI.Validator.Model == "" {
		t.Error("validator model default missing")
	}
	if cfg.Version != "test" {
		t.Errorf("Version = %q, want test", cfg.Version)
	}
}

func TestLoadFrom_EnvOverridesYAML(t *testing.T) {
	clearAIEnv(t)

	path := writeConfig(t, `
env: "staging"
database:
  host: "db.example.com"
  database: "bookings"
ai:
  provider: "openai"
  generator:
    model: "from-yaml"
`)

	t.Setenv("PGHOST", "db.override.example.com")
	t.Setenv("GENERATOR_MODEL", "from-env")
	t.Setenv("PGPASSWORD", "s3cret")

	cfg, err := loadFrom(path, "test")
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}

	if cfg.Env != "staging" {
		t.Errorf("Env = %q, want staging (yaml)", cfg.Env)
	}
	if cfg.Database.Host != "db.override.example.com" {
		t.Errorf("Host = %q, want env override", cfg.Database.Host)
	}
	if cfg.AI.Generator.Model != "from-env" {
		t.Errorf("Generator.Model = %q, want from-env", cfg.AI.Generator.Model)
	}
	if cfg.Database.Password != "s3cret" {
		t.Errorf("Password not loaded from environment")
	}
}

func TestLoadFrom_RejectsUnknownProvider(t *testing.T) {
	clearAIEnv(t)
	t.Setenv("AI_PROVIDER", "groqqq")

	_, err := loadFrom(filepath.Join(t.TempDir(), "missing.yaml"), "test")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "aeroquery",
		Password: "pw",
		Database: "flights",
		SSLMode:  "disable",
	}

	got := cfg.ConnectionString()
	want := "host=localhost port=5432 user=aeroquery password=pw dbname=flights sslmode=disable"
	if got != want {
		t.Errorf("ConnectionString() = %q, want %q", got, want)
	}
}
