package infrastructure

import (
	"os"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "HOST", "OPENAI_API_KEY", "OPENAI_MODEL", "ALLOWED_ORIGIN", "FETCH_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected Load to succeed, got error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got %q", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected host '0.0.0.0', got %q", cfg.Host)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("Expected default model 'gpt-4o-mini', got %q", cfg.OpenAIModel)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("Expected allowed origin '*', got %q", cfg.AllowedOrigin)
	}
	if cfg.FetchTimeoutSeconds != 30 {
		t.Errorf("Expected fetch timeout 30, got %d", cfg.FetchTimeoutSeconds)
	}
}

// A missing API key must not fail startup; it surfaces on first model call.
func TestLoadWithoutAPIKey(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected Load to succeed without OPENAI_API_KEY, got error: %v", err)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Errorf("Expected empty API key, got %q", cfg.OpenAIAPIKey)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("ALLOWED_ORIGIN", "https://news.example.com")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected Load to succeed, got error: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Expected port '9999', got %q", cfg.Port)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("Expected API key 'sk-test', got %q", cfg.OpenAIAPIKey)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("Expected model 'gpt-4o', got %q", cfg.OpenAIModel)
	}
	if cfg.AllowedOrigin != "https://news.example.com" {
		t.Errorf("Expected configured origin, got %q", cfg.AllowedOrigin)
	}
	if cfg.FetchTimeoutSeconds != 5 {
		t.Errorf("Expected fetch timeout 5, got %d", cfg.FetchTimeoutSeconds)
	}
}

func TestLoadIgnoresUnparsableTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FETCH_TIMEOUT_SECONDS", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected Load to succeed, got error: %v", err)
	}
	if cfg.FetchTimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.FetchTimeoutSeconds)
	}
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FETCH_TIMEOUT_SECONDS", "-1")

	if _, err := Load(); err == nil {
		t.Error("Expected Load to fail for negative timeout")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "PORT", Message: "port must not be empty"}
	if err.Error() != "PORT: port must not be empty" {
		t.Errorf("Unexpected error string: %q", err.Error())
	}
}
