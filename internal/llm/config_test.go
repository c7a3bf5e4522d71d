package llm

import (
	"errors"
	"testing"
	"time"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STUDYAI_LLM_PROVIDER", "STUDYAI_LLM_RETRIES",
		"STUDYAI_GEMINI_API_KEY", "STUDYAI_OPENAI_API_KEY", "STUDYAI_ANTHROPIC_API_KEY",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestValidate(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.Validate()

		var missing *ErrMissingCredential
		if !errors.As(err, &missing) {
			t.Fatalf("expected ErrMissingCredential, got %v", err)
		}
		if missing.Provider != "gemini" {
			t.Errorf("provider = %q, want gemini", missing.Provider)
		}
	})

	t.Run("key present", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Gemini.APIKey = "test-key"
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("mock needs no key", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = "mock"
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = "llama-at-home"
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for unknown provider")
		}
	})
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("STUDYAI_LLM_PROVIDER", "anthropic")
	t.Setenv("STUDYAI_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("STUDYAI_ANTHROPIC_MODEL", "claude-sonnet")
	t.Setenv("STUDYAI_LLM_RETRIES", "3")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retries = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("generation failures must not retry by default, MaxAttempts = %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout != 120*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Run("none found", func(t *testing.T) {
		clearProviderEnv(t)
		if _, ok := DiscoverConfig(); ok {
			t.Error("expected no discovery without keys")
		}
	})

	t.Run("gemini wins over openai", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("GEMINI_API_KEY", "g-key")
		t.Setenv("OPENAI_API_KEY", "o-key")

		cfg, ok := DiscoverConfig()
		if !ok {
			t.Fatal("expected discovery")
		}
		if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
			t.Errorf("discovered %q with key %q", cfg.Provider, cfg.Gemini.APIKey)
		}
	})

	t.Run("anthropic last", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("ANTHROPIC_API_KEY", "a-key")

		cfg, ok := DiscoverConfig()
		if !ok {
			t.Fatal("expected discovery")
		}
		if cfg.Provider != "anthropic" {
			t.Errorf("discovered %q", cfg.Provider)
		}
	})
}
