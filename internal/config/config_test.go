package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	setEnv := func(key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	t.Run("Defaults", func(t *testing.T) {
		setEnv("ANTHROPIC_API_KEY", "anthropic_key")
		os.Unsetenv("FITMUNCH_LLM_PROVIDER")
		os.Unsetenv("FITMUNCH_DB_PATH")
		os.Unsetenv("FITMUNCH_HTTP_ADDR")
		os.Unsetenv("TELEGRAM_ALLOWED_USER_IDS")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.LLMProvider != "anthropic" {
			t.Errorf("Expected default provider 'anthropic', got '%s'", cfg.LLMProvider)
		}
		if cfg.AnthropicAPIKey != "anthropic_key" {
			t.Errorf("Expected AnthropicAPIKey to be 'anthropic_key', got '%s'", cfg.AnthropicAPIKey)
		}
		if cfg.DatabasePath != "data/fitmunch.db" {
			t.Errorf("Expected default database path, got '%s'", cfg.DatabasePath)
		}
		if cfg.HTTPAddr != ":8080" {
			t.Errorf("Expected default HTTP addr ':8080', got '%s'", cfg.HTTPAddr)
		}
	})

	t.Run("MissingAnthropicKey", func(t *testing.T) {
		os.Unsetenv("ANTHROPIC_API_KEY")
		os.Unsetenv("FITMUNCH_LLM_PROVIDER")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing ANTHROPIC_API_KEY, got nil")
		}
		expectedError := "ANTHROPIC_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("GeminiProvider", func(t *testing.T) {
		setEnv("FITMUNCH_LLM_PROVIDER", "gemini")
		setEnv("GEMINI_API_KEY", "gemini_key")
		os.Unsetenv("ANTHROPIC_API_KEY")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.GeminiAPIKey != "gemini_key" {
			t.Errorf("Expected GeminiAPIKey to be 'gemini_key', got '%s'", cfg.GeminiAPIKey)
		}
	})

	t.Run("MissingGeminiKey", func(t *testing.T) {
		setEnv("FITMUNCH_LLM_PROVIDER", "gemini")
		os.Unsetenv("GEMINI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing GEMINI_API_KEY, got nil")
		}
		expectedError := "GEMINI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		setEnv("FITMUNCH_LLM_PROVIDER", "watson")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for unknown provider, got nil")
		}
	})

	t.Run("AllowedUserIDs", func(t *testing.T) {
		setEnv("FITMUNCH_LLM_PROVIDER", "anthropic")
		setEnv("ANTHROPIC_API_KEY", "anthropic_key")
		setEnv("TELEGRAM_ALLOWED_USER_IDS", "12345, 67890")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(cfg.TelegramAllowedUserIDs) != 2 {
			t.Fatalf("Expected 2 allowed IDs, got %d", len(cfg.TelegramAllowedUserIDs))
		}
		if cfg.TelegramAllowedUserIDs[0] != 12345 || cfg.TelegramAllowedUserIDs[1] != 67890 {
			t.Errorf("Unexpected allowed IDs: %v", cfg.TelegramAllowedUserIDs)
		}
	})

	t.Run("BadAllowedUserIDs", func(t *testing.T) {
		setEnv("ANTHROPIC_API_KEY", "anthropic_key")
		setEnv("TELEGRAM_ALLOWED_USER_IDS", "not-a-number")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for malformed allowed IDs, got nil")
		}
	})
}
