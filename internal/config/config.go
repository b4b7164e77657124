package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	// LLM Config
	LLMProvider     string // "anthropic" (default) or "gemini"
	AnthropicAPIKey string
	GeminiAPIKey    string

	// Storage
	DatabasePath string

	// HTTP API
	HTTPAddr string

	// Price feed (optional; empty disables the importer)
	PriceFeedSearchURL string

	// Telegram Config (optional for the API server, required for the bot)
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	provider := os.Getenv("FITMUNCH_LLM_PROVIDER")
	if provider == "" {
		provider = "anthropic"
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	switch provider {
	case "anthropic":
		if anthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "gemini":
		if geminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	default:
		return nil, fmt.Errorf("unknown FITMUNCH_LLM_PROVIDER %q", provider)
	}

	dbPath := os.Getenv("FITMUNCH_DB_PATH")
	if dbPath == "" {
		dbPath = "data/fitmunch.db"
	}

	httpAddr := os.Getenv("FITMUNCH_HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	var allowedIDs []int64
	for _, part := range strings.Split(os.Getenv("TELEGRAM_ALLOWED_USER_IDS"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_ALLOWED_USER_IDS entry %q: %w", part, err)
		}
		allowedIDs = append(allowedIDs, id)
	}

	return &Config{
		LLMProvider:            provider,
		AnthropicAPIKey:        anthropicKey,
		GeminiAPIKey:           geminiKey,
		DatabasePath:           dbPath,
		HTTPAddr:               httpAddr,
		PriceFeedSearchURL:     os.Getenv("FITMUNCH_PRICE_FEED_URL"),
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowedIDs,
	}, nil
}
