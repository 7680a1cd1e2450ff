package llm

import (
	"fmt"
	"log"

	"github.com/Biswa2Das/marketing-storyline/config"
)

// NewClient creates a completion client from config.
//
// When the openai provider is selected without an API key, a mock client is
// substituted so local development works without credentials. The swap is
// logged and every mock completion carries the Mock flag.
func NewClient(cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" || cfg.APIKey == "your-api-key-here" {
			log.Println("LLM_API_KEY not configured, using mock completions")
			return NewMockClient(), nil
		}
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.RequestTimeout), nil

	case "ollama":
		return NewOllamaClient(cfg.OllamaHost, cfg.Model, cfg.RequestTimeout), nil

	case "mock":
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
