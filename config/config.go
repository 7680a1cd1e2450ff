package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process settings, loaded from environment variables.
type Config struct {
	// LLM backend
	Provider         string
	Model            string
	FallbackModels   []string
	BaseURL          string
	APIKey           string
	OllamaHost       string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	PresencePenalty  float64
	FrequencyPenalty float64
	RequestTimeout   time.Duration

	// Caching
	CacheEnabled bool
	CacheTTL     time.Duration
	CacheMaxSize int

	// Infrastructure
	RedisAddr   string
	DatabaseURL string
	Port        string
	FrontendURL string

	// Rate limits, requests per minute per client
	ExtractRatePerMin   int
	StorylineRatePerMin int
}

// Load reads configuration from the environment, loading .env first if present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		Provider:         envStr("LLM_PROVIDER", "openai"),
		Model:            envStr("LLM_MODEL", "gpt-4o-mini"),
		FallbackModels:   envList("LLM_FALLBACK_MODELS"),
		BaseURL:          envStr("LLM_BASE_URL", ""),
		APIKey:           os.Getenv("LLM_API_KEY"),
		OllamaHost:       envStr("OLLAMA_HOST", "http://localhost:11434"),
		Temperature:      envFloat("LLM_TEMPERATURE", 0.7),
		MaxTokens:        envInt("LLM_MAX_TOKENS", 1000),
		TopP:             envFloat("LLM_TOP_P", 1.0),
		PresencePenalty:  envFloat("LLM_PRESENCE_PENALTY", 0),
		FrequencyPenalty: envFloat("LLM_FREQUENCY_PENALTY", 0),
		RequestTimeout:   envDuration("LLM_REQUEST_TIMEOUT", 30*time.Second),

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheTTL:     envDuration("CACHE_TTL", time.Hour),
		CacheMaxSize: envInt("CACHE_MAX_SIZE", 1000),

		RedisAddr:   os.Getenv("REDIS_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        envStr("PORT", "8080"),
		FrontendURL: envStr("FRONTEND_URL", "*"),

		ExtractRatePerMin:   envInt("EXTRACT_RATE_PER_MIN", 10),
		StorylineRatePerMin: envInt("STORYLINE_RATE_PER_MIN", 5),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	// Accept both plain seconds and Go duration syntax.
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return d
}
