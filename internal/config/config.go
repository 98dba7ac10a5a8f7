package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Host string
	Port string
	Env  string

	// CORS
	AllowedOrigin string

	// LiteLLM proxy (OpenAI-compatible)
	LiteLLMBaseURL string
	LiteLLMAPIKey  string
	LiteLLMModel   string

	// Optional backends, registered only when configured
	GeminiAPIKey string
	GeminiModel  string
	OllamaHost   string
	OllamaModel  string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Host:          getEnvOrDefault("HOST", "0.0.0.0"),
		Port:          getEnvOrDefault("PORT", "8000"),
		Env:           getEnvOrDefault("ENV", "development"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "*"),

		LiteLLMBaseURL: getEnvOrDefault("LITELLM_BASE_URL", "http://localhost:4000"),
		LiteLLMAPIKey:  getEnvOrDefault("LITELLM_API_KEY", ""),
		LiteLLMModel:   getEnvOrDefault("LITELLM_MODEL", "gpt-4o-mini"),

		GeminiAPIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		OllamaHost:   getEnvOrDefault("OLLAMA_HOST", ""),
		OllamaModel:  getEnvOrDefault("OLLAMA_MODEL", "llama3.1"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
