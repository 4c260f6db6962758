package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port string
	Env  string

	GroqAPIKey string
	GroqAPIURL string
	Model      string

	EmailHost string
	EmailPort int
	EmailUser string
	EmailPass string

	MaxUploadBytes     int64
	MaxTranscriptChars int
}

func LoadConfig() (Config, error) {
	cfg := Config{}

	cfg.Port = envOrDefault("PORT", "5000")
	cfg.Env = envOrDefault("APP_ENV", EnvDevelopment)

	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	cfg.GroqAPIURL = envOrDefault("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions")
	cfg.Model = envOrDefault("AI_MODEL", "llama3-8b-8192")

	cfg.EmailHost = envOrDefault("EMAIL_HOST", "smtp.gmail.com")
	cfg.EmailUser = os.Getenv("EMAIL_USER")
	cfg.EmailPass = os.Getenv("EMAIL_PASS")

	emailPort, err := parseIntEnv("EMAIL_PORT", 587)
	if err != nil {
		return Config{}, fmt.Errorf("parse EMAIL_PORT: %w", err)
	}
	cfg.EmailPort = int(emailPort)

	maxUploadMB, err := parseIntEnv("MAX_UPLOAD_MB", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_UPLOAD_MB: %w", err)
	}
	cfg.MaxUploadBytes = maxUploadMB * 1024 * 1024

	maxChars, err := parseIntEnv("MAX_TRANSCRIPT_CHARS", 50000)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_TRANSCRIPT_CHARS: %w", err)
	}
	cfg.MaxTranscriptChars = int(maxChars)

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseIntEnv(key string, fallback int64) (int64, error) {
	value := envOrDefault(key, "")
	if value == "" {
		return fallback, nil
	}

	num, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	return num, nil
}
