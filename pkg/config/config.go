package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	TokenSecret     string
	TokenIssuer     string
	TokenTTLMinutes int

	AnalysisTTLMinutes int
	MaxUploadMB        int

	QuestionCap          int
	QuestionAllowRepeats bool

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8080"),

		TokenSecret:     getEnv("TOKEN_SECRET", "dev-secret-change"),
		TokenIssuer:     getEnv("TOKEN_ISSUER", "ai-interviewer"),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", 60),

		AnalysisTTLMinutes: getEnvInt("ANALYSIS_TTL_MINUTES", 60),
		MaxUploadMB:        getEnvInt("MAX_UPLOAD_MB", 15),

		QuestionCap:          getEnvInt("QUESTION_CAP", 8),
		QuestionAllowRepeats: getEnvBool("QUESTION_ALLOW_REPEATS", false),

		LogJSON:  getEnvBool("LOG_JSON", true),
		LogDebug: getEnvBool("LOG_DEBUG", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
