package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application settings loaded from environment.
type Config struct {
	Port        string
	DBPath      string
	SeedPath    string
	CORSOrigins []string
}

// LoadConfig reads configuration from environment, with optional .env file.
func LoadConfig() Config {
	_ = godotenv.Load() // .env

	return Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "topcit.db"),
		SeedPath:    getEnv("SEED_PATH", "data/quizzes.json"),
		CORSOrigins: splitTrim(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitTrim(s, sep string) []string {
	var out []string
	for _, v := range strings.Split(s, sep) {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
