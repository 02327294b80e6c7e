package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURL    string
	CORSOrigins []string
}

// Load reads configuration from the environment, after picking up a
// local .env file when one exists. A missing MONGO_URL is fatal: the
// process cannot serve a single request without the store.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "5678"),
		MongoURL:    getEnv("MONGO_URL", ""),
		CORSOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
	}

	if cfg.MongoURL == "" {
		log.Fatal("MONGO_URL is required")
	}

	return cfg
}

// DefaultCORSOrigins matches the origins the deployed client calls from.
func DefaultCORSOrigins() []string {
	return []string{
		"http://localhost:3000",
		"https://sports-buddy-react-1.onrender.com",
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}
