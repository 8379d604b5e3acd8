package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string

	// Client side
	APIBaseURL string
	APIToken   string

	// Assistant
	GeminiAPIKey string
	GeminiModel  string

	// Identity gate; empty disables the check (dev mode)
	AllowedEmail string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:         getenv("PORT", "8080"),
		DatabaseDSN:  getenv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=jobgrid port=5432 sslmode=disable"),
		APIBaseURL:   getenv("API_URL", "http://localhost:8080"),
		APIToken:     os.Getenv("API_TOKEN"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		AllowedEmail: os.Getenv("ALLOWED_EMAIL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
