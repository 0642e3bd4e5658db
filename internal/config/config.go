package config

import (
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL string
	Port        string
	MaxPageSize int
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "kanban.db"),
		Port:        getEnv("PORT", "8080"),
		MaxPageSize: getEnvInt("MAX_PAGE_SIZE", 500),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
