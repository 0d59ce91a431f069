package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Env              string
	DBPath           string
	CORSOrigins      string
	MaxNotesPerTable int
	SeedOnStart      bool
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:             GetEnv("PORT", "8000"),
		Env:              GetEnv("ENV", "development"),
		DBPath:           GetEnv("DB_PATH", "./data/bilhetinho.db"),
		CORSOrigins:      GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		MaxNotesPerTable: GetEnvInt("MAX_NOTES_PER_TABLE", 10),
		SeedOnStart:      GetEnv("SEED_ON_START", "true") != "false",
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
