// config/config.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is read once from the environment at startup.
type Config struct {
	Port           string
	DatabaseURL    string // empty: keep the document in DataFile instead
	DataFile       string
	RedisAddr      string // empty: notifications are stored but not published
	RedisPwd       string
	WebOrigin      string
	LoanPeriodDays int
}

// LoadEnv pulls a local .env file into the environment if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	days := 7
	if v := os.Getenv("LOAN_PERIOD_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}
	return Config{
		Port:           get("PORT", "5000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DataFile:       get("DATA_FILE", "database.json"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPwd:       os.Getenv("REDIS_PASSWORD"),
		WebOrigin:      get("WEB_ORIGIN", "http://localhost:8000"),
		LoanPeriodDays: days,
	}
}
