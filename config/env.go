package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	Port           string
	AllowedOrigins []string
	GinMode        string
	Debug          bool
	BotMoveDelay   time.Duration
}

// Load reads a local .env when present and falls back to real environment
// variables, with defaults that match local development.
func Load() Env {
	godotenv.Load()

	env := Env{
		Port:         getEnv("PORT", "3001"),
		GinMode:      getEnv("GIN_MODE", ""),
		Debug:        getEnv("DEBUG", "") == "true",
		BotMoveDelay: 1500 * time.Millisecond,
	}
	if d, err := time.ParseDuration(getEnv("BOT_MOVE_DELAY", "")); err == nil {
		env.BotMoveDelay = d
	}
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.AllowedOrigins = append(env.AllowedOrigins, o)
		}
	}
	return env
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
