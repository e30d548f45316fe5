// Package config resolves bot configuration from the environment,
// with an optional .env file for local runs.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken       string
	DiscordGuildID     string
	TelegramToken      string
	WhatsAppGatewayURL string

	CorpusPath string

	PageSize           int
	MaxResults         int
	WhatsAppMaxResults int
	SessionTimeout     time.Duration
	ReactDelay         time.Duration

	StatusPort string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return Config{
		DiscordToken:       os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID:     os.Getenv("DISCORD_GUILD_ID"),
		TelegramToken:      os.Getenv("TELEGRAM_TOKEN"),
		WhatsAppGatewayURL: os.Getenv("WHATSAPP_GATEWAY_URL"),

		CorpusPath: envString("CORPUS_PATH", "data/ygo.json"),

		PageSize:           envInt("PAGE_SIZE", 10),
		MaxResults:         envInt("MAX_RESULTS", 30),
		WhatsAppMaxResults: envInt("WHATSAPP_MAX_RESULTS", 20),
		SessionTimeout:     envSeconds("SESSION_TIMEOUT_SECONDS", 300),
		ReactDelay:         envMillis("REACT_DELAY_MS", 500),

		StatusPort: envString("PORT", "8080"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("Ignoring invalid %s=%q", key, v)
	}
	return fallback
}

func envSeconds(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Second
}

func envMillis(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Millisecond
}
