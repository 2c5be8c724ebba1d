// Package config loads server configuration from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aaronzipp/undercover/internal/models"
)

// Config holds everything main needs to wire the server
type Config struct {
	Addr          string
	BaseURL       string
	WordPairsFile string
	AllowedOrigin string

	RateLimitRPS   float64
	RateLimitBurst int

	Debug bool

	// DefaultSettings seed every newly created room
	DefaultSettings models.Settings
}

// Load reads the environment, falling back to defaults. A missing .env file
// is not an error.
func Load() Config {
	_ = godotenv.Load()

	defaults := models.DefaultSettings()
	defaults.MinPlayers = getInt("DEFAULT_MIN_PLAYERS", defaults.MinPlayers)
	defaults.MaxPlayers = getInt("DEFAULT_MAX_PLAYERS", defaults.MaxPlayers)
	defaults.UndercoverCount = getInt("DEFAULT_UNDERCOVER_COUNT", defaults.UndercoverCount)
	defaults.DescriptionSeconds = getInt("DEFAULT_DESCRIPTION_SECONDS", defaults.DescriptionSeconds)
	defaults.VotingSeconds = getInt("DEFAULT_VOTING_SECONDS", defaults.VotingSeconds)

	return Config{
		Addr:            getString("ADDR", ":8080"),
		BaseURL:         getString("BASE_URL", "http://localhost:8080"),
		WordPairsFile:   getString("WORD_PAIRS_FILE", ""),
		AllowedOrigin:   getString("ALLOWED_ORIGIN", "*"),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 20),
		Debug:           os.Getenv("DEBUG") != "",
		DefaultSettings: defaults,
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
