package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aaronzipp/undercover/internal/config"
	"github.com/aaronzipp/undercover/internal/game"
	"github.com/aaronzipp/undercover/internal/handlers"
	"github.com/aaronzipp/undercover/internal/middleware"
	"github.com/aaronzipp/undercover/internal/sse"
	"github.com/aaronzipp/undercover/internal/store"
	"github.com/aaronzipp/undercover/internal/wordbank"
)

func main() {
	cfg := config.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	var words wordbank.Bank
	if cfg.WordPairsFile != "" {
		bank, err := wordbank.LoadFile(cfg.WordPairsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.WordPairsFile).Msg("failed to load word pairs")
		}
		log.Info().Int("pairs", bank.Len()).Str("file", cfg.WordPairsFile).Msg("loaded word pairs")
		words = bank
	} else {
		words = wordbank.Seed()
	}

	broker := sse.NewBroker(log)
	service := game.NewService(store.NewMemoryStore(), words, cfg.DefaultSettings, broker, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(limiter.Middleware())

	api := &handlers.API{
		Service: service,
		Broker:  broker,
		BaseURL: cfg.BaseURL,
		Log:     log,
	}
	api.Register(router)

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
