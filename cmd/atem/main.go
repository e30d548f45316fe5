package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/whdzera/atem/internal/api"
	"github.com/whdzera/atem/internal/bot/discord"
	"github.com/whdzera/atem/internal/bot/telegram"
	"github.com/whdzera/atem/internal/bot/whatsapp"
	"github.com/whdzera/atem/internal/browse"
	"github.com/whdzera/atem/internal/config"
	"github.com/whdzera/atem/internal/lookup"
	"github.com/whdzera/atem/internal/match"
	"github.com/whdzera/atem/internal/services"
)

func main() {
	cfg := config.Load()

	// Load the card name corpus for local fuzzy matching
	index, err := match.LoadIndex(cfg.CorpusPath)
	if err != nil {
		log.Fatalf("Failed to load card name corpus: %v", err)
	}
	log.Printf("Loaded %d card names from %s", index.Len(), cfg.CorpusPath)

	// Initialize services
	cards := services.NewYGOProDeckService()
	gemini := services.NewGeminiService()
	resolver := lookup.NewResolver(index, cards)

	store := browse.NewStore(cfg.PageSize, cfg.SessionTimeout)

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sweep abandoned browse sessions in the background
	go store.Janitor(ctx)

	var platforms []string

	var discordBot *discord.Bot
	if cfg.DiscordToken != "" {
		discordBot, err = discord.New(cfg.DiscordToken, resolver, cards, store, cfg.DiscordGuildID, cfg.MaxResults, cfg.ReactDelay)
		if err != nil {
			log.Fatalf("Failed to initialize Discord bot: %v", err)
		}
		if err := discordBot.Start(ctx); err != nil {
			log.Fatalf("Failed to start Discord bot: %v", err)
		}
		platforms = append(platforms, "discord")
	} else {
		log.Println("DISCORD_TOKEN not set, Discord bot disabled")
	}

	if cfg.TelegramToken != "" {
		telegramBot, err := telegram.New(cfg.TelegramToken, resolver, cards, store, cfg.MaxResults)
		if err != nil {
			log.Fatalf("Failed to initialize Telegram bot: %v", err)
		}
		if err := telegramBot.Start(ctx); err != nil {
			log.Fatalf("Failed to start Telegram bot: %v", err)
		}
		platforms = append(platforms, "telegram")
	} else {
		log.Println("TELEGRAM_TOKEN not set, Telegram bot disabled")
	}

	// WhatsApp runs through an external gateway process; the engine
	// answers its webhook and replies over HTTP.
	var waEngine *whatsapp.Engine
	if cfg.WhatsAppGatewayURL != "" {
		transport := whatsapp.NewGatewayTransport(cfg.WhatsAppGatewayURL)
		waEngine = whatsapp.NewEngine(transport, resolver, cards, gemini, cfg.WhatsAppMaxResults)
		platforms = append(platforms, "whatsapp")
		log.Printf("WhatsApp gateway bridge enabled (%s)", cfg.WhatsAppGatewayURL)
	} else {
		log.Println("WHATSAPP_GATEWAY_URL not set, WhatsApp bridge disabled")
	}

	// Setup status server
	router := api.SetupRouter(index, store, platforms, waEngine)

	srv := &http.Server{
		Addr:    ":" + cfg.StatusPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting status server on port %s", cfg.StatusPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start status server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	cancel()

	if discordBot != nil {
		discordBot.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Status server forced to shutdown: %v", err)
	}

	log.Println("Bot exited")
}
