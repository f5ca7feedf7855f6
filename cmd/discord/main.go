package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/RaidCompanion_Go/internal/config"
	"github.com/osse101/RaidCompanion_Go/internal/discord"
	"github.com/osse101/RaidCompanion_Go/internal/logger"
)

// DefaultHealthPort serves the bot's /healthz and /metrics
const DefaultHealthPort = "8082"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "raidcompanion-discord", cfg.Version, cfg.Environment))

	if err := cfg.ValidateDiscord(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if cfg.APIKey == "" {
		slog.Warn("API_KEY not set, requests are sent unauthenticated")
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:    cfg.DiscordToken,
		AppID:    cfg.DiscordAppID,
		GuildID:  cfg.DiscordGuildID,
		APIURL:   cfg.APIURL,
		APIKey:   cfg.APIKey,
		Language: cfg.DefaultLanguage,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	if err := bot.Start(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
	defer bot.Stop()

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("Shutting down Discord bot")
}
