package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/RobNel12/newbot-ai/internal/config"
	"github.com/RobNel12/newbot-ai/internal/discord"
	"github.com/RobNel12/newbot-ai/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
	BotServiceName    = "newbot-ai-discord"
)

func main() {
	_ = godotenv.Load()

	setupLogger()

	if err := config.ValidateEnv(config.RequiredBotEnvVars); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	cfg := loadConfig()

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort), bot)
	httpServer.Start()
	defer httpServer.Stop()

	forceUpdate := os.Getenv("DISCORD_FORCE_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx, forceUpdate); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger configures structured logging to stdout
func setupLogger() {
	cfg := logger.NewConfig(
		getEnv("LOG_LEVEL", logger.LogLevelInfo),
		getEnv("LOG_FORMAT", logger.LogFormatText),
		BotServiceName,
		getEnv("VERSION", config.DefaultVersion),
		getEnv("ENVIRONMENT", logger.EnvironmentDev),
		false,
	)
	logger.InitLogger(cfg)
}

// loadConfig reads the bot configuration from the environment
func loadConfig() discord.Config {
	apiURL := getEnv("API_URL", DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	adminRole := os.Getenv("DISCORD_ADMIN_ROLE")
	if adminRole == "" {
		slog.Info("DISCORD_ADMIN_ROLE not set, admin commands require the Administrator permission")
	}

	return discord.Config{
		Token:     os.Getenv("DISCORD_TOKEN"),
		AppID:     os.Getenv("DISCORD_APP_ID"),
		APIURL:    apiURL,
		APIKey:    os.Getenv("API_KEY"),
		AdminRole: adminRole,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
