package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/clanfrenzy/frenzybot/internal/discord"
)

// DefaultAPIURL is used when API_URL is not set.
const DefaultAPIURL = "http://localhost:8080"

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	// Load .env file
	_ = godotenv.Load()

	// Setup logging
	setupLogger()

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Create bot
	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	// Register all commands
	registerCommands(bot, getCommandFactories(bot))

	// Register with Discord API
	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	// Run bot
	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger configures structured logging to stdout.
func setupLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)
}

// loadConfig loads and validates Discord bot configuration from environment variables.
// Returns error if required variables are missing.
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	reviewChannelID := os.Getenv("REVIEW_CHANNEL_ID")
	if reviewChannelID == "" {
		return discord.Config{}, errors.New("REVIEW_CHANNEL_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	reviewerRoleID := os.Getenv("REVIEWER_ROLE_ID")
	if reviewerRoleID == "" {
		slog.Warn("REVIEWER_ROLE_ID not set, anyone can decide submissions")
	}

	teams := splitList(os.Getenv("TEAMS"))
	if len(teams) == 0 {
		teams = []string{"ironfoundry", "ironclad"}
	}

	return discord.Config{
		Token:           token,
		AppID:           appID,
		APIURL:          apiURL,
		APIKey:          apiKey,
		ReviewChannelID: reviewChannelID,
		ReviewerRoleID:  reviewerRoleID,
		Teams:           teams,
	}, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getCommandFactories returns a list of all available Discord command factories.
// This provides a single place to see and manage all registered commands.
func getCommandFactories(bot *discord.Bot) []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		bot.SubmitCommand,
		bot.StatusCommand,
		bot.TeamCommand,
		bot.MultipliersCommand,
		bot.LeaderboardCommand,
	}
}

// registerCommands registers all commands from the factories with the bot.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		bot.Registry.Register(factory())
	}
}
