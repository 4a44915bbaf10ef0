package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// APIPrefix is appended to the engine URL to reach the versioned routes
const APIPrefix = "/api/v1"

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	Registry *CommandRegistry

	apiURL string
}

// Config holds the bot configuration
type Config struct {
	Token     string
	AppID     string
	APIURL    string
	APIKey    string
	AdminRole string
}

// New creates a new Discord bot with every command registered
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | MentionIntents

	apiURL := strings.TrimRight(cfg.APIURL, "/")
	b := &Bot{
		Session:  s,
		Client:   NewAPIClient(apiURL+APIPrefix, cfg.APIKey),
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
		apiURL:   apiURL,
	}
	RegisterAll(b.Registry, cfg.AdminRole)
	return b, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Failed to close Discord session", "error", err)
	}
}

// Run connects, syncs slash commands and serves interactions until ctx is cancelled
func (b *Bot) Run(ctx context.Context, forceUpdate bool) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	// Don't exit: the bot still works if commands are already registered
	if err := b.RegisterCommands(b.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
	}

	<-ctx.Done()
	slog.Info("Shutting down Discord bot")
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry == nil {
		return
	}
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.Registry.Handle(s, i, b.Client)
	case discordgo.InteractionMessageComponent:
		b.Registry.HandleComponent(s, i, b.Client)
	}
}
