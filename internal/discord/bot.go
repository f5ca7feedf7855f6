package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Client   *APIClient
	AppID    string
	GuildID  string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token    string
	AppID    string
	GuildID  string
	APIURL   string
	APIKey   string
	Language string
}

// New creates a new Discord bot with every default command registered
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	client := NewAPIClient(cfg.APIURL, cfg.APIKey)
	if cfg.Language != "" {
		client.Language = cfg.Language
	}

	registry := NewCommandRegistry()
	for _, factory := range DefaultCommands() {
		registry.Register(factory())
	}

	return &Bot{
		Session:  s,
		Client:   client,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: registry,
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

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

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.Registry.Handle(s, i, b.Client)
	case discordgo.InteractionApplicationCommandAutocomplete:
		HandleAutocomplete(s, i, b.Client)
	}
}
