package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	name := i.ApplicationCommandData().Name
	if h, ok := r.Handlers[name]; ok {
		RecordCommand()
		h(s, i, client)
		return
	}
	slog.Warn("Unknown command", "command", name)
}

// DefaultCommands returns every command the bot serves
func DefaultCommands() []func() (*discordgo.ApplicationCommand, CommandHandler) {
	return []func() (*discordgo.ApplicationCommand, CommandHandler){
		PingCommand,
		ItemCommand,
		RecycleCommand,
		SourcesCommand,
		QuestCommand,
	}
}

// RegisterCommands registers the commands with Discord, skipping the update when the
// registered set already matches. An empty guild registers global commands.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...", "guild", b.GuildID)

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if !forceUpdate && commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Updating commands", "existing", len(existingCmds), "desired", len(desiredCmds), "forced", forceUpdate)
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := byName[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description || len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}
	return true
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// optionMap indexes the command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return ""
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def int) int {
	if o, ok := opts[name]; ok {
		return int(o.IntValue())
	}
	return def
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError maps an API failure to a readable message
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, notFound string) {
	respondError(s, i, formatFriendlyError(err, notFound))
}

func formatFriendlyError(err error, notFound string) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return MsgAPIUnavailable
	}
	switch {
	case apiErr.StatusCode == http.StatusNotFound:
		return notFound
	case apiErr.StatusCode == http.StatusBadRequest && apiErr.Message != "":
		return MsgBadInput + "\n" + apiErr.Message
	case apiErr.StatusCode >= 500:
		return MsgAPIUnavailable
	case apiErr.Message != "":
		return "❌ " + apiErr.Message
	default:
		return MsgGenericError
	}
}

// createEmbed creates an embed with the standard footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: truncate(description, maxDescriptionChars),
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterDefault,
		},
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// resolveItemID accepts an item id picked from autocomplete or free text, which is
// resolved through the fuzzy search
func resolveItemID(client *APIClient, input string) (string, error) {
	item, err := client.GetItem(input)
	if err == nil {
		return item.ID, nil
	}
	if !IsNotFound(err) {
		return "", err
	}

	matches, err := client.SearchItems(input, 1)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", &APIError{StatusCode: http.StatusNotFound}
	}
	return matches[0].Item.ID, nil
}
