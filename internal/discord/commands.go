package discord

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// InteractionTimeout bounds the engine calls made for one interaction
const InteractionTimeout = 60 * time.Second

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// ComponentHandler handles a button press or select menu choice on an /rpg view.
// The registry has already checked that the presser owns the view.
type ComponentHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, id ComponentID)

// CommandRegistry holds the registered commands and view components
type CommandRegistry struct {
	Commands   map[string]*discordgo.ApplicationCommand
	Handlers   map[string]CommandHandler
	Components map[string]ComponentHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands:   make(map[string]*discordgo.ApplicationCommand),
		Handlers:   make(map[string]CommandHandler),
		Components: make(map[string]ComponentHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// RegisterComponent routes component custom IDs with the given action
func (r *CommandRegistry) RegisterComponent(action string, handler ComponentHandler) {
	r.Components[action] = handler
}

// Handle processes a slash command interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		slog.Warn("Unknown command", "command", name)
		return
	}
	RecordCommand(name)
	h(s, i, client)
}

// HandleComponent processes a button or select interaction on an /rpg view
func (r *CommandRegistry) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	id, err := ParseComponentID(i.MessageComponentData().CustomID)
	if err != nil {
		slog.Warn("Unroutable component", "custom_id", i.MessageComponentData().CustomID, "error", err)
		return
	}

	h, ok := r.Components[id.Action]
	if !ok {
		slog.Warn("Unknown component action", "action", id.Action)
		return
	}

	if getInteractionUser(i).ID != id.Owner {
		respondEphemeral(s, i, MsgNotYourMenu)
		return
	}

	RecordCommand(ComponentPrefix + ":" + id.Action)
	h(s, i, client, id)
}

// RegisterAll registers every slash command and view component
func RegisterAll(r *CommandRegistry, adminRole string) {
	r.Register(RPGCommand())
	r.Register(ProfileCommand())
	r.Register(InventoryCommand())
	r.Register(ShopCommand())
	r.Register(BuyCommand())
	for _, a := range activityCommands {
		r.Register(ActivityCommand(a))
	}
	r.Register(ChatCommand())
	r.Register(ResetCommand(adminRole))
	r.Register(ResetAllCommand(adminRole))

	registerRPGComponents(r)
}

// RegisterCommands registers or updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info("Commands force updated successfully")
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Commands changed, updating...",
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
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

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, d := range desired {
		e, ok := existingMap[d.Name]
		if !ok || !commandEqual(e, d) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	if (a.DefaultMemberPermissions == nil) != (b.DefaultMemberPermissions == nil) {
		return false
	}
	if a.DefaultMemberPermissions != nil && *a.DefaultMemberPermissions != *b.DefaultMemberPermissions {
		return false
	}

	if len(a.Options) != len(b.Options) {
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
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if !floatPtrEqual(a.MinValue, b.MinValue) || a.MaxValue != b.MaxValue || a.MaxLength != b.MaxLength {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// interactionContext returns the context engine calls for one interaction run under
func interactionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), InteractionTimeout)
}

// deferResponse acknowledges a slash command with a deferred message.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// deferUpdate acknowledges a component interaction; the view is edited in place later
func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		slog.Error("Failed to send deferred update", "error", err)
		return false
	}
	return true
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// requireGuild answers slash commands used outside a server. Returns false when
// the handler should stop.
func requireGuild(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.GuildID != "" {
		return true
	}
	respondEphemeral(s, i, MsgGuildOnly)
	return false
}

// respondError replaces a deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError turns an engine error into a readable message
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// respondEphemeral answers immediately with a message only the presser sees
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to send ephemeral response", "error", err)
	}
}

// followupEphemeral sends a message only the presser sees after a deferral
func followupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		slog.Error("Failed to send ephemeral followup", "error", err)
	}
}

// formatFriendlyError maps engine failures onto player-facing text
func formatFriendlyError(err error) string {
	apiErr, ok := asAPIError(err)
	if !ok {
		return MsgServerUnreachable
	}

	switch {
	case apiErr.IsCooldown():
		if apiErr.RetryAfter > 0 {
			return fmt.Sprintf("%s\nWait for: **%ds**", MsgCooldownActive, int(apiErr.RetryAfter.Seconds()))
		}
		return MsgCooldownActive
	case apiErr.Status == http.StatusServiceUnavailable, apiErr.Status == http.StatusBadGateway:
		return MsgStorytellerAway
	case apiErr.Status == http.StatusNotFound && strings.Contains(strings.ToLower(apiErr.Message), "player"):
		return MsgPlayerNotFound
	case apiErr.Status >= http.StatusInternalServerError:
		return MsgGenericError
	case apiErr.Message != "":
		return apiErr.Message
	default:
		return MsgGenericError
	}
}

// sendEmbed replaces a deferred response with a single embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	sendView(s, i, embed, nil)
}

// sendView replaces the deferred response or message with an embed and its
// components. A nil component slice clears the components.
func sendView(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}
