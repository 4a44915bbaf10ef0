package discord

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/bwmarrin/discordgo"
)

var adminPermission = int64(discordgo.PermissionAdministrator)

// isAdmin reports whether the invoking member may run admin commands: they hold
// adminRole, or Administrator when no role is configured.
func isAdmin(i *discordgo.InteractionCreate, adminRole string) bool {
	if i.Member == nil {
		return false
	}
	if adminRole != "" {
		return slices.Contains(i.Member.Roles, adminRole)
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// ResetCommand restores one player to defaults (admin only)
func ResetCommand(adminRole string) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rpg-reset",
		Description: "[ADMIN] Reset a player to starting stats and empty their inventory",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Player to reset",
				Required:    true,
			},
		},
		DefaultMemberPermissions: &adminPermission,
		DMPermission:             &guildOnly,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) {
			return
		}
		if !isAdmin(i, adminRole) {
			respondEphemeral(s, i, MsgAdminOnly)
			return
		}
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, "Pick a player to reset.")
			return
		}
		target := options[0].UserValue(nil)

		ctx, cancel := interactionContext()
		defer cancel()

		if _, err := client.ResetPlayer(ctx, target.ID, i.GuildID); err != nil {
			slog.Error("Failed to reset player", "target", target.ID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		slog.Info("Admin reset player", "admin", getInteractionUser(i).ID, "target", target.ID, "guild", i.GuildID)
		sendEmbed(s, i, createEmbed(TitlePlayerReset,
			fmt.Sprintf("<@%s> is back to starting stats with an empty pack.", target.ID),
			ColorGrey, FooterAdminAction))
	}

	return cmd, handler
}

// ResetAllCommand restores every player of the guild (admin only)
func ResetAllCommand(adminRole string) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "rpg-reset-all",
		Description:              "[ADMIN] Reset every player in this server",
		DefaultMemberPermissions: &adminPermission,
		DMPermission:             &guildOnly,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) {
			return
		}
		if !isAdmin(i, adminRole) {
			respondEphemeral(s, i, MsgAdminOnly)
			return
		}
		if !deferResponse(s, i) {
			return
		}

		ctx, cancel := interactionContext()
		defer cancel()

		res, err := client.ResetGuild(ctx, i.GuildID)
		if err != nil {
			slog.Error("Failed to reset guild", "guild", i.GuildID, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		slog.Info("Admin reset guild", "admin", getInteractionUser(i).ID, "guild", i.GuildID, "players", res.Players)
		sendEmbed(s, i, createEmbed(TitleGuildReset,
			fmt.Sprintf("Reset **%d** players to starting stats.", res.Players),
			ColorGrey, FooterAdminAction))
	}

	return cmd, handler
}
