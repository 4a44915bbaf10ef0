package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// ProfileCommand returns the profile command definition and handler
func ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "profile",
		Description:  "View your stats & wallet",
		DMPermission: &guildOnly,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) || !deferResponse(s, i) {
			return
		}

		ctx, cancel := interactionContext()
		defer cancel()

		p, err := client.GetPlayer(ctx, getInteractionUser(i).ID, i.GuildID)
		if err != nil {
			slog.Error("Failed to get player", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := profileEmbed(p)
		embed.Footer = nil
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
