package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "inventory",
		Description:  "View your items",
		DMPermission: &guildOnly,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) || !deferResponse(s, i) {
			return
		}

		ctx, cancel := interactionContext()
		defer cancel()

		items, err := client.GetInventory(ctx, getInteractionUser(i).ID, i.GuildID)
		if err != nil {
			slog.Error("Failed to get inventory", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, inventoryEmbed(items))
	}

	return cmd, handler
}
