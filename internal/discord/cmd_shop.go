package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

var (
	minSlot = 1.0
	maxSlot = float64(ShopButtons)
)

// ShopCommand shows today's rotating stock
func ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "shop",
		Description:  "Browse today's AI-rotating stock",
		DMPermission: &guildOnly,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) || !deferResponse(s, i) {
			return
		}

		ctx, cancel := interactionContext()
		defer cancel()

		shop, err := client.GetShop(ctx, getInteractionUser(i).ID, i.GuildID)
		if err != nil {
			slog.Error("Failed to get shop", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, shopEmbed(shop.Items, coinsOf(shop)))
	}

	return cmd, handler
}

// BuyCommand purchases one item from today's shop by slot number
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "buy",
		Description:  "Buy an item from today's shop",
		DMPermission: &guildOnly,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "slot",
				Description: "Shop slot number",
				Required:    true,
				MinValue:    &minSlot,
				MaxValue:    maxSlot,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) || !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 {
			respondError(s, i, MsgSlotEmpty)
			return
		}
		slot := int(options[0].IntValue())

		ctx, cancel := interactionContext()
		defer cancel()

		res, err := client.Buy(ctx, getInteractionUser(i).ID, i.GuildID, slot)
		if err != nil {
			slog.Warn("Purchase failed", "slot", slot, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, purchaseEmbed(res))
	}

	return cmd, handler
}
