package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// MaxPromptLength mirrors the engine's prompt validation
const MaxPromptLength = 2000

// ChatCommand asks the storyteller a free-form question
func ChatCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "chat",
		Description: "Ask the storyteller anything",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "prompt",
				Description: "What do you want to say?",
				Required:    true,
				MaxLength:   MaxPromptLength,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		options := getOptions(i)
		if len(options) == 0 || options[0].StringValue() == "" {
			respondError(s, i, "Say something first.")
			return
		}

		ctx, cancel := interactionContext()
		defer cancel()

		reply, err := client.Chat(ctx, options[0].StringValue())
		if err != nil {
			slog.Warn("Chat failed", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		sendEmbed(s, i, createEmbed(TitleStoryteller, reply, ColorBlurple, ""))
	}

	return cmd, handler
}
