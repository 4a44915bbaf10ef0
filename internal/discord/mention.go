package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// DefaultMentionPrompt is sent to the storyteller when a mention has no text
const DefaultMentionPrompt = "Say something in character."

// MaxMessageLength is Discord's limit on message content
const MaxMessageLength = 2000

// MentionIntents are the gateway intents mention replies need on top of
// IntentsGuilds. Message content is privileged and must be enabled for the app.
const MentionIntents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State == nil || s.State.User == nil {
		return
	}
	replyToMention(s, m.Message, b.Client, s.State.User.ID)
}

// replyToMention answers a message that mentions botID through the storyteller.
// Messages from bots and messages without the mention are ignored.
func replyToMention(s *discordgo.Session, m *discordgo.Message, client *APIClient, botID string) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}
	prompt, ok := mentionPrompt(m, botID)
	if !ok {
		return
	}
	RecordCommand("mention")

	ctx, cancel := interactionContext()
	defer cancel()

	reply, err := client.Chat(ctx, prompt)
	if err != nil {
		slog.Warn("Mention reply failed", "error", err, "channel_id", m.ChannelID)
		reply = formatFriendlyError(err)
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, truncateMessage(reply), m.Reference()); err != nil {
		slog.Error("Failed to send mention reply", "error", err, "channel_id", m.ChannelID)
	}
}

// mentionPrompt strips the bot's mention from the message. ok is false when
// the bot is not mentioned.
func mentionPrompt(m *discordgo.Message, botID string) (prompt string, ok bool) {
	for _, u := range m.Mentions {
		if u != nil && u.ID == botID {
			ok = true
			break
		}
	}
	if !ok {
		return "", false
	}

	prompt = strings.NewReplacer("<@"+botID+">", "", "<@!"+botID+">", "").Replace(m.Content)
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = DefaultMentionPrompt
	}
	return truncateRunes(prompt, MaxPromptLength), true
}

func truncateMessage(s string) string {
	if len([]rune(s)) <= MaxMessageLength {
		return s
	}
	return truncateRunes(s, MaxMessageLength-1) + "…"
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
