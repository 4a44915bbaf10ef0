package discord

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// ActivityDef describes a slash command that runs one engine activity
type ActivityDef struct {
	Name        string
	Description string
}

var activityCommands = []ActivityDef{
	{Name: domain.ActivityMine, Description: "Work the mine for a few coins (60s cooldown)"},
	{Name: domain.ActivityTrain, Description: "Pay 15 coins to raise a random stat (45s cooldown)"},
	{Name: domain.ActivityRoll, Description: "Bet 10 coins on a d20 roll (10s cooldown)"},
	{Name: domain.ActivityCoinflip, Description: "Bet 10 coins on a coinflip (10s cooldown)"},
	{Name: domain.ActivityAdventure, Description: "Face an AI-generated encounter (60s cooldown)"},
}

// ActivityCommand returns the slash command for one activity
func ActivityCommand(def ActivityDef) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         def.Name,
		Description:  def.Description,
		DMPermission: &guildOnly,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) || !deferResponse(s, i) {
			return
		}

		ctx, cancel := interactionContext()
		defer cancel()

		embed, err := resolveActivity(ctx, client, getInteractionUser(i).ID, i.GuildID, def.Name)
		if err != nil {
			slog.Error("Activity failed", "activity", def.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// resolveActivity runs an activity and renders its outcome. Cooldowns and
// missing coins are outcomes with their own embeds, not errors.
func resolveActivity(ctx context.Context, client *APIClient, userID, guildID, activity string) (*discordgo.MessageEmbed, error) {
	res, err := client.Perform(ctx, userID, guildID, activity)
	if err == nil {
		return activityEmbed(res), nil
	}

	apiErr, ok := asAPIError(err)
	if !ok {
		return nil, err
	}
	switch {
	case apiErr.IsCooldown():
		return cooldownEmbed(activity, retrySeconds(apiErr)), nil
	case apiErr.Status == http.StatusBadRequest && apiErr.Message == MsgInsufficientFunds:
		return fundsEmbed(activity), nil
	}
	return nil, err
}

// retrySeconds rounds the engine's remaining cooldown to whole seconds, at least 1
func retrySeconds(e *APIError) int {
	secs := int(e.RetryAfter.Seconds())
	if secs < 1 {
		return 1
	}
	return secs
}
