package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// ComponentPrefix marks custom IDs that belong to /rpg views
const ComponentPrefix = "rpg"

// Component actions
const (
	ActionMenu     = "menu"
	ActionBuy      = "buy"
	ActionTrain    = "train"
	ActionRoll     = "roll"
	ActionCoinflip = "coinflip"
	ActionBack     = "back"
)

// Main menu choices
const (
	ChoiceProfile   = "profile"
	ChoiceInventory = "inventory"
	ChoiceShop      = "shop"
	ChoiceTrain     = "train"
	ChoiceMine      = "mine"
	ChoiceGamble    = "gamble"
	ChoiceAdventure = "adventure"
)

// ShopButtons is the number of buy buttons under the shop
const ShopButtons = 5

var guildOnly = false

var errBadComponentID = errors.New("malformed component id")

// ComponentID is the parsed custom ID of an /rpg view component. Owner is the
// user who opened the view; only they may use it.
type ComponentID struct {
	Action string
	Owner  string
	Arg    string
}

// String encodes the ID as "rpg:<action>:<owner>[:<arg>]"
func (c ComponentID) String() string {
	s := ComponentPrefix + ":" + c.Action + ":" + c.Owner
	if c.Arg != "" {
		s += ":" + c.Arg
	}
	return s
}

// ParseComponentID decodes a custom ID produced by ComponentID.String
func ParseComponentID(customID string) (ComponentID, error) {
	parts := strings.Split(customID, ":")
	if len(parts) < 3 || len(parts) > 4 || parts[0] != ComponentPrefix || parts[1] == "" || parts[2] == "" {
		return ComponentID{}, fmt.Errorf("%w: %q", errBadComponentID, customID)
	}
	id := ComponentID{Action: parts[1], Owner: parts[2]}
	if len(parts) == 4 {
		id.Arg = parts[3]
	}
	return id, nil
}

// RPGCommand opens the menu-driven game view
func RPGCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:         "rpg",
		Description:  "Open the AI-powered RPG menu (shop, training, mine, gambling, adventure).",
		DMPermission: &guildOnly,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !requireGuild(s, i) || !deferResponse(s, i) {
			return
		}

		ctx, cancel := interactionContext()
		defer cancel()

		user := getInteractionUser(i)
		p, err := client.GetPlayer(ctx, user.ID, i.GuildID)
		if err != nil {
			slog.Error("Failed to load player", "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		sendView(s, i, profileEmbed(p), mainMenu(user.ID))
	}

	return cmd, handler
}

func registerRPGComponents(r *CommandRegistry) {
	r.RegisterComponent(ActionMenu, handleMenuChoice)
	r.RegisterComponent(ActionBuy, handleBuyButton)
	r.RegisterComponent(ActionTrain, activityButton(domain.ActivityTrain, trainMenu))
	r.RegisterComponent(ActionRoll, activityButton(domain.ActivityRoll, gambleMenu))
	r.RegisterComponent(ActionCoinflip, activityButton(domain.ActivityCoinflip, gambleMenu))
	r.RegisterComponent(ActionBack, handleBack)
}

func mainMenu(owner string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    ComponentID{Action: ActionMenu, Owner: owner}.String(),
				Placeholder: "Choose an activity…",
				Options: []discordgo.SelectMenuOption{
					{Label: "Profile", Value: ChoiceProfile, Description: "View your stats & wallet", Emoji: &discordgo.ComponentEmoji{Name: "🧙"}},
					{Label: "Inventory", Value: ChoiceInventory, Description: "Your items", Emoji: &discordgo.ComponentEmoji{Name: "🎒"}},
					{Label: "Shop", Value: ChoiceShop, Description: "AI-rotating stock", Emoji: &discordgo.ComponentEmoji{Name: "🛒"}},
					{Label: "Training Ring", Value: ChoiceTrain, Description: "Boost a stat", Emoji: &discordgo.ComponentEmoji{Name: "🥊"}},
					{Label: "Mine / Work", Value: ChoiceMine, Description: "Earn wages", Emoji: &discordgo.ComponentEmoji{Name: "⛏️"}},
					{Label: "Gambling", Value: ChoiceGamble, Description: "d20 / coinflip", Emoji: &discordgo.ComponentEmoji{Name: "🎲"}},
					{Label: "Adventure", Value: ChoiceAdventure, Description: "AI encounter", Emoji: &discordgo.ComponentEmoji{Name: "🗺️"}},
				},
			},
		}},
	}
}

func backButton(owner string) discordgo.Button {
	return discordgo.Button{
		Label:    "Back",
		Style:    discordgo.SecondaryButton,
		CustomID: ComponentID{Action: ActionBack, Owner: owner}.String(),
	}
}

func shopMenu(owner string) []discordgo.MessageComponent {
	buys := make([]discordgo.MessageComponent, 0, ShopButtons)
	for slot := 1; slot <= ShopButtons; slot++ {
		buys = append(buys, discordgo.Button{
			Label:    fmt.Sprintf("Buy #%d", slot),
			Style:    discordgo.SuccessButton,
			CustomID: ComponentID{Action: ActionBuy, Owner: owner, Arg: strconv.Itoa(slot)}.String(),
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buys},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{backButton(owner)}},
	}
}

func trainMenu(owner string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    fmt.Sprintf("Train (%dc)", TrainCost),
				Style:    discordgo.PrimaryButton,
				CustomID: ComponentID{Action: ActionTrain, Owner: owner}.String(),
			},
			backButton(owner),
		}},
	}
}

func gambleMenu(owner string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    fmt.Sprintf("Roll d20 (%dc)", GambleCost),
				Style:    discordgo.PrimaryButton,
				CustomID: ComponentID{Action: ActionRoll, Owner: owner}.String(),
			},
			discordgo.Button{
				Label:    fmt.Sprintf("Coinflip (%dc)", GambleCost),
				Style:    discordgo.PrimaryButton,
				CustomID: ComponentID{Action: ActionCoinflip, Owner: owner}.String(),
			},
			backButton(owner),
		}},
	}
}

func handleMenuChoice(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, id ComponentID) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return
	}
	choice := values[0]

	// Static screens answer without an engine round trip
	switch choice {
	case ChoiceTrain:
		updateView(s, i, trainingRingEmbed(), trainMenu(id.Owner))
		return
	case ChoiceGamble:
		updateView(s, i, gamblingHallEmbed(), gambleMenu(id.Owner))
		return
	}

	if !deferUpdate(s, i) {
		return
	}
	ctx, cancel := interactionContext()
	defer cancel()

	switch choice {
	case ChoiceProfile:
		p, err := client.GetPlayer(ctx, id.Owner, i.GuildID)
		if err != nil {
			componentFailure(s, i, choice, err)
			return
		}
		sendView(s, i, profileEmbed(p), mainMenu(id.Owner))

	case ChoiceInventory:
		items, err := client.GetInventory(ctx, id.Owner, i.GuildID)
		if err != nil {
			componentFailure(s, i, choice, err)
			return
		}
		sendView(s, i, inventoryEmbed(items), mainMenu(id.Owner))

	case ChoiceShop:
		shop, err := client.GetShop(ctx, id.Owner, i.GuildID)
		if err != nil {
			componentFailure(s, i, choice, err)
			return
		}
		sendView(s, i, shopEmbed(shop.Items, coinsOf(shop)), shopMenu(id.Owner))

	case ChoiceMine, ChoiceAdventure:
		embed, err := resolveActivity(ctx, client, id.Owner, i.GuildID, choice)
		if err != nil {
			componentFailure(s, i, choice, err)
			return
		}
		sendView(s, i, embed, mainMenu(id.Owner))

	default:
		slog.Warn("Unknown menu choice", "choice", choice)
	}
}

func handleBuyButton(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, id ComponentID) {
	slot, err := strconv.Atoi(id.Arg)
	if err != nil || slot < 1 {
		respondEphemeral(s, i, MsgSlotEmpty)
		return
	}
	if !deferUpdate(s, i) {
		return
	}

	ctx, cancel := interactionContext()
	defer cancel()

	res, err := client.Buy(ctx, id.Owner, i.GuildID, slot)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.Status == http.StatusBadRequest && apiErr.Message != "" {
			followupEphemeral(s, i, apiErr.Message)
			return
		}
		componentFailure(s, i, ActionBuy, err)
		return
	}
	sendView(s, i, purchaseEmbed(res), shopMenu(id.Owner))
}

// activityButton runs an activity from a sub-menu and keeps that sub-menu
func activityButton(activity string, menu func(owner string) []discordgo.MessageComponent) ComponentHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, id ComponentID) {
		if !deferUpdate(s, i) {
			return
		}
		ctx, cancel := interactionContext()
		defer cancel()

		embed, err := resolveActivity(ctx, client, id.Owner, i.GuildID, activity)
		if err != nil {
			componentFailure(s, i, activity, err)
			return
		}
		sendView(s, i, embed, menu(id.Owner))
	}
}

func handleBack(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, id ComponentID) {
	if !deferUpdate(s, i) {
		return
	}
	ctx, cancel := interactionContext()
	defer cancel()

	p, err := client.GetPlayer(ctx, id.Owner, i.GuildID)
	if err != nil {
		componentFailure(s, i, ActionBack, err)
		return
	}
	sendView(s, i, profileEmbed(p), mainMenu(id.Owner))
}

// updateView edits the message a component lives on without deferring
func updateView(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	}); err != nil {
		slog.Error("Failed to update view", "error", err)
	}
}

// componentFailure leaves the view untouched and tells the presser what went wrong
func componentFailure(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) {
	slog.Error("Component action failed", "action", action, "error", err)
	followupEphemeral(s, i, formatFriendlyError(err))
}

func coinsOf(shop *ShopResponse) int {
	if shop.Coins == nil {
		return 0
	}
	return *shop.Coins
}
