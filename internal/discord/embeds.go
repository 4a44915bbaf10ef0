package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// Screen titles and texts
const (
	TitleProfile        = "🧙 Your Profile"
	TitleInventory      = "🎒 Inventory"
	TitleShop           = "🛒 The Goblin Curio (AI Rotating Shop)"
	TitlePurchase       = "🛒 Purchase Complete"
	TitleTrainingRing   = "🥊 Training Ring"
	TitleGamblingHall   = "🎲 Gambling Hall"
	TitleStoryteller    = "📜 The Storyteller"
	TitlePlayerReset    = "♻️ Player Reset"
	TitleGuildReset     = "♻️ Guild Reset"
	InventoryEmptyText  = "_Empty._"
	ShopEmptyText       = "_The shelves are bare today._"
	TrainingRingText    = "Pay **%d** coins to train (+1~+3 to a random stat). 45s cooldown."
	GamblingHallText    = "• Roll d20 (bet %d): 15+ pays 25, 20 pays 50.\n• Coinflip (bet %d): Win pays 20.\n10s cooldown."
	PurchaseTextFormat  = "Purchased **%s** for **%d** coins.\nApplied: _%s_\n\nCoins left: **%d**"
	PurchaseLevelUpText = "\n🎉 **Level up!** You are now level **%d**."
)

// blocked describes the embed shown when an activity is refused
type blocked struct {
	CooldownTitle string
	CooldownText  string
	FundsTitle    string
	FundsText     string
}

var blockedEmbeds = map[string]blocked{
	domain.ActivityMine: {
		CooldownTitle: "⛏️ Resting",
		CooldownText:  "Try again in **%ds**.",
	},
	domain.ActivityTrain: {
		CooldownTitle: "🥵 Rest Up",
		CooldownText:  "Training in **%ds**.",
		FundsTitle:    "🥊 Training",
		FundsText:     fmt.Sprintf("You need **%d** coins.", TrainCost),
	},
	domain.ActivityRoll: {
		CooldownTitle: "⏱️ Cooldown",
		CooldownText:  "Gambling in **%ds**.",
		FundsTitle:    "🎲 Roll d20",
		FundsText:     fmt.Sprintf("Need **%d** coins.", GambleCost),
	},
	domain.ActivityCoinflip: {
		CooldownTitle: "⏱️ Cooldown",
		CooldownText:  "Gambling in **%ds**.",
		FundsTitle:    "🪙 Coinflip",
		FundsText:     fmt.Sprintf("Need **%d** coins.", GambleCost),
	},
	domain.ActivityAdventure: {
		CooldownTitle: "🗺️ Resting",
		CooldownText:  "Adventure in **%ds**.",
	},
}

var successColors = map[string]int{
	domain.ActivityMine:     ColorDarkTeal,
	domain.ActivityTrain:    ColorOrange,
	domain.ActivityRoll:     ColorPurple,
	domain.ActivityCoinflip: ColorPurple,
}

// createEmbed creates a standard embed. An empty footer leaves the footer off.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}
	if footerText != "" {
		e.Footer = &discordgo.MessageEmbedFooter{Text: footerText}
	}
	return e
}

func profileEmbed(p *domain.Player) *discordgo.MessageEmbed {
	e := createEmbed(TitleProfile, "", ColorBlurple, FooterMenu)
	e.Fields = []*discordgo.MessageEmbedField{
		{Name: "Level", Value: strconv.Itoa(p.Level), Inline: true},
		{Name: "XP", Value: strconv.Itoa(p.XP), Inline: true},
		{Name: "HP", Value: strconv.Itoa(p.HP), Inline: true},
		{Name: "ATK", Value: strconv.Itoa(p.Atk), Inline: true},
		{Name: "DEF", Value: strconv.Itoa(p.Def), Inline: true},
		{Name: "Coins", Value: strconv.Itoa(p.Coins), Inline: true},
	}
	return e
}

func inventoryEmbed(items []domain.InventoryEntry) *discordgo.MessageEmbed {
	if len(items) == 0 {
		return createEmbed(TitleInventory, InventoryEmptyText, ColorDarkTeal, "")
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("• **%s** ×%d", it.Item, it.Qty))
	}
	return createEmbed(TitleInventory, strings.Join(lines, "\n"), ColorDarkTeal, "")
}

// effectsText renders effects as "ATK+1, HP+2"
func effectsText(effects []domain.Effect) string {
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		parts = append(parts, fmt.Sprintf("%s+%d", cases.Upper(language.Und).String(string(e.Stat)), e.Amount))
	}
	return strings.Join(parts, ", ")
}

func shopEmbed(items []domain.ShopItem, coins int) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(items))
	for idx, it := range items {
		lines = append(lines, fmt.Sprintf("**%d. %s** — %dc\n*%s*\n_%s_",
			idx+1, it.Name, it.Cost, it.Description, effectsText(it.Effects)))
	}
	desc := strings.Join(lines, "\n\n")
	if desc == "" {
		desc = ShopEmptyText
	}
	return createEmbed(TitleShop, desc, ColorGreen, fmt.Sprintf(FooterShopFormat, coins))
}

func purchaseEmbed(res *domain.PurchaseResult) *discordgo.MessageEmbed {
	desc := fmt.Sprintf(PurchaseTextFormat, res.Item.Name, res.Item.Cost, effectsText(res.Item.Effects), res.CoinsLeft)
	if res.LeveledUp && res.Player != nil {
		desc += fmt.Sprintf(PurchaseLevelUpText, res.Player.Level)
	}
	return createEmbed(TitlePurchase, desc, ColorGreen, "")
}

func trainingRingEmbed() *discordgo.MessageEmbed {
	return createEmbed(TitleTrainingRing, fmt.Sprintf(TrainingRingText, TrainCost), ColorOrange, "")
}

func gamblingHallEmbed() *discordgo.MessageEmbed {
	return createEmbed(TitleGamblingHall, fmt.Sprintf(GamblingHallText, GambleCost, GambleCost), ColorPurple, "")
}

// activityEmbed renders a resolved activity in its activity's color
func activityEmbed(res *domain.ActivityResult) *discordgo.MessageEmbed {
	color, ok := successColors[res.Activity]
	switch {
	case res.Activity == domain.ActivityAdventure && res.Success:
		color = ColorBrandGreen
	case res.Activity == domain.ActivityAdventure:
		color = ColorRed
	case !ok:
		color = ColorGrey
	}
	return createEmbed(res.Title, res.Description, color, "")
}

// cooldownEmbed is shown when the engine refuses an activity on cooldown
func cooldownEmbed(activity string, remaining int) *discordgo.MessageEmbed {
	b, ok := blockedEmbeds[activity]
	if !ok {
		return createEmbed("⏱️ Cooldown", fmt.Sprintf("Try again in **%ds**.", remaining), ColorRed, "")
	}
	return createEmbed(b.CooldownTitle, fmt.Sprintf(b.CooldownText, remaining), ColorRed, "")
}

// fundsEmbed is shown when the player cannot pay an activity's entry cost
func fundsEmbed(activity string) *discordgo.MessageEmbed {
	b, ok := blockedEmbeds[activity]
	if !ok || b.FundsTitle == "" {
		return createEmbed(cases.Title(language.English).String(activity), MsgInsufficientFunds, ColorRed, "")
	}
	return createEmbed(b.FundsTitle, b.FundsText, ColorRed, "")
}
