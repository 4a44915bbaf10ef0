package discord

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds = "You don't have enough coins."
	MsgSlotEmpty         = "That slot is empty today."
	MsgPlayerNotFound    = "👤 **Player Not Found**\nThey haven't started their adventure yet."
	MsgCooldownActive    = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."
	MsgStorytellerAway   = "📜 The storyteller is away. Try again in a moment."
	MsgNotYourMenu       = "This menu belongs to someone else. Open your own with `/rpg`."
	MsgGuildOnly         = "This command only works inside a server."
	MsgAdminOnly         = "🔒 Only game admins can do that."
	MsgServerUnreachable = "Error connecting to game server."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorBlurple    = 0x5865F2
	ColorDarkTeal   = 0x11806A
	ColorGreen      = 0x2ECC71
	ColorBrandGreen = 0x57F287
	ColorOrange     = 0xE67E22
	ColorPurple     = 0x9B59B6
	ColorRed        = 0xE74C3C
	ColorGrey       = 0x95A5A6
)

// Footers
const (
	FooterAdminAction = "Admin Action"
	FooterMenu        = "Use the menu below."
	FooterShopFormat  = "You have %d coins. Shop rotates daily."
)

// Costs shown in menus and insufficient-funds embeds. The engine is authoritative.
const (
	TrainCost  = 15
	GambleCost = 10
)
