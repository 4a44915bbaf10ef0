package handler

// Client-facing error messages. They never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid %s"
	ErrMsgGenericServerError    = "Something went wrong"

	ErrMsgOnCooldown          = "That activity is on cooldown."
	ErrMsgInsufficientFunds   = "You don't have enough coins."
	ErrMsgShopSlotEmpty       = "That slot is empty today."
	ErrMsgUnknownActivity     = "Unknown activity."
	ErrMsgGeneratorDown       = "The storyteller is unavailable right now."
	ErrMsgGeneratorBadReply   = "The storyteller mumbled something unintelligible."
	ErrMsgLoadPlayerFailed    = "Failed to load player"
	ErrMsgLoadInventoryFailed = "Failed to load inventory"
	ErrMsgLoadShopFailed      = "Failed to load shop"
	ErrMsgResetFailed         = "Failed to reset"
)

// Success messages
const (
	MsgPlayerReset = "Player reset to defaults"
	MsgGuildReset  = "All players reset to defaults"
)

// Health states
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStorageDown    = "storage unavailable"
)
