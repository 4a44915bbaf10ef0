package shop

import "time"

// Item count bounds per daily shop
const (
	MinItems = 3
	MaxItems = 5
)

// Normalization bounds for generated items
const (
	MaxNameLength        = 50
	MaxDescriptionLength = 120

	MinCost = 10
	MaxCost = 300

	// Missing costs are drawn from this range before clamping
	MinDefaultCost = 30
	MaxDefaultCost = 100

	MinEffectAmount     = 1
	MaxEffectAmount     = 5
	DefaultEffectAmount = 1

	DefaultItemName        = "Mysterious Trinket"
	DefaultItemDescription = "An odd curio."
)

// DefaultFrontCacheSize bounds the in-memory cache when none is configured
const DefaultFrontCacheSize = 256

// FrontCacheTTL outlives a day key so a hit is never served past its own day
const FrontCacheTTL = 24 * time.Hour

// Log messages
const (
	LogMsgCacheHit          = "Shop cache hit"
	LogMsgGeneratingShop    = "Generating daily shop"
	LogMsgGeneratorFailed   = "Shop generator failed, using fallback items"
	LogMsgNoUsableItems     = "Shop generator returned no usable items, using fallback items"
	LogMsgCorruptCacheEntry = "Discarding unreadable shop cache entry"
)
