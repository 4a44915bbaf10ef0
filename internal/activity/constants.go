package activity

import "time"

// Cooldowns
const (
	MineCooldown      = 60 * time.Second
	TrainCooldown     = 45 * time.Second
	GambleCooldown    = 10 * time.Second
	AdventureCooldown = 60 * time.Second
)

// Costs
const (
	TrainCost    = 15
	RollCost     = 10
	CoinflipCost = 10
)

// Payout ranges (inclusive)
const (
	MinMinePayout = 12
	MaxMinePayout = 28

	MinTrainGain = 1
	MaxTrainGain = 3
	MinTrainXP   = 8
	MaxTrainXP   = 15

	RollJackpot       = 50
	RollJackpotFace   = 20
	RollHighPayout    = 25
	RollHighThreshold = 15

	CoinflipPayout = 20

	MinAdventureCoins = 12
	MaxAdventureCoins = 26
	MinAdventureXP    = 16
	MaxAdventureXP    = 26
	MinAdventureHPHit = 1
	MaxAdventureHPHit = 5
)

// Coin faces
const (
	CoinHeads = "Heads"
	CoinTails = "Tails"
)

// Enemy normalization bounds
const (
	MinEnemyHP   = 8
	MaxEnemyHP   = 60
	MinEnemyAtk  = 1
	MinEnemyDef  = 0
	MaxEnemyStat = 18

	MaxEnemyNameLength        = 60
	MaxEnemyDescriptionLength = 180
	MaxSceneLength            = 140
)

// Default encounter used when generation fails
const (
	DefaultEnemyName        = "Mischief Slime"
	DefaultEnemyHP          = 14
	DefaultEnemyAtk         = 4
	DefaultEnemyDef         = 2
	DefaultEnemyDescription = "A gelatinous prankster wobbles into view."
	DefaultScene            = "A crooked path through mossy stones."
)

// Result titles
const (
	TitleMine      = "⛏️ Mine"
	TitleTrain     = "🏋️ Training Complete"
	TitleRoll      = "🎲 d20 Result"
	TitleCoinflip  = "🪙 Coinflip"
	TitleAdventure = "🗺️ Adventure"
)

// Flavor prompts and the lines used when the generator has nothing
const (
	MineFlavorSystem  = "You write one short vivid line for a fantasy mine/work action."
	MineFlavorPrompt  = "Give one line describing the scene. Keys: {line:str}"
	MineFlavorDefault = "You chip away at a glittering seam and pocket a few nuggets."

	TrainFlavorSystem  = "You are a colorful RPG trainer. Output JSON {line:str}."
	TrainFlavorPrompt  = "Player increased %s by %d. Give one energetic line."
	TrainFlavorDefault = "The grizzled coach nods with approval."

	RollFlavorSystem  = "You are a dry, witty casino dealer NPC. Output JSON {line:str}."
	RollFlavorPrompt  = "Player rolled %d. Emote a short one-liner."
	RollFlavorDefault = "The dealer taps the table, unreadable."

	CoinflipFlavorSystem  = "You narrate coinflips wryly. Output JSON {line:str}."
	CoinflipFlavorPrompt  = "The coin shows %s. Player %s."
	CoinflipFlavorDefault = "The coin dances end over end."
)

// Log messages
const (
	LogMsgActivityResolved  = "Activity resolved"
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgEncounterFallback = "Encounter generation failed, using default enemy"
	LogMsgFlavorFallback    = "Flavor line generation failed, using default line"
)
