package domain

import "time"

// Starting values for a freshly created player
const (
	DefaultCoins = 120
	DefaultHP    = 20
	DefaultAtk   = 5
	DefaultDef   = 3
	DefaultLevel = 1

	MinHP = 1
)

// XPPerLevel is the per-level threshold multiplier: level n needs n*XPPerLevel
const XPPerLevel = 100

// Stat names an item effect or a trained attribute
type Stat string

const (
	StatHP  Stat = "hp"
	StatAtk Stat = "atk"
	StatDef Stat = "def"
	StatXP  Stat = "xp"
)

// Valid reports whether s is one of the recognized stats
func (s Stat) Valid() bool {
	switch s {
	case StatHP, StatAtk, StatDef, StatXP:
		return true
	}
	return false
}

// CooldownKey names the timestamp column an activity is gated on
type CooldownKey string

const (
	CooldownMine      CooldownKey = "last_mine"
	CooldownTrain     CooldownKey = "last_train"
	CooldownAdventure CooldownKey = "last_adventure"
	CooldownGamble    CooldownKey = "last_gamble"
)

// Activity names
const (
	ActivityMine      = "mine"
	ActivityTrain     = "train"
	ActivityRoll      = "roll"
	ActivityCoinflip  = "coinflip"
	ActivityAdventure = "adventure"
)

// DayKeyFormat is the UTC calendar-day key layout (YYYYMMDD)
const DayKeyFormat = "20060102"

// DayKey returns the UTC calendar-day key for t
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyFormat)
}
