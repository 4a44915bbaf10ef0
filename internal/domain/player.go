package domain

// Player is the persisted per-player, per-server record
type Player struct {
	UserID  string `json:"user_id"`
	GuildID string `json:"guild_id"`
	Coins   int    `json:"coins"`
	HP      int    `json:"hp"`
	Atk     int    `json:"atk"`
	Def     int    `json:"def"`
	Level   int    `json:"lvl"`
	XP      int    `json:"xp"`

	// Epoch seconds, 0 means never
	LastMine      int64 `json:"last_mine"`
	LastTrain     int64 `json:"last_train"`
	LastAdventure int64 `json:"last_adventure"`
	LastGamble    int64 `json:"last_gamble"`
}

// NewPlayer returns a player carrying the starting values
func NewPlayer(userID, guildID string) *Player {
	return &Player{
		UserID:  userID,
		GuildID: guildID,
		Coins:   DefaultCoins,
		HP:      DefaultHP,
		Atk:     DefaultAtk,
		Def:     DefaultDef,
		Level:   DefaultLevel,
		XP:      0,
	}
}

// AddStat adds amount to a combat stat. HP never drops below MinHP and the
// other combat stats never drop below 1. XP is not handled here.
func (p *Player) AddStat(stat Stat, amount int) {
	switch stat {
	case StatHP:
		p.HP = max(MinHP, p.HP+amount)
	case StatAtk:
		p.Atk = max(1, p.Atk+amount)
	case StatDef:
		p.Def = max(1, p.Def+amount)
	}
}

// LastUsed returns the cooldown timestamp stored under key
func (p *Player) LastUsed(key CooldownKey) int64 {
	switch key {
	case CooldownMine:
		return p.LastMine
	case CooldownTrain:
		return p.LastTrain
	case CooldownAdventure:
		return p.LastAdventure
	case CooldownGamble:
		return p.LastGamble
	}
	return 0
}

// SetLastUsed stores ts under key
func (p *Player) SetLastUsed(key CooldownKey, ts int64) {
	switch key {
	case CooldownMine:
		p.LastMine = ts
	case CooldownTrain:
		p.LastTrain = ts
	case CooldownAdventure:
		p.LastAdventure = ts
	case CooldownGamble:
		p.LastGamble = ts
	}
}

// PlayerUpdate is a partial update. Nil fields are left untouched.
type PlayerUpdate struct {
	Coins         *int
	HP            *int
	Atk           *int
	Def           *int
	Level         *int
	XP            *int
	LastMine      *int64
	LastTrain     *int64
	LastAdventure *int64
	LastGamble    *int64
}

// IsEmpty reports whether the update changes nothing
func (u PlayerUpdate) IsEmpty() bool {
	return u.Coins == nil && u.HP == nil && u.Atk == nil && u.Def == nil &&
		u.Level == nil && u.XP == nil && u.LastMine == nil && u.LastTrain == nil &&
		u.LastAdventure == nil && u.LastGamble == nil
}

// Apply copies every set field onto p
func (u PlayerUpdate) Apply(p *Player) {
	setInt(&p.Coins, u.Coins)
	setInt(&p.HP, u.HP)
	setInt(&p.Atk, u.Atk)
	setInt(&p.Def, u.Def)
	setInt(&p.Level, u.Level)
	setInt(&p.XP, u.XP)
	setInt64(&p.LastMine, u.LastMine)
	setInt64(&p.LastTrain, u.LastTrain)
	setInt64(&p.LastAdventure, u.LastAdventure)
	setInt64(&p.LastGamble, u.LastGamble)
}

// Diff builds the update that turns before into after
func Diff(before, after *Player) PlayerUpdate {
	var u PlayerUpdate
	if before.Coins != after.Coins {
		u.Coins = &after.Coins
	}
	if before.HP != after.HP {
		u.HP = &after.HP
	}
	if before.Atk != after.Atk {
		u.Atk = &after.Atk
	}
	if before.Def != after.Def {
		u.Def = &after.Def
	}
	if before.Level != after.Level {
		u.Level = &after.Level
	}
	if before.XP != after.XP {
		u.XP = &after.XP
	}
	if before.LastMine != after.LastMine {
		u.LastMine = &after.LastMine
	}
	if before.LastTrain != after.LastTrain {
		u.LastTrain = &after.LastTrain
	}
	if before.LastAdventure != after.LastAdventure {
		u.LastAdventure = &after.LastAdventure
	}
	if before.LastGamble != after.LastGamble {
		u.LastGamble = &after.LastGamble
	}
	return u
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setInt64(dst *int64, src *int64) {
	if src != nil {
		*dst = *src
	}
}

// InventoryEntry is one owned item and its count
type InventoryEntry struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
}
