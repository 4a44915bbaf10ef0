package domain

// Enemy is the opponent of a single adventure
type Enemy struct {
	Name        string `json:"name"`
	HP          int    `json:"hp"`
	Atk         int    `json:"atk"`
	Def         int    `json:"def"`
	Description string `json:"description"`
}

// Encounter is an enemy plus the scene it appears in. Never persisted.
type Encounter struct {
	Enemy Enemy  `json:"enemy"`
	Scene string `json:"scene"`
}

// ActivityResult is what a resolved activity hands back to the presentation layer
type ActivityResult struct {
	Activity    string `json:"activity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Success     bool   `json:"success"`

	// CoinsEarned is the gross payout, CoinsSpent the entry cost
	CoinsEarned int  `json:"coins_earned"`
	CoinsSpent  int  `json:"coins_spent"`
	XPGained    int  `json:"xp_gained"`
	LeveledUp   bool `json:"leveled_up"`

	// Activity specific details
	StatGain    *Effect    `json:"stat_gain,omitempty"`
	Roll        int        `json:"roll,omitempty"`
	CoinSide    string     `json:"coin_side,omitempty"`
	Encounter   *Encounter `json:"encounter,omitempty"`
	PlayerRoll  int        `json:"player_roll,omitempty"`
	EnemyRoll   int        `json:"enemy_roll,omitempty"`
	PlayerScore int        `json:"player_score,omitempty"`
	EnemyScore  int        `json:"enemy_score,omitempty"`
	HPLost      int        `json:"hp_lost,omitempty"`

	Flavor string  `json:"flavor,omitempty"`
	Player *Player `json:"player"`
}
