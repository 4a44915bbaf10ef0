package domain

// Effect is a stat change applied when an item is bought
type Effect struct {
	Stat   Stat `json:"stat"`
	Amount int  `json:"amount"`
}

// ShopItem is one purchasable entry of the daily shop
type ShopItem struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cost        int      `json:"cost"`
	Effects     []Effect `json:"effects"`
}

// PurchaseResult describes a completed purchase
type PurchaseResult struct {
	Item      ShopItem `json:"item"`
	CoinsLeft int      `json:"coins_left"`
	LeveledUp bool     `json:"leveled_up"`
	Player    *Player  `json:"player"`
}
