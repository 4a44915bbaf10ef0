package postgres

import "github.com/RobNel12/newbot-ai/internal/database"

// =============================================================================
// Player Queries
// =============================================================================

const (
	sqlInsertPlayerIfMissing = `
		INSERT INTO players (user_id, guild_id, coins, hp, atk, def, lvl, xp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
		ON CONFLICT (user_id, guild_id) DO NOTHING
	`

	sqlSelectPlayer = `SELECT ` + database.PlayerColumns + ` FROM players WHERE user_id = $1 AND guild_id = $2`

	sqlSelectPlayerForUpdate = sqlSelectPlayer + ` FOR UPDATE`

	sqlResetPlayer = `
		INSERT INTO players (user_id, guild_id, coins, hp, atk, def, lvl, xp,
			last_mine, last_train, last_adventure, last_gamble)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, 0, 0, 0)
		ON CONFLICT (user_id, guild_id) DO UPDATE SET
			coins = EXCLUDED.coins, hp = EXCLUDED.hp, atk = EXCLUDED.atk, def = EXCLUDED.def,
			lvl = EXCLUDED.lvl, xp = 0,
			last_mine = 0, last_train = 0, last_adventure = 0, last_gamble = 0
	`

	sqlResetGuildPlayers = `
		UPDATE players SET coins = $2, hp = $3, atk = $4, def = $5, lvl = $6, xp = 0,
			last_mine = 0, last_train = 0, last_adventure = 0, last_gamble = 0
		WHERE guild_id = $1
	`

	sqlAverageLevel = `SELECT COALESCE(AVG(lvl), 1)::float8 FROM players WHERE guild_id = $1`
)

// =============================================================================
// Inventory Queries
// =============================================================================

const (
	sqlAddInventory = `
		INSERT INTO inventory (user_id, guild_id, item, qty)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, guild_id, item) DO UPDATE
		SET qty = inventory.qty + EXCLUDED.qty
	`

	sqlListInventory = `
		SELECT item, qty FROM inventory
		WHERE user_id = $1 AND guild_id = $2
		ORDER BY item
	`

	sqlDeletePlayerInventory = `DELETE FROM inventory WHERE user_id = $1 AND guild_id = $2`

	sqlDeleteGuildInventory = `DELETE FROM inventory WHERE guild_id = $1`
)

// =============================================================================
// Shop Cache Queries
// =============================================================================

const (
	sqlSelectShop = `SELECT items_json FROM shop_cache WHERE guild_id = $1 AND day_key = $2`

	sqlUpsertShop = `
		INSERT INTO shop_cache (guild_id, day_key, items_json)
		VALUES ($1, $2, $3)
		ON CONFLICT (guild_id, day_key) DO UPDATE
		SET items_json = EXCLUDED.items_json
	`

	sqlPruneShops = `DELETE FROM shop_cache WHERE day_key < $1`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgGetPlayerFailed     = "failed to get player: %w"
	ErrMsgCreatePlayerFailed  = "failed to create player: %w"
	ErrMsgUpdatePlayerFailed  = "failed to update player: %w"
	ErrMsgAddInventoryFailed  = "failed to add inventory: %w"
	ErrMsgListInventoryFailed = "failed to list inventory: %w"
	ErrMsgResetPlayerFailed   = "failed to reset player: %w"
	ErrMsgResetGuildFailed    = "failed to reset guild: %w"
	ErrMsgAverageLevelFailed  = "failed to compute average level: %w"
	ErrMsgBeginTxFailed       = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed      = "failed to commit transaction: %w"
	ErrMsgGetShopFailed       = "failed to get shop cache: %w"
	ErrMsgPutShopFailed       = "failed to store shop cache: %w"
	ErrMsgPruneShopsFailed    = "failed to prune shop cache: %w"
)
