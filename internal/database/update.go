package database

import (
	"fmt"
	"strings"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// Placeholder renders the n-th (1-based) bind parameter for a driver
type Placeholder func(n int) string

// DollarPlaceholder renders $n, as pgx expects
func DollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

// QuestionPlaceholder renders ?, as database/sql drivers expect
func QuestionPlaceholder(int) string { return "?" }

// BuildPlayerUpdate renders the UPDATE statement for a partial player update.
// ok is false for an empty update.
func BuildPlayerUpdate(userID, guildID string, u domain.PlayerUpdate, ph Placeholder) (query string, args []any, ok bool) {
	var sets []string
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = %s", col, ph(len(args))))
	}

	if u.Coins != nil {
		add("coins", *u.Coins)
	}
	if u.HP != nil {
		add("hp", *u.HP)
	}
	if u.Atk != nil {
		add("atk", *u.Atk)
	}
	if u.Def != nil {
		add("def", *u.Def)
	}
	if u.Level != nil {
		add("lvl", *u.Level)
	}
	if u.XP != nil {
		add("xp", *u.XP)
	}
	if u.LastMine != nil {
		add(string(domain.CooldownMine), *u.LastMine)
	}
	if u.LastTrain != nil {
		add(string(domain.CooldownTrain), *u.LastTrain)
	}
	if u.LastAdventure != nil {
		add(string(domain.CooldownAdventure), *u.LastAdventure)
	}
	if u.LastGamble != nil {
		add(string(domain.CooldownGamble), *u.LastGamble)
	}

	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, userID, guildID)
	query = fmt.Sprintf("UPDATE players SET %s WHERE user_id = %s AND guild_id = %s",
		strings.Join(sets, ", "), ph(len(args)-1), ph(len(args)))
	return query, args, true
}
