package activity

import (
	"fmt"
	"strings"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// XPText renders the experience line appended to rewarding results
func XPText(gained int, leveledUp bool) string {
	text := fmt.Sprintf("**+%d XP**", gained)
	if leveledUp {
		text += " — **LEVEL UP!** 🎉"
	}
	return text
}

func describeMine(res *domain.ActivityResult) string {
	return fmt.Sprintf("%s\n\nYou earn **%d** coins.", res.Flavor, res.CoinsEarned)
}

func describeTrain(res *domain.ActivityResult) string {
	return fmt.Sprintf("%s\n%s", res.Flavor, XPText(res.XPGained, res.LeveledUp))
}

func describeRoll(res *domain.ActivityResult) string {
	outcome := "No luck this time."
	if res.CoinsEarned > 0 {
		outcome = fmt.Sprintf("Winner! You receive **%d** coins.", res.CoinsEarned)
	}
	return fmt.Sprintf("You rolled **d20 = %d**.\n%s\n\n%s", res.Roll, outcome, res.Flavor)
}

func describeCoinflip(res *domain.ActivityResult) string {
	outcome := "lose"
	if res.Success {
		outcome = "WIN"
	}
	return fmt.Sprintf("The coin shows **%s** — you **%s**.\n%s", res.CoinSide, outcome, res.Flavor)
}

func describeAdventure(res *domain.ActivityResult) string {
	enc := res.Encounter
	if enc == nil {
		return ""
	}
	lines := []string{
		"**Scene:** " + enc.Scene,
		fmt.Sprintf("You encounter **%s** — %s", enc.Enemy.Name, enc.Enemy.Description),
		fmt.Sprintf("Your strike total: **%d - %d = %d**", res.PlayerRoll, enc.Enemy.Def, res.PlayerScore),
		fmt.Sprintf("%s strike total: **%d - %d = %d**", enc.Enemy.Name, res.EnemyRoll, res.Player.Def, res.EnemyScore),
	}
	if res.Success {
		lines = append(lines, fmt.Sprintf("**Victory!** +**%d** coins. %s", res.CoinsEarned, XPText(res.XPGained, res.LeveledUp)))
	} else {
		lines = append(lines, fmt.Sprintf("**Defeat.** You lose **%d HP** (non-lethal).", res.HPLost))
	}
	return strings.Join(lines, "\n")
}
