package activity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/utils"
)

// Round is the mutable state of one activity inside its transaction.
// Resolve funcs change Player and fill Result; XP is granted afterwards.
type Round struct {
	Player    *domain.Player
	Result    *domain.ActivityResult
	Encounter *domain.Encounter
	Rand      utils.Rand
	Dice      utils.Rand
	XP        int
}

// Flavor describes the optional generated line shown with a result
type Flavor struct {
	System  string
	Prompt  func(res *domain.ActivityResult) string
	Default string
}

// Definition is one activity as data: gating, cost and outcome rules
type Definition struct {
	Name     string
	Title    string
	Cooldown domain.CooldownKey
	Duration time.Duration
	Cost     int

	// NeedsEncounter requests an enemy before the player row is locked
	NeedsEncounter bool

	Resolve  func(r *Round)
	Flavor   *Flavor
	Describe func(res *domain.ActivityResult) string
}

// Definitions returns the built-in activities keyed by name
func Definitions() map[string]Definition {
	return map[string]Definition{
		domain.ActivityMine: {
			Name:     domain.ActivityMine,
			Title:    TitleMine,
			Cooldown: domain.CooldownMine,
			Duration: MineCooldown,
			Resolve:  resolveMine,
			Flavor: &Flavor{
				System:  MineFlavorSystem,
				Prompt:  func(*domain.ActivityResult) string { return MineFlavorPrompt },
				Default: MineFlavorDefault,
			},
			Describe: describeMine,
		},
		domain.ActivityTrain: {
			Name:     domain.ActivityTrain,
			Title:    TitleTrain,
			Cooldown: domain.CooldownTrain,
			Duration: TrainCooldown,
			Cost:     TrainCost,
			Resolve:  resolveTrain,
			Flavor: &Flavor{
				System: TrainFlavorSystem,
				Prompt: func(res *domain.ActivityResult) string {
					return fmt.Sprintf(TrainFlavorPrompt, strings.ToUpper(string(res.StatGain.Stat)), res.StatGain.Amount)
				},
				Default: TrainFlavorDefault,
			},
			Describe: describeTrain,
		},
		domain.ActivityRoll: {
			Name:     domain.ActivityRoll,
			Title:    TitleRoll,
			Cooldown: domain.CooldownGamble,
			Duration: GambleCooldown,
			Cost:     RollCost,
			Resolve:  resolveRoll,
			Flavor: &Flavor{
				System:  RollFlavorSystem,
				Prompt:  func(res *domain.ActivityResult) string { return fmt.Sprintf(RollFlavorPrompt, res.Roll) },
				Default: RollFlavorDefault,
			},
			Describe: describeRoll,
		},
		domain.ActivityCoinflip: {
			Name:     domain.ActivityCoinflip,
			Title:    TitleCoinflip,
			Cooldown: domain.CooldownGamble,
			Duration: GambleCooldown,
			Cost:     CoinflipCost,
			Resolve:  resolveCoinflip,
			Flavor: &Flavor{
				System: CoinflipFlavorSystem,
				Prompt: func(res *domain.ActivityResult) string {
					outcome := "loses"
					if res.Success {
						outcome = "wins"
					}
					return fmt.Sprintf(CoinflipFlavorPrompt, res.CoinSide, outcome)
				},
				Default: CoinflipFlavorDefault,
			},
			Describe: describeCoinflip,
		},
		domain.ActivityAdventure: {
			Name:           domain.ActivityAdventure,
			Title:          TitleAdventure,
			Cooldown:       domain.CooldownAdventure,
			Duration:       AdventureCooldown,
			NeedsEncounter: true,
			Resolve:        resolveAdventure,
			Describe:       describeAdventure,
		},
	}
}

// Names returns the activity names in sorted order
func Names() []string {
	defs := Definitions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolveMine(r *Round) {
	payout := utils.RandomInt(r.Rand, MinMinePayout, MaxMinePayout)
	r.Player.Coins += payout
	r.Result.CoinsEarned = payout
	r.Result.Success = true
}

var trainableStats = []domain.Stat{domain.StatHP, domain.StatAtk, domain.StatDef}

func resolveTrain(r *Round) {
	stat := trainableStats[utils.RandomInt(r.Rand, 0, len(trainableStats)-1)]
	gain := utils.RandomInt(r.Rand, MinTrainGain, MaxTrainGain)
	r.Player.AddStat(stat, gain)

	r.Result.StatGain = &domain.Effect{Stat: stat, Amount: gain}
	r.Result.Success = true
	r.XP = utils.RandomInt(r.Rand, MinTrainXP, MaxTrainXP)
}

// RollPayout maps a d20 face to its payout
func RollPayout(face int) int {
	switch {
	case face >= RollJackpotFace:
		return RollJackpot
	case face >= RollHighThreshold:
		return RollHighPayout
	}
	return 0
}

func resolveRoll(r *Round) {
	face := utils.RollD20(r.Dice)
	payout := RollPayout(face)
	r.Player.Coins += payout

	r.Result.Roll = face
	r.Result.CoinsEarned = payout
	r.Result.Success = payout > 0
}

// Face and outcome are independent draws
func resolveCoinflip(r *Round) {
	side := CoinHeads
	if utils.RandomInt(r.Rand, 0, 1) == 1 {
		side = CoinTails
	}
	win := utils.RandomInt(r.Rand, 0, 1) == 0

	r.Result.CoinSide = side
	r.Result.Success = win
	if win {
		r.Player.Coins += CoinflipPayout
		r.Result.CoinsEarned = CoinflipPayout
	}
}

// Strike computes max(1, d20 + atk - def)
func Strike(d20, atk, def int) int {
	return max(1, d20+atk-def)
}

func resolveAdventure(r *Round) {
	enc := DefaultEncounter()
	if r.Encounter != nil {
		enc = *r.Encounter
	}
	p := r.Player
	res := r.Result
	res.Encounter = &enc

	playerD20 := utils.RollD20(r.Dice)
	enemyD20 := utils.RollD20(r.Dice)
	res.PlayerRoll = playerD20 + p.Atk
	res.EnemyRoll = enemyD20 + enc.Enemy.Atk
	res.PlayerScore = Strike(playerD20, p.Atk, enc.Enemy.Def)
	res.EnemyScore = Strike(enemyD20, enc.Enemy.Atk, p.Def)

	// ties go to the player
	if res.PlayerScore >= res.EnemyScore {
		coins := utils.RandomInt(r.Rand, MinAdventureCoins, MaxAdventureCoins)
		p.Coins += coins
		res.CoinsEarned = coins
		res.Success = true
		r.XP = utils.RandomInt(r.Rand, MinAdventureXP, MaxAdventureXP)
		return
	}

	hit := utils.RandomInt(r.Rand, MinAdventureHPHit, MaxAdventureHPHit)
	p.AddStat(domain.StatHP, -hit)
	res.HPLost = hit
}
