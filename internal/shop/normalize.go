package shop

import (
	"strings"

	"github.com/RobNel12/newbot-ai/internal/ai"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/utils"
)

// Fallback returns the built-in item list used whenever generation yields nothing
func Fallback() []domain.ShopItem {
	return []domain.ShopItem{
		{
			Name:        "Small Potion",
			Description: "A humble red tonic (+2 HP).",
			Cost:        20,
			Effects:     []domain.Effect{{Stat: domain.StatHP, Amount: 2}},
		},
		{
			Name:        "Iron Dagger",
			Description: "A simple blade (+1 ATK).",
			Cost:        60,
			Effects:     []domain.Effect{{Stat: domain.StatAtk, Amount: 1}},
		},
		{
			Name:        "Leather Vest",
			Description: "Worn but comfy (+1 DEF).",
			Cost:        60,
			Effects:     []domain.Effect{{Stat: domain.StatDef, Amount: 1}},
		},
	}
}

// NormalizeItem turns an untrusted proposal into a valid shop item.
// It never fails: every field is defaulted, truncated or clamped.
func NormalizeItem(p ai.ShopItemProposal, rnd utils.Rand) domain.ShopItem {
	item := domain.ShopItem{
		Name:        stringOr(p.Name, DefaultItemName, MaxNameLength),
		Description: stringOr(p.Description, DefaultItemDescription, MaxDescriptionLength),
	}

	cost := p.Cost.Value
	if !p.Cost.Valid {
		cost = utils.RandomInt(rnd, MinDefaultCost, MaxDefaultCost)
	}
	item.Cost = utils.Clamp(cost, MinCost, MaxCost)

	for _, e := range p.Effects {
		stat := domain.StatHP
		if e.Stat != nil {
			stat = domain.Stat(strings.ToLower(strings.TrimSpace(*e.Stat)))
		}
		if !stat.Valid() {
			continue
		}
		item.Effects = append(item.Effects, domain.Effect{
			Stat:   stat,
			Amount: utils.Clamp(e.Amount.Or(DefaultEffectAmount), MinEffectAmount, MaxEffectAmount),
		})
	}
	if len(item.Effects) == 0 {
		item.Effects = []domain.Effect{{Stat: domain.StatHP, Amount: 2}}
	}
	return item
}

func stringOr(s *string, def string, limit int) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return ai.Truncate(strings.TrimSpace(*s), limit)
}
