package activity

import (
	"strings"

	"github.com/RobNel12/newbot-ai/internal/ai"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/utils"
)

// DefaultEncounter is the Mischief Slime on the mossy path
func DefaultEncounter() domain.Encounter {
	return domain.Encounter{
		Enemy: domain.Enemy{
			Name:        DefaultEnemyName,
			HP:          DefaultEnemyHP,
			Atk:         DefaultEnemyAtk,
			Def:         DefaultEnemyDef,
			Description: DefaultEnemyDescription,
		},
		Scene: DefaultScene,
	}
}

// NormalizeEncounter overlays a proposal on the default encounter, clamping
// every stat and truncating text. Missing parts keep their defaults.
func NormalizeEncounter(p *ai.EncounterProposal) domain.Encounter {
	enc := DefaultEncounter()
	if p == nil {
		return enc
	}

	if e := p.Enemy; e != nil {
		enc.Enemy.Name = textOr(e.Name, enc.Enemy.Name, MaxEnemyNameLength)
		enc.Enemy.HP = utils.Clamp(e.HP.Or(enc.Enemy.HP), MinEnemyHP, MaxEnemyHP)
		enc.Enemy.Atk = utils.Clamp(e.Atk.Or(enc.Enemy.Atk), MinEnemyAtk, MaxEnemyStat)
		enc.Enemy.Def = utils.Clamp(e.Def.Or(enc.Enemy.Def), MinEnemyDef, MaxEnemyStat)
		enc.Enemy.Description = textOr(e.Description, enc.Enemy.Description, MaxEnemyDescriptionLength)
	}
	enc.Scene = textOr(p.Scene, enc.Scene, MaxSceneLength)

	return enc
}

func textOr(s *string, def string, limit int) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return ai.Truncate(strings.TrimSpace(*s), limit)
}
