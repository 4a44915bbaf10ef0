package ai

import (
	"math"
	"strconv"
	"strings"
)

// FlexInt decodes a JSON number or numeric string. Anything else leaves it invalid
// rather than failing the whole payload.
type FlexInt struct {
	Value int
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	if v > math.MaxInt32 {
		v = math.MaxInt32
	} else if v < math.MinInt32 {
		v = math.MinInt32
	}
	f.Value, f.Valid = int(math.Round(v)), true
	return nil
}

// Or returns the value, or def when invalid
func (f FlexInt) Or(def int) int {
	if !f.Valid {
		return def
	}
	return f.Value
}

// EffectProposal is an unvalidated item effect
type EffectProposal struct {
	Stat   *string `json:"stat"`
	Amount FlexInt `json:"amount"`
}

// ShopItemProposal is an unvalidated shop item
type ShopItemProposal struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Cost        FlexInt          `json:"cost"`
	Effects     []EffectProposal `json:"effects"`
}

// EnemyProposal is an unvalidated enemy
type EnemyProposal struct {
	Name        *string `json:"name"`
	HP          FlexInt `json:"hp"`
	Atk         FlexInt `json:"atk"`
	Def         FlexInt `json:"def"`
	Description *string `json:"description"`
}

// EncounterProposal is an unvalidated adventure encounter
type EncounterProposal struct {
	Enemy *EnemyProposal `json:"enemy"`
	Scene *string        `json:"scene"`
}

type shopPayload struct {
	Items []ShopItemProposal `json:"items"`
}

type linePayload struct {
	Line *string `json:"line"`
}
