package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

// Request kinds, used as metric labels
const (
	KindShop      = "shop"
	KindEncounter = "encounter"
	KindLine      = "line"
	KindChat      = "chat"
)

// Generator produces game content proposals. Every method fails with an error
// rather than returning partial data; callers substitute defaults.
type Generator struct {
	client *Client
}

// NewGenerator wraps a client. A nil or disabled client is allowed.
func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

// ShopItems asks for count items balanced for avgLevel
func (g *Generator) ShopItems(ctx context.Context, count, avgLevel int) ([]ShopItemProposal, error) {
	raw, err := g.client.CompleteJSON(ctx, KindShop, shopSystemPrompt, fmt.Sprintf(shopUserPrompt, count, avgLevel))
	if err != nil {
		return nil, err
	}

	var payload shopPayload
	if err := decode(raw, &payload); err != nil {
		return nil, errMalformed(KindShop, err)
	}
	if payload.Items == nil {
		return nil, errMalformed(KindShop, errors.New("missing items"))
	}
	return payload.Items, nil
}

// Encounter asks for an enemy sized to the player's stats
func (g *Generator) Encounter(ctx context.Context, p domain.Player) (*EncounterProposal, error) {
	raw, err := g.client.CompleteJSON(ctx, KindEncounter, encounterSystemPrompt,
		fmt.Sprintf(encounterUserPrompt, p.HP, p.Atk, p.Def, p.Level))
	if err != nil {
		return nil, err
	}

	var proposal EncounterProposal
	if err := decode(raw, &proposal); err != nil {
		return nil, errMalformed(KindEncounter, err)
	}
	return &proposal, nil
}

// Line asks for a single {line} flavor string, truncated to MaxLineLength
func (g *Generator) Line(ctx context.Context, system, user string) (string, error) {
	raw, err := g.client.CompleteJSON(ctx, KindLine, system, user)
	if err != nil {
		return "", err
	}

	var payload linePayload
	if err := decode(raw, &payload); err != nil {
		return "", errMalformed(KindLine, err)
	}
	if payload.Line == nil || strings.TrimSpace(*payload.Line) == "" {
		return "", errMalformed(KindLine, errors.New("missing line"))
	}
	return Truncate(strings.TrimSpace(*payload.Line), MaxLineLength), nil
}

// Chat returns a free-form reply
func (g *Generator) Chat(ctx context.Context, prompt string) (string, error) {
	return g.client.Chat(ctx, prompt)
}

// decode tolerates a fenced reply even though JSON mode is requested
func decode(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return json.Unmarshal([]byte(strings.TrimSpace(raw)), v)
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
