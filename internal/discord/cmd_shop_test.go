package discord

import (
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

func TestShopCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/shop/{guild}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testUserID, r.URL.Query().Get("user_id"))
		WriteJSON(w, map[string]any{
			"day":   "20240310",
			"items": []domain.ShopItem{{Name: "Tonic", Description: "Fizzy.", Cost: 20, Effects: []domain.Effect{{Stat: domain.StatHP, Amount: 2}}}},
			"coins": 64,
		})
	})

	cmd, handler := ShopCommand()
	handler(tc.Session, commandInteraction(cmd.Name), tc.APIClient)

	edit := tc.LastEdit(t)
	require.NotNil(t, edit)
	require.Len(t, edit.Embeds, 1)
	assert.Equal(t, "**1. Tonic** — 20c\n*Fizzy.*\n_HP+2_", edit.Embeds[0].Description)
	assert.Equal(t, "You have 64 coins. Shop rotates daily.", edit.Embeds[0].Footer.Text)
	assert.Empty(t, edit.Components)
}

func TestBuyCommand(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        any
		wantTitle   string
		wantContent string
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: domain.PurchaseResult{
				Item:      domain.ShopItem{Name: "Tonic", Cost: 20, Effects: []domain.Effect{{Stat: domain.StatHP, Amount: 2}}},
				CoinsLeft: 44,
			},
			wantTitle: TitlePurchase,
		},
		{
			name:        "empty slot",
			status:      http.StatusBadRequest,
			body:        map[string]string{"error": MsgSlotEmpty},
			wantContent: MsgSlotEmpty,
		},
		{
			name:        "not enough coins",
			status:      http.StatusBadRequest,
			body:        map[string]string{"error": MsgInsufficientFunds},
			wantContent: MsgInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := SetupTestContext(t)
			tc.Mux.HandleFunc("POST /api/v1/shop/buy", func(w http.ResponseWriter, r *http.Request) {
				WriteJSONStatus(w, tt.status, tt.body)
			})

			cmd, handler := BuyCommand()
			handler(tc.Session, commandInteraction(cmd.Name, &discordgo.ApplicationCommandInteractionDataOption{
				Name:  "slot",
				Type:  discordgo.ApplicationCommandOptionInteger,
				Value: float64(3),
			}), tc.APIClient)

			edit := tc.LastEdit(t)
			require.NotNil(t, edit)
			if tt.wantContent != "" {
				assert.Equal(t, tt.wantContent, edit.Content)
				return
			}
			require.Len(t, edit.Embeds, 1)
			assert.Equal(t, tt.wantTitle, edit.Embeds[0].Title)
		})
	}
}

func TestProfileAndInventoryCommands(t *testing.T) {
	tc := SetupTestContext(t)
	servePlayer(tc, domain.Player{Coins: 7, Level: 2})
	tc.Mux.HandleFunc("GET /api/v1/players/{guild}/{user}/inventory", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]any{"items": []domain.InventoryEntry{}})
	})

	_, profile := ProfileCommand()
	profile(tc.Session, commandInteraction("profile"), tc.APIClient)

	edit := tc.LastEdit(t)
	require.NotNil(t, edit)
	assert.Equal(t, TitleProfile, edit.Embeds[0].Title)
	assert.Nil(t, edit.Embeds[0].Footer)

	_, inventory := InventoryCommand()
	inventory(tc.Session, commandInteraction("inventory"), tc.APIClient)

	edit = tc.LastEdit(t)
	require.NotNil(t, edit)
	assert.Equal(t, TitleInventory, edit.Embeds[0].Title)
	assert.Equal(t, InventoryEmptyText, edit.Embeds[0].Description)
}

func TestChatCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("POST /api/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]string{"reply": "Well met, traveler."})
	})

	cmd, handler := ChatCommand()
	handler(tc.Session, commandInteraction(cmd.Name, &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "prompt",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: "hello",
	}), tc.APIClient)

	edit := tc.LastEdit(t)
	require.NotNil(t, edit)
	require.Len(t, edit.Embeds, 1)
	assert.Equal(t, TitleStoryteller, edit.Embeds[0].Title)
	assert.Equal(t, "Well met, traveler.", edit.Embeds[0].Description)
}
