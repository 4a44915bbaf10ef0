package discord

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobNel12/newbot-ai/internal/domain"
)

func servePlayer(tc *TestContext, p domain.Player) {
	tc.Mux.HandleFunc("GET /api/v1/players/{guild}/{user}", func(w http.ResponseWriter, r *http.Request) {
		p.GuildID = r.PathValue("guild")
		p.UserID = r.PathValue("user")
		WriteJSON(w, p)
	})
}

func TestRPGCommand(t *testing.T) {
	tc := SetupTestContext(t)
	servePlayer(tc, domain.Player{Coins: 120, HP: 20, Atk: 5, Def: 3, Level: 1})

	cmd, handler := RPGCommand()
	assert.Equal(t, "rpg", cmd.Name)

	handler(tc.Session, commandInteraction(cmd.Name), tc.APIClient)

	callbacks := tc.Callbacks(t)
	require.Len(t, callbacks, 1)
	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, callbacks[0].Type)

	edit := tc.LastEdit(t)
	require.NotNil(t, edit)
	require.Len(t, edit.Embeds, 1)
	assert.Equal(t, TitleProfile, edit.Embeds[0].Title)
	assert.Equal(t, []string{"rpg:menu:" + testUserID}, customIDs(edit.Components))

	require.Len(t, edit.Components, 1)
	require.Len(t, edit.Components[0].Components, 1)
	menu := edit.Components[0].Components[0]
	assert.Equal(t, discordgo.SelectMenuComponent, menu.Type)
	values := make([]string, 0, len(menu.Options))
	for _, o := range menu.Options {
		values = append(values, o.Value)
	}
	assert.Equal(t, []string{ChoiceProfile, ChoiceInventory, ChoiceShop, ChoiceTrain, ChoiceMine, ChoiceGamble, ChoiceAdventure}, values)
}

func TestRPGCommand_OutsideGuild(t *testing.T) {
	tc := SetupTestContext(t)
	_, handler := RPGCommand()

	i := commandInteraction("rpg")
	i.GuildID = ""
	handler(tc.Session, i, tc.APIClient)

	callbacks := tc.Callbacks(t)
	require.Len(t, callbacks, 1)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, callbacks[0].Type)
	assert.Equal(t, MsgGuildOnly, callbacks[0].Data.Content)
	assert.Nil(t, tc.LastEdit(t))
}

func TestMenuChoice(t *testing.T) {
	menuID := ComponentID{Action: ActionMenu, Owner: testUserID}.String()

	tests := []struct {
		name         string
		choice       string
		setup        func(tc *TestContext)
		wantTitle    string
		wantDeferred bool
		wantIDs      []string
	}{
		{
			name:         "profile",
			choice:       ChoiceProfile,
			setup:        func(tc *TestContext) { servePlayer(tc, domain.Player{Level: 3}) },
			wantTitle:    TitleProfile,
			wantDeferred: true,
			wantIDs:      []string{menuID},
		},
		{
			name:   "inventory",
			choice: ChoiceInventory,
			setup: func(tc *TestContext) {
				tc.Mux.HandleFunc("GET /api/v1/players/{guild}/{user}/inventory", func(w http.ResponseWriter, r *http.Request) {
					WriteJSON(w, map[string]any{"items": []domain.InventoryEntry{{Item: "Tonic", Qty: 1}}})
				})
			},
			wantTitle:    TitleInventory,
			wantDeferred: true,
			wantIDs:      []string{menuID},
		},
		{
			name:   "shop",
			choice: ChoiceShop,
			setup: func(tc *TestContext) {
				tc.Mux.HandleFunc("GET /api/v1/shop/{guild}", func(w http.ResponseWriter, r *http.Request) {
					WriteJSON(w, map[string]any{"day": "20240310", "items": []domain.ShopItem{{Name: "Tonic", Cost: 20}}, "coins": 50})
				})
			},
			wantTitle:    TitleShop,
			wantDeferred: true,
			wantIDs: []string{
				"rpg:buy:" + testUserID + ":1", "rpg:buy:" + testUserID + ":2", "rpg:buy:" + testUserID + ":3",
				"rpg:buy:" + testUserID + ":4", "rpg:buy:" + testUserID + ":5", "rpg:back:" + testUserID,
			},
		},
		{
			name:      "training ring",
			choice:    ChoiceTrain,
			setup:     func(tc *TestContext) {},
			wantTitle: TitleTrainingRing,
			wantIDs:   []string{"rpg:train:" + testUserID, "rpg:back:" + testUserID},
		},
		{
			name:      "gambling hall",
			choice:    ChoiceGamble,
			setup:     func(tc *TestContext) {},
			wantTitle: TitleGamblingHall,
			wantIDs:   []string{"rpg:roll:" + testUserID, "rpg:coinflip:" + testUserID, "rpg:back:" + testUserID},
		},
		{
			name:   "mine",
			choice: ChoiceMine,
			setup: func(tc *TestContext) {
				tc.Mux.HandleFunc("POST /api/v1/activities/mine", func(w http.ResponseWriter, r *http.Request) {
					WriteJSON(w, domain.ActivityResult{Activity: "mine", Title: "⛏️ Mine / Work", Success: true})
				})
			},
			wantTitle:    "⛏️ Mine / Work",
			wantDeferred: true,
			wantIDs:      []string{menuID},
		},
		{
			name:   "adventure on cooldown",
			choice: ChoiceAdventure,
			setup: func(tc *TestContext) {
				tc.Mux.HandleFunc("POST /api/v1/activities/adventure", func(w http.ResponseWriter, r *http.Request) {
					WriteJSONStatus(w, http.StatusTooManyRequests, map[string]any{"error": "cooldown", "retry_after_seconds": 33})
				})
			},
			wantTitle:    "🗺️ Resting",
			wantDeferred: true,
			wantIDs:      []string{menuID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := SetupTestContext(t)
			tt.setup(tc)

			handleMenuChoice(tc.Session, componentInteraction(testUserID, menuID, tt.choice), tc.APIClient,
				ComponentID{Action: ActionMenu, Owner: testUserID})

			callbacks := tc.Callbacks(t)
			require.Len(t, callbacks, 1)

			var got *sentMessage
			if tt.wantDeferred {
				assert.Equal(t, discordgo.InteractionResponseDeferredMessageUpdate, callbacks[0].Type)
				got = tc.LastEdit(t)
			} else {
				assert.Equal(t, discordgo.InteractionResponseUpdateMessage, callbacks[0].Type)
				got = callbacks[0].Data
			}

			require.NotNil(t, got)
			require.Len(t, got.Embeds, 1)
			assert.Equal(t, tt.wantTitle, got.Embeds[0].Title)
			assert.Equal(t, tt.wantIDs, customIDs(got.Components))
			assert.Empty(t, tc.Followups(t))
		})
	}
}

func TestMenuChoice_EngineDownLeavesView(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/players/{guild}/{user}/inventory", func(w http.ResponseWriter, r *http.Request) {
		WriteJSONStatus(w, http.StatusInternalServerError, map[string]string{"error": "Something went wrong"})
	})

	id := ComponentID{Action: ActionMenu, Owner: testUserID}
	handleMenuChoice(tc.Session, componentInteraction(testUserID, id.String(), ChoiceInventory), tc.APIClient, id)

	assert.Nil(t, tc.LastEdit(t))
	followups := tc.Followups(t)
	require.Len(t, followups, 1)
	assert.Equal(t, MsgServerUnreachable, followups[0].Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, followups[0].Flags)
}

func TestBuyButton(t *testing.T) {
	tests := []struct {
		name         string
		slot         string
		status       int
		body         any
		wantEdit     string
		wantFollowup string
		wantBackend  bool
	}{
		{
			name:   "purchase",
			slot:   "2",
			status: http.StatusOK,
			body: domain.PurchaseResult{
				Item:      domain.ShopItem{Name: "Tonic", Cost: 20, Effects: []domain.Effect{{Stat: domain.StatHP, Amount: 2}}},
				CoinsLeft: 30,
			},
			wantEdit:    TitlePurchase,
			wantBackend: true,
		},
		{
			name:         "empty slot",
			slot:         "5",
			status:       http.StatusBadRequest,
			body:         map[string]string{"error": MsgSlotEmpty},
			wantFollowup: MsgSlotEmpty,
			wantBackend:  true,
		},
		{
			name:         "not enough coins",
			slot:         "1",
			status:       http.StatusBadRequest,
			body:         map[string]string{"error": MsgInsufficientFunds},
			wantFollowup: MsgInsufficientFunds,
			wantBackend:  true,
		},
		{
			name: "garbage slot",
			slot: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := SetupTestContext(t)

			var called atomic.Bool
			var gotSlot atomic.Int64
			tc.Mux.HandleFunc("POST /api/v1/shop/buy", func(w http.ResponseWriter, r *http.Request) {
				called.Store(true)
				var body struct {
					Slot int64 `json:"slot"`
				}
				_ = json.NewDecoder(r.Body).Decode(&body)
				gotSlot.Store(body.Slot)
				WriteJSONStatus(w, tt.status, tt.body)
			})

			id := ComponentID{Action: ActionBuy, Owner: testUserID, Arg: tt.slot}
			handleBuyButton(tc.Session, componentInteraction(testUserID, id.String()), tc.APIClient, id)

			assert.Equal(t, tt.wantBackend, called.Load())
			if tt.wantBackend {
				assert.Equal(t, tt.slot, strconv.FormatInt(gotSlot.Load(), 10))
			}

			if tt.wantEdit != "" {
				edit := tc.LastEdit(t)
				require.NotNil(t, edit)
				assert.Equal(t, tt.wantEdit, edit.Embeds[0].Title)
				assert.Contains(t, edit.Embeds[0].Description, "Coins left: **30**")
				assert.Len(t, customIDs(edit.Components), ShopButtons+1)
				return
			}

			assert.Nil(t, tc.LastEdit(t))
			if tt.wantFollowup != "" {
				followups := tc.Followups(t)
				require.Len(t, followups, 1)
				assert.Equal(t, tt.wantFollowup, followups[0].Content)
				return
			}

			callbacks := tc.Callbacks(t)
			require.Len(t, callbacks, 1)
			assert.Equal(t, MsgSlotEmpty, callbacks[0].Data.Content)
		})
	}
}

func TestActivityButton_KeepsSubMenu(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("POST /api/v1/activities/roll", func(w http.ResponseWriter, r *http.Request) {
		WriteJSONStatus(w, http.StatusBadRequest, map[string]string{"error": MsgInsufficientFunds})
	})

	id := ComponentID{Action: ActionRoll, Owner: testUserID}
	activityButton(domain.ActivityRoll, gambleMenu)(tc.Session, componentInteraction(testUserID, id.String()), tc.APIClient, id)

	edit := tc.LastEdit(t)
	require.NotNil(t, edit)
	assert.Equal(t, "🎲 Roll d20", edit.Embeds[0].Title)
	assert.Equal(t, "Need **10** coins.", edit.Embeds[0].Description)
	assert.Equal(t, []string{"rpg:roll:" + testUserID, "rpg:coinflip:" + testUserID, "rpg:back:" + testUserID}, customIDs(edit.Components))
}

func TestBackButton(t *testing.T) {
	tc := SetupTestContext(t)
	servePlayer(tc, domain.Player{Coins: 99, Level: 1})

	id := ComponentID{Action: ActionBack, Owner: testUserID}
	handleBack(tc.Session, componentInteraction(testUserID, id.String()), tc.APIClient, id)

	edit := tc.LastEdit(t)
	require.NotNil(t, edit)
	assert.Equal(t, TitleProfile, edit.Embeds[0].Title)
	assert.Equal(t, []string{"rpg:menu:" + testUserID}, customIDs(edit.Components))
}
