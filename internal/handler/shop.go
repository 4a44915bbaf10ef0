package handler

import (
	"net/http"
	"time"

	"github.com/RobNel12/newbot-ai/internal/activity"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/player"
	"github.com/RobNel12/newbot-ai/internal/shop"
)

var timeNow = time.Now

// ShopResponse is today's stock, plus the caller's wallet when user_id is given
type ShopResponse struct {
	Day   string            `json:"day"`
	Items []domain.ShopItem `json:"items"`
	Coins *int              `json:"coins,omitempty"`
}

// HandleGetShop returns today's shop. The generation hint is the guild's
// average level; with a user_id the caller's wallet is included.
func HandleGetShop(shopSvc shop.Service, playerSvc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID, ok := pathID(w, r, "guild")
		if !ok {
			return
		}

		var resp ShopResponse
		if userID := r.URL.Query().Get("user_id"); userID != "" {
			if !IsSnowflake(userID) {
				respondError(w, http.StatusBadRequest, "Invalid user_id")
				return
			}
			p, err := playerSvc.GetProfile(r.Context(), userID, guildID)
			if err != nil {
				respondServiceError(w, r, ErrMsgLoadPlayerFailed, err)
				return
			}
			resp.Coins = &p.Coins
		}

		level, err := playerSvc.AverageLevel(r.Context(), guildID)
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadShopFailed, err)
			return
		}

		items, err := shopSvc.GetShop(r.Context(), guildID, level)
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadShopFailed, err)
			return
		}
		if items == nil {
			items = []domain.ShopItem{}
		}
		resp.Items = items
		resp.Day = domain.DayKey(timeNow())
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleBuy purchases one unit of the item in the given slot
func HandleBuy(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "buy"); err != nil {
			return
		}

		res, err := svc.Purchase(r.Context(), req.UserID, req.GuildID, req.Slot)
		if err != nil {
			respondServiceError(w, r, "buy", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
