package handler

import (
	"net/http"

	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/player"
)

// InventoryResponse lists a player's items sorted by name
type InventoryResponse struct {
	Items []domain.InventoryEntry `json:"items"`
}

// HandleGetPlayer returns the player's profile, creating it on first sight
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID, ok := pathID(w, r, "guild")
		if !ok {
			return
		}
		userID, ok := pathID(w, r, "user")
		if !ok {
			return
		}

		p, err := svc.GetProfile(r.Context(), userID, guildID)
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadPlayerFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetInventory returns the player's inventory
func HandleGetInventory(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guildID, ok := pathID(w, r, "guild")
		if !ok {
			return
		}
		userID, ok := pathID(w, r, "user")
		if !ok {
			return
		}

		items, err := svc.GetInventory(r.Context(), userID, guildID)
		if err != nil {
			respondServiceError(w, r, ErrMsgLoadInventoryFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, InventoryResponse{Items: items})
	}
}
