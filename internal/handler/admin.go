package handler

import (
	"net/http"

	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/logger"
	"github.com/RobNel12/newbot-ai/internal/player"
)

// ResetResponse reports a reset and the resulting state
type ResetResponse struct {
	Message string         `json:"message"`
	Player  *domain.Player `json:"player,omitempty"`
	Players int64          `json:"players,omitempty"`
}

// HandleResetPlayer restores one player to defaults and empties their inventory
func HandleResetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "reset"); err != nil {
			return
		}

		p, err := svc.Reset(r.Context(), req.UserID, req.GuildID)
		if err != nil {
			respondServiceError(w, r, ErrMsgResetFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Admin reset player", "guild_id", req.GuildID, "user_id", req.UserID)
		respondJSON(w, http.StatusOK, ResetResponse{Message: MsgPlayerReset, Player: p})
	}
}

// HandleResetGuild restores every player of the guild
func HandleResetGuild(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuildRequest
		if err := DecodeAndValidateRequest(r, w, &req, "reset-all"); err != nil {
			return
		}

		n, err := svc.ResetAll(r.Context(), req.GuildID)
		if err != nil {
			respondServiceError(w, r, ErrMsgResetFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Admin reset guild", "guild_id", req.GuildID, "players", n)
		respondJSON(w, http.StatusOK, ResetResponse{Message: MsgGuildReset, Players: n})
	}
}
