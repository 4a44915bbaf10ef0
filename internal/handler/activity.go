package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RobNel12/newbot-ai/internal/activity"
)

// HandlePerformActivity runs the activity named in the route for the player in the body
func HandlePerformActivity(svc activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "activity")

		var req PlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, name); err != nil {
			return
		}

		res, err := svc.Perform(r.Context(), req.UserID, req.GuildID, name)
		if err != nil {
			respondServiceError(w, r, name, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}
