package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RobNel12/newbot-ai/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// PlayerRequest identifies one player of one guild
type PlayerRequest struct {
	GuildID string `json:"guild_id" validate:"required,snowflake"`
	UserID  string `json:"user_id" validate:"required,snowflake"`
}

// GuildRequest identifies one guild
type GuildRequest struct {
	GuildID string `json:"guild_id" validate:"required,snowflake"`
}

// BuyRequest selects a 1-based slot of today's shop
type BuyRequest struct {
	PlayerRequest
	Slot int `json:"slot" validate:"required,min=1,max=10"`
}

// ChatRequest is a free-form prompt
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
}

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// pathID reads a Discord ID from the route. On failure the response has
// already been written and ok is false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if !IsSnowflake(id) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidID, name))
		return "", false
	}
	return id, true
}
