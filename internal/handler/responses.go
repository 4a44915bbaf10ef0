package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/RobNel12/newbot-ai/internal/cooldown"
	"github.com/RobNel12/newbot-ai/internal/domain"
	"github.com/RobNel12/newbot-ai/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. RetryAfterSeconds is set for cooldowns.
type ErrorResponse struct {
	Error             string `json:"error"`
	RetryAfterSeconds int64  `json:"retry_after_seconds,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error onto a status and client message,
// logging unexpected failures
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, body := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error(op+" failed", "error", err)
	} else {
		logger.FromContext(r.Context()).Debug(op+" declined", "reason", err.Error())
	}
	respondJSON(w, status, body)
}

func mapServiceError(err error) (int, ErrorResponse) {
	var cd cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &cd):
		return http.StatusTooManyRequests, ErrorResponse{Error: cd.Error(), RetryAfterSeconds: cd.Seconds()}
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrorResponse{Error: ErrMsgOnCooldown}
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInsufficientFunds}
	case errors.Is(err, domain.ErrShopSlotEmpty):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgShopSlotEmpty}
	case errors.Is(err, domain.ErrUnknownActivity):
		return http.StatusNotFound, ErrorResponse{Error: ErrMsgUnknownActivity}
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequestSummary}
	case errors.Is(err, domain.ErrGeneratorUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{Error: ErrMsgGeneratorDown}
	case errors.Is(err, domain.ErrMalformedGeneration):
		return http.StatusBadGateway, ErrorResponse{Error: ErrMsgGeneratorBadReply}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: ErrMsgGenericServerError}
}
