package handler

import (
	"context"
	"net/http"
)

// Chatter produces a free-form reply. *ai.Generator satisfies it.
type Chatter interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// ChatResponse wraps the generated reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// HandleChat forwards a prompt to the text generator
func HandleChat(chatter Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := DecodeAndValidateRequest(r, w, &req, "chat"); err != nil {
			return
		}

		reply, err := chatter.Chat(r.Context(), req.Prompt)
		if err != nil {
			respondServiceError(w, r, "chat", err)
			return
		}
		respondJSON(w, http.StatusOK, ChatResponse{Reply: reply})
	}
}
