package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/naveenrjn/prep-hub-be/internal/auth"
	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ChatHandler handles HTTP requests for the AI chat assistant.
type ChatHandler struct {
	service services.ChatServiceProvider
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service services.ChatServiceProvider) *ChatHandler {
	return &ChatHandler{service: service}
}

// ChatPayload defines the structure for chat requests.
type ChatPayload struct {
	Message string `json:"message"`
}

// ChatResponse defines the structure of chat replies.
type ChatResponse struct {
	Response string `json:"response"`
}

// Ask forwards the user's message to the AI backend. A backend outage still
// answers 200 with fallback text; only a storage failure is a server error.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload ChatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Ask(r.Context(), user, payload.Message)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to store chat turn")
		http.Error(w, "Failed to process chat message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Response: response})
}

// History returns the authenticated user's recent chat turns.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20 // Default limit
	}

	turns, err := h.service.RecentHistory(user.ID, limit)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to retrieve chat history")
		http.Error(w, "Failed to retrieve chat history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(turns)
}
