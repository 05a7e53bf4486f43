package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/naveenrjn/prep-hub-be/internal/auth"
	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ProgressHandler handles HTTP requests for per-subject study progress.
type ProgressHandler struct {
	service services.ProgressServiceProvider
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(service services.ProgressServiceProvider) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// Get returns the authenticated user's progress across subjects.
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	progress, err := h.service.ListForUser(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list progress")
		http.Error(w, "Failed to retrieve progress", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(progress)
}

// UpdatePayload defines the structure for progress updates.
type UpdatePayload struct {
	SubjectID          string  `json:"subjectId"`
	QuestionsCompleted int     `json:"questionsCompleted"`
	TotalQuestions     int     `json:"totalQuestions"`
	Score              float64 `json:"score"`
}

// Update records the authenticated user's progress for one subject.
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.SubjectID == "" {
		http.Error(w, "subjectId is required", http.StatusBadRequest)
		return
	}

	progress, err := h.service.Upsert(user.ID, payload.SubjectID, payload.QuestionsCompleted, payload.TotalQuestions, payload.Score)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Str("subject_id", payload.SubjectID).Msg("Failed to update progress")
		http.Error(w, "Failed to update progress", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(progress)
}
