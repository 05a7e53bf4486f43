package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naveenrjn/prep-hub-be/internal/auth"
	"github.com/naveenrjn/prep-hub-be/internal/models"
	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// QuizHandler handles HTTP requests for quizzes and quiz attempts.
type QuizHandler struct {
	service services.QuizServiceProvider
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(service services.QuizServiceProvider) *QuizHandler {
	return &QuizHandler{service: service}
}

// List returns all active quizzes.
func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.service.ListQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		http.Error(w, "Failed to retrieve quizzes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quizzes)
}

// Create stores a new quiz owned by the authenticated user.
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var quiz models.Quiz
	if err := json.NewDecoder(r.Body).Decode(&quiz); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if quiz.Title == "" || quiz.SubjectID == "" {
		http.Error(w, "Title and subjectId are required", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateQuiz(quiz, user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create quiz")
		http.Error(w, "Failed to create quiz", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// RecordAttempt stores a completed quiz attempt for the authenticated user.
func (h *QuizHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var attempt models.QuizAttempt
	if err := json.NewDecoder(r.Body).Decode(&attempt); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	attempt.UserID = user.ID
	attempt.QuizID = chi.URLParam(r, "id")

	if attempt.TotalQuestions <= 0 {
		http.Error(w, "totalQuestions must be positive", http.StatusBadRequest)
		return
	}

	recorded, err := h.service.RecordAttempt(attempt)
	if err != nil {
		log.Error().Err(err).Str("quiz_id", attempt.QuizID).Msg("Failed to record quiz attempt")
		http.Error(w, "Failed to record attempt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(recorded)
}

// ListAttempts returns the authenticated user's quiz attempts.
func (h *QuizHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	attempts, err := h.service.ListAttempts(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list quiz attempts")
		http.Error(w, "Failed to retrieve attempts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(attempts)
}
