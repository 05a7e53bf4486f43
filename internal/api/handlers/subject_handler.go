package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/naveenrjn/prep-hub-be/internal/models"
	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// SubjectHandler handles HTTP requests for subjects and questions.
type SubjectHandler struct {
	service services.SubjectServiceProvider
}

// NewSubjectHandler creates a new SubjectHandler.
func NewSubjectHandler(service services.SubjectServiceProvider) *SubjectHandler {
	return &SubjectHandler{service: service}
}

// List returns all subjects.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.service.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list subjects")
		http.Error(w, "Failed to retrieve subjects", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subjects)
}

// ListQuestions returns the practice questions of a subject.
func (h *SubjectHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "id")

	questions, err := h.service.ListQuestions(subjectID)
	if err != nil {
		log.Error().Err(err).Str("subject_id", subjectID).Msg("Failed to list questions")
		http.Error(w, "Failed to retrieve questions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(questions)
}

// CreateQuestion adds a practice question to a subject.
func (h *SubjectHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	subjectID := chi.URLParam(r, "id")

	var q models.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	q.SubjectID = subjectID

	if q.QuestionText == "" || q.CorrectAnswer == "" {
		http.Error(w, "Question text and correct answer are required", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateQuestion(q)
	if err != nil {
		log.Error().Err(err).Str("subject_id", subjectID).Msg("Failed to create question")
		http.Error(w, "Failed to create question", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
