package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/naveenrjn/prep-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// PaperHandler handles HTTP requests for previous-year question papers.
type PaperHandler struct {
	service services.PaperServiceProvider
}

// NewPaperHandler creates a new PaperHandler.
func NewPaperHandler(service services.PaperServiceProvider) *PaperHandler {
	return &PaperHandler{service: service}
}

// List returns question papers, filterable by year and subject.
func (h *PaperHandler) List(w http.ResponseWriter, r *http.Request) {
	year := r.URL.Query().Get("year")
	subject := r.URL.Query().Get("subject")

	papers, err := h.service.List(year, subject)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list question papers")
		http.Error(w, "Failed to retrieve question papers", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(papers)
}
