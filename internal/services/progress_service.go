package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/naveenrjn/prep-hub-be/internal/models"
)

// ProgressServiceProvider defines the interface for progress services.
type ProgressServiceProvider interface {
	ListForUser(userID string) ([]models.UserProgress, error)
	Upsert(userID, subjectID string, completed, total int, score float64) (models.UserProgress, error)
}

// ProgressService provides business logic for per-subject study progress.
type ProgressService struct {
	db *sql.DB
}

// NewProgressService creates a new ProgressService.
func NewProgressService(db *sql.DB) *ProgressService {
	return &ProgressService{db: db}
}

// ListForUser returns the user's progress rows across all subjects.
func (s *ProgressService) ListForUser(userID string) ([]models.UserProgress, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, subject_id, questions_completed, total_questions, score, last_updated
		 FROM user_progress WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := []models.UserProgress{}
	for rows.Next() {
		var p models.UserProgress
		err := rows.Scan(&p.ID, &p.UserID, &p.SubjectID, &p.QuestionsCompleted, &p.TotalQuestions, &p.Score, &p.LastUpdated)
		if err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

// Upsert updates the user's progress for a subject, creating the row on first
// report. One row exists per (user, subject) pair.
func (s *ProgressService) Upsert(userID, subjectID string, completed, total int, score float64) (models.UserProgress, error) {
	now := time.Now().UTC()

	var existingID string
	err := s.db.QueryRow(
		"SELECT id FROM user_progress WHERE user_id = ? AND subject_id = ?", userID, subjectID,
	).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		existingID = uuid.New().String()
		_, err = s.db.Exec(
			`INSERT INTO user_progress (id, user_id, subject_id, questions_completed, total_questions, score, last_updated)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			existingID, userID, subjectID, completed, total, score, now)
	case err == nil:
		_, err = s.db.Exec(
			`UPDATE user_progress SET questions_completed = ?, total_questions = ?, score = ?, last_updated = ? WHERE id = ?`,
			completed, total, score, now, existingID)
	}
	if err != nil {
		return models.UserProgress{}, err
	}

	return models.UserProgress{
		ID:                 existingID,
		UserID:             userID,
		SubjectID:          subjectID,
		QuestionsCompleted: completed,
		TotalQuestions:     total,
		Score:              score,
		LastUpdated:        now,
	}, nil
}
