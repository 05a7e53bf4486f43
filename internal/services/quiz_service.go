package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/naveenrjn/prep-hub-be/internal/models"
)

// QuizServiceProvider defines the interface for quiz services.
type QuizServiceProvider interface {
	ListQuizzes() ([]models.Quiz, error)
	CreateQuiz(quiz models.Quiz, createdBy string) (models.Quiz, error)
	RecordAttempt(attempt models.QuizAttempt) (models.QuizAttempt, error)
	ListAttempts(userID string) ([]models.QuizAttempt, error)
}

// QuizService provides business logic for quizzes and attempts.
type QuizService struct {
	db *sql.DB
}

// NewQuizService creates a new QuizService.
func NewQuizService(db *sql.DB) *QuizService {
	return &QuizService{db: db}
}

// ListQuizzes returns all active quizzes.
func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	rows, err := s.db.Query(
		`SELECT id, title, COALESCE(description, ''), subject_id, duration_minutes, total_questions,
		        difficulty, is_active, COALESCE(created_by, ''), created_at
		 FROM quizzes WHERE is_active = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := []models.Quiz{}
	for rows.Next() {
		var q models.Quiz
		err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.SubjectID, &q.DurationMinutes, &q.TotalQuestions,
			&q.Difficulty, &q.IsActive, &q.CreatedBy, &q.CreatedAt)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// CreateQuiz stores a new quiz owned by createdBy.
func (s *QuizService) CreateQuiz(quiz models.Quiz, createdBy string) (models.Quiz, error) {
	quiz.ID = uuid.New().String()
	quiz.CreatedBy = createdBy
	quiz.IsActive = true
	if quiz.DurationMinutes == 0 {
		quiz.DurationMinutes = 30
	}
	if quiz.TotalQuestions == 0 {
		quiz.TotalQuestions = 20
	}
	if quiz.Difficulty == "" {
		quiz.Difficulty = "Medium"
	}

	stmt, err := s.db.Prepare(
		`INSERT INTO quizzes (id, title, description, subject_id, duration_minutes, total_questions, difficulty, is_active, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?)`)
	if err != nil {
		return models.Quiz{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(quiz.ID, quiz.Title, quiz.Description, quiz.SubjectID,
		quiz.DurationMinutes, quiz.TotalQuestions, quiz.Difficulty, quiz.CreatedBy)
	if err != nil {
		return models.Quiz{}, err
	}
	return quiz, nil
}

// RecordAttempt stores a completed quiz attempt. Scoring happens client-side;
// this only persists the reported result.
func (s *QuizService) RecordAttempt(attempt models.QuizAttempt) (models.QuizAttempt, error) {
	attempt.ID = uuid.New().String()

	stmt, err := s.db.Prepare(
		`INSERT INTO quiz_attempts (id, user_id, quiz_id, score, total_questions, correct_answers, time_taken_minutes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.QuizAttempt{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(attempt.ID, attempt.UserID, attempt.QuizID, attempt.Score,
		attempt.TotalQuestions, attempt.CorrectAnswers, attempt.TimeTakenMinutes)
	if err != nil {
		return models.QuizAttempt{}, err
	}
	return attempt, nil
}

// ListAttempts returns a user's quiz attempts, most recent first.
func (s *QuizService) ListAttempts(userID string) ([]models.QuizAttempt, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, quiz_id, score, total_questions, correct_answers, COALESCE(time_taken_minutes, 0), completed_at
		 FROM quiz_attempts WHERE user_id = ? ORDER BY completed_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []models.QuizAttempt{}
	for rows.Next() {
		var a models.QuizAttempt
		err := rows.Scan(&a.ID, &a.UserID, &a.QuizID, &a.Score, &a.TotalQuestions,
			&a.CorrectAnswers, &a.TimeTakenMinutes, &a.CompletedAt)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
