package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/naveenrjn/prep-hub-be/internal/models"
)

// SubjectServiceProvider defines the interface for subject services.
type SubjectServiceProvider interface {
	ListSubjects() ([]models.Subject, error)
	GetSubject(id string) (models.Subject, error)
	ListQuestions(subjectID string) ([]models.Question, error)
	CreateQuestion(q models.Question) (models.Question, error)
}

// SubjectService provides business logic for subjects and their questions.
type SubjectService struct {
	db *sql.DB
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(db *sql.DB) *SubjectService {
	return &SubjectService{db: db}
}

// ListSubjects returns all subjects.
func (s *SubjectService) ListSubjects() ([]models.Subject, error) {
	rows, err := s.db.Query("SELECT id, name, COALESCE(description, ''), color, created_at FROM subjects ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := []models.Subject{}
	for rows.Next() {
		var sub models.Subject
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Description, &sub.Color, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

// GetSubject retrieves a single subject by ID.
func (s *SubjectService) GetSubject(id string) (models.Subject, error) {
	var sub models.Subject
	row := s.db.QueryRow("SELECT id, name, COALESCE(description, ''), color, created_at FROM subjects WHERE id = ?", id)
	err := row.Scan(&sub.ID, &sub.Name, &sub.Description, &sub.Color, &sub.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Subject{}, fmt.Errorf("subject with ID %s not found", id)
		}
		return models.Subject{}, err
	}
	return sub, nil
}

// ListQuestions returns all practice questions for a subject.
func (s *SubjectService) ListQuestions(subjectID string) ([]models.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, subject_id, question_text, option_a, option_b, option_c, option_d,
		        correct_answer, COALESCE(explanation, ''), difficulty, COALESCE(topic, ''), created_at
		 FROM questions WHERE subject_id = ?`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.ID, &q.SubjectID, &q.QuestionText, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
			&q.CorrectAnswer, &q.Explanation, &q.Difficulty, &q.Topic, &q.CreatedAt)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CreateQuestion adds a practice question to a subject.
func (s *SubjectService) CreateQuestion(q models.Question) (models.Question, error) {
	if _, err := s.GetSubject(q.SubjectID); err != nil {
		return models.Question{}, err
	}

	q.ID = uuid.New().String()
	if q.Difficulty == "" {
		q.Difficulty = "Medium"
	}

	stmt, err := s.db.Prepare(
		`INSERT INTO questions (id, subject_id, question_text, option_a, option_b, option_c, option_d, correct_answer, explanation, difficulty, topic)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return models.Question{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(q.ID, q.SubjectID, q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD,
		q.CorrectAnswer, q.Explanation, q.Difficulty, q.Topic)
	if err != nil {
		return models.Question{}, err
	}
	return q, nil
}
