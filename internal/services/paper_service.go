package services

import (
	"database/sql"

	"github.com/naveenrjn/prep-hub-be/internal/models"
)

// PaperServiceProvider defines the interface for question-paper services.
type PaperServiceProvider interface {
	List(year, subject string) ([]models.QuestionPaper, error)
}

// PaperService provides read access to previous-year question papers.
type PaperService struct {
	db *sql.DB
}

// NewPaperService creates a new PaperService.
func NewPaperService(db *sql.DB) *PaperService {
	return &PaperService{db: db}
}

// List returns question papers, optionally filtered by year and/or subject.
func (s *PaperService) List(year, subject string) ([]models.QuestionPaper, error) {
	query := `SELECT id, title, year, subject, exam_date, duration_hours, COALESCE(total_questions, 0),
	                 COALESCE(exam_type, ''), difficulty, has_answer_key, COALESCE(file_path, ''), COALESCE(answer_key_path, ''), created_at
	          FROM question_papers WHERE 1=1`
	args := []any{}
	if year != "" {
		query += " AND year = ?"
		args = append(args, year)
	}
	if subject != "" {
		query += " AND subject = ?"
		args = append(args, subject)
	}
	query += " ORDER BY year DESC, title"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	papers := []models.QuestionPaper{}
	for rows.Next() {
		var p models.QuestionPaper
		var examDate sql.NullTime
		err := rows.Scan(&p.ID, &p.Title, &p.Year, &p.Subject, &examDate, &p.DurationHours, &p.TotalQuestions,
			&p.ExamType, &p.Difficulty, &p.HasAnswerKey, &p.FilePath, &p.AnswerKeyPath, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		if examDate.Valid {
			p.ExamDate = &examDate.Time
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
