package models

import "time"

// UserProgress tracks how far a user has worked through a subject.
type UserProgress struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	SubjectID          string    `json:"subjectId"`
	QuestionsCompleted int       `json:"questionsCompleted"`
	TotalQuestions     int       `json:"totalQuestions"`
	Score              float64   `json:"score"`
	LastUpdated        time.Time `json:"lastUpdated"`
}
